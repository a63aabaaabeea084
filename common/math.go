package common

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis. The ground plane is y = 0 with this normal.
var WorldUp = mgl32.Vec3{0, 1, 0}

// WebGPUClipCorrection remaps OpenGL clip-space depth (-1..1) into the WebGPU range (0..1).
// Pre-multiply a GL-convention projection matrix with it before uploading to the GPU.
var WebGPUClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// NormalizeOr returns v scaled to unit length, or fallback when v has (near) zero length.
// mgl32.Vec3.Normalize divides by the length unconditionally, so zero vectors must be caught here.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: the vector returned when v cannot be normalized
//
// Returns:
//   - mgl32.Vec3: the normalized vector or fallback
func NormalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < 1e-12 {
		return fallback
	}
	return v.Mul(1 / v.Len())
}

// BuildModelMatrix constructs a model matrix as T * R * S, where R is a rotation of angle
// radians about axis. A zero axis or zero angle yields no rotation.
//
// Parameters:
//   - position: translation in world space
//   - scale: per-axis scale factors
//   - axis: rotation axis, need not be normalized
//   - angle: rotation angle in radians
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func BuildModelMatrix(position, scale, axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	if angle != 0 && axis.LenSqr() > 0 {
		model = model.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
	}
	return model.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Vec3From packs three components into an mgl32.Vec3. Useful for the (x, y, z) accessors
// used by scene types.
func Vec3From(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
