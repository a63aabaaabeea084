package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// slerpShortcut is the cosine above which two rotations are considered identical and Slerp
// returns its target unchanged. sin(theta) is too close to zero past this point.
const slerpShortcut = 0.9999

// Quaternion is a rotation stored as {W, X, Y, Z}. It is the only rotation type in the engine;
// mgl32 is used for vectors and matrices but its Quat type is not.
//
// Callers keep quaternions near unit length. Mat3 and Mat4 tolerate small drift.
type Quaternion struct {
	W, X, Y, Z float32
}

// NewQuaternion builds a quaternion from explicit components.
//
// Parameters:
//   - w, x, y, z: the scalar and vector components
//
// Returns:
//   - Quaternion: the quaternion
func NewQuaternion(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// IdentityQuaternion returns the no-rotation quaternion {1, 0, 0, 0}.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromPitchYaw composes a rotation of pitch radians about X with yaw radians about Y
// using the half-angle form:
//
//	w = cos(p/2)cos(y/2)  x = sin(p/2)cos(y/2)
//	y = cos(p/2)sin(y/2)  z = sin(p/2)sin(y/2)
//
// Parameters:
//   - pitch: rotation about the X axis in radians
//   - yaw: rotation about the Y axis in radians
//
// Returns:
//   - Quaternion: the composed rotation
func QuaternionFromPitchYaw(pitch, yaw float32) Quaternion {
	sp, cp := math.Sincos(float64(pitch) * 0.5)
	sy, cy := math.Sincos(float64(yaw) * 0.5)

	return Quaternion{
		W: float32(cp * cy),
		X: float32(sp * cy),
		Y: float32(cp * sy),
		Z: float32(sp * sy),
	}
}

// QuaternionFromAxisAngle returns the rotation of angle radians about axis.
// A zero-length axis yields the identity.
//
// Parameters:
//   - axis: the rotation axis, need not be normalized
//   - angle: the rotation angle in radians
//
// Returns:
//   - Quaternion: the rotation
func QuaternionFromAxisAngle(axis mgl32.Vec3, angle float32) Quaternion {
	if axis.LenSqr() == 0 {
		return IdentityQuaternion()
	}
	axis = axis.Normalize()
	s, c := math.Sincos(float64(angle) * 0.5)
	fs := float32(s)
	return Quaternion{W: float32(c), X: axis.X() * fs, Y: axis.Y() * fs, Z: axis.Z() * fs}
}

// AxisAngle decomposes a unit quaternion into a rotation axis and angle in radians.
// The identity returns the Y axis with a zero angle.
//
// Returns:
//   - mgl32.Vec3: the unit rotation axis
//   - float32: the rotation angle in radians
func (q Quaternion) AxisAngle() (mgl32.Vec3, float32) {
	q = q.Normalize()
	if q.W < 0 {
		q = q.Negate()
	}
	s := math.Sqrt(math.Max(0, 1-float64(q.W)*float64(q.W)))
	if s < 1e-6 {
		return WorldUp, 0
	}
	angle := 2 * math.Acos(math.Min(1, float64(q.W)))
	inv := float32(1 / s)
	return mgl32.Vec3{q.X * inv, q.Y * inv, q.Z * inv}, float32(angle)
}

// Dot returns the four-component dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Negate returns q with every component sign-flipped. It represents the same rotation.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// LenSqr returns the squared norm of q.
func (q Quaternion) LenSqr() float32 {
	return q.Dot(q)
}

// Normalize returns q scaled to unit length. A zero quaternion normalizes to the identity.
func (q Quaternion) Normalize() Quaternion {
	n := q.LenSqr()
	if n == 0 {
		return IdentityQuaternion()
	}
	inv := float32(1 / math.Sqrt(float64(n)))
	return Quaternion{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{W: q.W * s, X: q.X * s, Y: q.Y * s, Z: q.Z * s}
}

// Add returns the component-wise sum of q and o.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{W: q.W + o.W, X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z}
}

// Mul returns the Hamilton product q * o, the rotation o followed by q.
//
// Parameters:
//   - o: the right-hand quaternion
//
// Returns:
//   - Quaternion: the composed rotation
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Rotate applies the rotation q to v. The result agrees with Mat3().Mul3x1(v).
//
// Parameters:
//   - v: the vector to rotate
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func (q Quaternion) Rotate(v mgl32.Vec3) mgl32.Vec3 {
	return q.Mat3().Mul3x1(v)
}

// Mat3 converts q into a 3x3 rotation matrix. The 2/|q|^2 scale keeps the result a rotation
// for quaternions that have drifted slightly from unit length.
//
// Returns:
//   - mgl32.Mat3: the column-major rotation matrix
func (q Quaternion) Mat3() mgl32.Mat3 {
	n := q.LenSqr()
	if n == 0 {
		return mgl32.Ident3()
	}
	s := 2 / n
	xs, ys, zs := q.X*s, q.Y*s, q.Z*s
	xx, xy, xz := q.X*xs, q.X*ys, q.X*zs
	yy, yz, zz := q.Y*ys, q.Y*zs, q.Z*zs
	xw, yw, zw := q.W*xs, q.W*ys, q.W*zs

	// column-major: m[col*3+row]
	return mgl32.Mat3{
		1 - (yy + zz), xy + zw, xz - yw,
		xy - zw, 1 - (xx + zz), yz + xw,
		xz + yw, yz - xw, 1 - (xx + yy),
	}
}

// Mat4 returns Mat3 embedded in a homogeneous 4x4 matrix.
func (q Quaternion) Mat4() mgl32.Mat4 {
	return q.Mat3().Mat4()
}

// ApproxEqual reports whether every component of q is within eps of o.
// q and -q are the same rotation but are not considered equal here.
func (q Quaternion) ApproxEqual(o Quaternion, eps float32) bool {
	return mgl32.Abs(q.W-o.W) <= eps &&
		mgl32.Abs(q.X-o.X) <= eps &&
		mgl32.Abs(q.Y-o.Y) <= eps &&
		mgl32.Abs(q.Z-o.Z) <= eps
}

// Slerp spherically interpolates from q1 toward q2 along the shorter arc.
//
// When the rotations are nearly identical (cos theta > 0.9999) q2 is returned unchanged.
// When cos theta is negative, q2 is negated so the interpolation takes the short path.
// t is not clamped.
//
// Parameters:
//   - q1: the start rotation (t = 0)
//   - q2: the end rotation (t = 1)
//   - t: the interpolation factor
//
// Returns:
//   - Quaternion: the interpolated rotation
func Slerp(q1, q2 Quaternion, t float32) Quaternion {
	cosTheta := q1.Dot(q2)
	if cosTheta > slerpShortcut {
		return q2
	}

	if cosTheta < 0 {
		q2 = q2.Negate()
		cosTheta = -cosTheta
		// the flipped pair may now be close enough for the shortcut
		if cosTheta > slerpShortcut {
			return q2
		}
	}

	theta := math.Acos(float64(cosTheta))
	sinTheta := math.Sin(theta)
	a := float32(math.Sin((1-float64(t))*theta) / sinTheta)
	b := float32(math.Sin(float64(t)*theta) / sinTheta)

	return q1.Scale(a).Add(q2.Scale(b))
}
