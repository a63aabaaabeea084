package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches GPUVertex layout exactly (32 bytes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 32 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.TexCoord[1]))
	return buf
}

// VertexBufferLayout describes GPUVertex to a render pipeline as vertex buffer slot 0.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout with position, normal and uv attributes
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 32,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}
}

// GPUInstanceSource is the canonical WGSL definition of the Instance struct.
// Matches GPUInstance layout exactly (80 bytes, std430 aligned).
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUInstance is the per-instance data read from the instance storage buffer.
// Size: 80 bytes.
type GPUInstance struct {
	Model [16]float32 // offset  0: model-to-world matrix, column-major (64 bytes)
	Color [4]float32  // offset 64: RGBA tint (16 bytes)
}

// NewGPUInstance packs a model matrix and colour.
//
// Parameters:
//   - m: the model matrix
//   - color: RGBA tint
//
// Returns:
//   - GPUInstance: the instance data
func NewGPUInstance(m mgl32.Mat4, color [4]float32) GPUInstance {
	return GPUInstance{Model: m, Color: color}
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, 80)
	g.MarshalTo(buf)
	return buf
}

// MarshalTo writes the instance into the first 80 bytes of dst. Used to pack many instances
// into one upload without per-instance allocations.
//
// Parameters:
//   - dst: the destination, at least 80 bytes long
func (g *GPUInstance) MarshalTo(dst []byte) {
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(dst[64+i*4:68+i*4], math.Float32bits(g.Color[i]))
	}
}
