package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULightUniform layout exactly (64 bytes).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULightUniform is the GPU-aligned representation of the light uniform buffer.
// Size: 64 bytes.
type GPULightUniform struct {
	Direction [3]float32 // offset  0: normalized travel direction
	Shininess float32    // offset 12: specular exponent
	Ambient   [3]float32 // offset 16: ambient RGB
	Intensity float32    // offset 28: diffuse/specular scale, 0 when disabled
	Diffuse   [3]float32 // offset 32: diffuse RGB
	_pad0     float32    // offset 44
	Specular  [3]float32 // offset 48: specular RGB
	_pad1     float32    // offset 60
}

// NewGPULightUniform captures the light's current state. A disabled light uploads a zero
// intensity so only the ambient term remains.
//
// Parameters:
//   - l: the light to capture
//
// Returns:
//   - GPULightUniform: the uniform data
func NewGPULightUniform(l Light) GPULightUniform {
	u := GPULightUniform{
		Direction: l.Direction(),
		Shininess: l.Shininess(),
		Ambient:   l.AmbientColour(),
		Diffuse:   l.DiffuseColour(),
		Specular:  l.SpecularColour(),
	}
	if l.Enabled() {
		u.Intensity = l.Intensity()
	}
	return u
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	put := func(offset int, v [3]float32, w float32) {
		for i := range 3 {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(v[i]))
		}
		binary.LittleEndian.PutUint32(buf[offset+12:], math.Float32bits(w))
	}
	put(0, g.Direction, g.Shininess)
	put(16, g.Ambient, g.Intensity)
	put(32, g.Diffuse, 0)
	put(48, g.Specular, 0)
	return buf
}
