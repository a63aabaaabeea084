package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	if l.AmbientColour() != (mgl32.Vec3{0.2, 0.2, 0.2}) {
		t.Errorf("ambient = %v", l.AmbientColour())
	}
	if l.SpecularColour() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("specular = %v", l.SpecularColour())
	}
	if l.Shininess() != 32 {
		t.Errorf("shininess = %v", l.Shininess())
	}
	if math.Abs(float64(l.Direction().Len()-1)) > 1e-6 {
		t.Errorf("direction not normalized: %v", l.Direction())
	}
}

func TestLightSetters(t *testing.T) {
	l := NewLight(WithDirection(0, 0, 0), WithShininess(8))
	if l.Shininess() != 8 {
		t.Fatalf("shininess = %v", l.Shininess())
	}
	if l.Direction().Len() == 0 {
		t.Fatal("zero direction should keep the default")
	}

	l.SetDirection(mgl32.Vec3{0, -4, 0})
	if l.Direction() != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("direction = %v", l.Direction())
	}
	l.SetAmbientColour(mgl32.Vec3{0.1, 0.2, 0.3})
	l.SetSpecularColour(mgl32.Vec3{0.5, 0.5, 0.5})
	l.SetShininess(64)
	if l.AmbientColour() != (mgl32.Vec3{0.1, 0.2, 0.3}) || l.SpecularColour() != (mgl32.Vec3{0.5, 0.5, 0.5}) || l.Shininess() != 64 {
		t.Fatal("setters did not apply")
	}
}

func TestGPULightUniformLayout(t *testing.T) {
	l := NewLight(WithDirection(0, -1, 0), WithIntensity(0.75), WithAmbientColour(0.1, 0.2, 0.3))
	u := NewGPULightUniform(l)

	if u.Size() != 64 {
		t.Fatalf("size = %d", u.Size())
	}
	buf := u.Marshal()
	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	if read(4) != -1 || read(12) != 32 || read(24) != 0.3 || read(28) != 0.75 {
		t.Fatalf("unexpected layout: dir.y=%v shininess=%v ambient.b=%v intensity=%v", read(4), read(12), read(24), read(28))
	}

	l.SetEnabled(false)
	if off := NewGPULightUniform(l); off.Intensity != 0 {
		t.Fatalf("disabled light intensity = %v", off.Intensity)
	}
}
