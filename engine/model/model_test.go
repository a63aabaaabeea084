package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeModelShape(t *testing.T) {
	m := NewCubeModel()

	if len(m.Vertices()) != 24 || m.IndexCount() != 36 {
		t.Fatalf("got %d vertices and %d indices", len(m.Vertices()), m.IndexCount())
	}
	if len(m.VertexData()) != 24*32 || len(m.IndexData()) != 36*4 {
		t.Fatalf("packed sizes %d / %d", len(m.VertexData()), len(m.IndexData()))
	}
	if m.MeshProvider() == nil || m.MeshProvider().Label() != "cube_mesh" {
		t.Fatal("cube should get a default mesh provider")
	}

	for i, v := range m.Vertices() {
		for axis := range 3 {
			if math.Abs(float64(v.Position[axis])) != 1 {
				t.Fatalf("vertex %d is not on the unit cube: %v", i, v.Position)
			}
		}
		// the normal's axis is the one the vertex is pinned to
		p := mgl32.Vec3(v.Position)
		n := mgl32.Vec3(v.Normal)
		if p.Dot(n) != 1 {
			t.Fatalf("vertex %d position %v does not lie on its face %v", i, p, n)
		}
	}
}

func TestCubeModelWinding(t *testing.T) {
	m := NewCubeModel()
	verts := m.Vertices()
	idx := m.Indices()

	for tri := 0; tri < len(idx); tri += 3 {
		a := mgl32.Vec3(verts[idx[tri]].Position)
		b := mgl32.Vec3(verts[idx[tri+1]].Position)
		c := mgl32.Vec3(verts[idx[tri+2]].Position)
		n := mgl32.Vec3(verts[idx[tri]].Normal)

		// counter-clockwise seen from outside means the geometric normal points along n
		if b.Sub(a).Cross(c.Sub(a)).Dot(n) <= 0 {
			t.Fatalf("triangle %d is wound clockwise", tri/3)
		}
	}
}

func TestGPUInstanceMarshal(t *testing.T) {
	inst := NewGPUInstance(mgl32.Translate3D(1, 2, 3), [4]float32{0.5, 0.25, 1, 1})
	if inst.Size() != 80 {
		t.Fatalf("size = %d", inst.Size())
	}

	buf := inst.Marshal()
	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	// column 3 holds the translation
	if read(48) != 1 || read(52) != 2 || read(56) != 3 || read(60) != 1 {
		t.Fatalf("translation column = %v %v %v %v", read(48), read(52), read(56), read(60))
	}
	if read(64) != 0.5 || read(68) != 0.25 {
		t.Fatalf("colour = %v %v", read(64), read(68))
	}
}

func TestGPUVertexLayoutMatchesStruct(t *testing.T) {
	var v GPUVertex
	layout := VertexBufferLayout()
	if layout.ArrayStride != uint64(v.Size()) {
		t.Fatalf("stride %d, struct %d", layout.ArrayStride, v.Size())
	}
	if len(layout.Attributes) != 3 || layout.Attributes[2].Offset != 24 {
		t.Fatalf("attributes = %+v", layout.Attributes)
	}
}
