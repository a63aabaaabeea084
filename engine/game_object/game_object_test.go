package game_object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	if !obj.Enabled() {
		t.Error("objects should start enabled")
	}
	if sx, sy, sz := obj.Scale(); sx != 0.5 || sy != 0.5 || sz != 0.5 {
		t.Errorf("scale = (%v, %v, %v)", sx, sy, sz)
	}
	if obj.Color() != [4]float32{1, 1, 1, 1} {
		t.Errorf("color = %v", obj.Color())
	}
}

func TestGameObjectAABBIgnoresRotation(t *testing.T) {
	obj := NewGameObject(
		WithPosition(2, 1, -3),
		WithScale(1, 0.5, 2),
		WithRotation(mgl32.Vec3{0, 1, 0}, math.Pi/4),
	)

	box := obj.AABB()
	if box.Min != (mgl32.Vec3{1, 0.5, -5}) || box.Max != (mgl32.Vec3{3, 1.5, -1}) {
		t.Fatalf("box = %+v", box)
	}
}

func TestGameObjectModelMatrixMapsUnitCube(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 2, 3), WithScale(2, 3, 4))

	corner := obj.ModelMatrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	if !corner.ApproxEqualThreshold(obj.AABB().Max, 1e-5) {
		t.Fatalf("mesh corner maps to %v, want %v", corner, obj.AABB().Max)
	}
}

func TestGameObjectSetters(t *testing.T) {
	obj := NewGameObject(WithID(3), WithName("crate"), WithEnabled(false))
	obj.SetID(9)
	obj.SetEnabled(true)
	obj.SetPosition(4, 5, 6)
	obj.SetScale(1, 1, 1)
	obj.SetColor([4]float32{0.5, 0.5, 0.5, 1})
	obj.SetRotation(mgl32.Vec3{1, 0, 0}, 1)

	if obj.ID() != 9 || obj.Name() != "crate" || !obj.Enabled() {
		t.Fatalf("id %d name %q enabled %v", obj.ID(), obj.Name(), obj.Enabled())
	}
	if x, y, z := obj.Position(); x != 4 || y != 5 || z != 6 {
		t.Fatalf("position = (%v, %v, %v)", x, y, z)
	}
	if axis, angle := obj.Rotation(); axis != (mgl32.Vec3{1, 0, 0}) || angle != 1 {
		t.Fatalf("rotation = %v %v", axis, angle)
	}
}
