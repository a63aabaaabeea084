package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func nearVec(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func nearMat(a, b mgl32.Mat4) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

// settle advances until the orientation reaches its target.
func settle(c Camera) {
	for i := 0; i < 100; i++ {
		c.Advance(1.0 / 60.0)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	if !near(c.Fov(), mgl32.DegToRad(100)) {
		t.Errorf("fov = %v", c.Fov())
	}
	if !near(c.Aspect(), 1024.0/768.0) || c.Near() != 0.2 || c.Far() != 100 {
		t.Errorf("aspect %v near %v far %v", c.Aspect(), c.Near(), c.Far())
	}
	if c.Sensitivity() != 0.1 {
		t.Errorf("sensitivity = %v", c.Sensitivity())
	}
	if !nearVec(c.Front(), mgl32.Vec3{0, 0, -1}) || !nearVec(c.Right(), mgl32.Vec3{1, 0, 0}) || !nearVec(c.Up(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("basis front %v right %v up %v", c.Front(), c.Right(), c.Up())
	}
	if c.Eye() != (mgl32.Vec3{}) || !c.Controller().Grounded() {
		t.Errorf("eye %v grounded %v", c.Eye(), c.Controller().Grounded())
	}
	if !nearMat(c.ProjectionMatrix(), mgl32.Perspective(c.Fov(), c.Aspect(), c.Near(), c.Far())) {
		t.Error("projection does not match perspective parameters")
	}
}

func TestApplyMouseDeltaAccumulatesYaw(t *testing.T) {
	c := NewCamera(WithSensitivity(0.1))
	before := c.Orientation()

	c.ApplyMouseDelta(100, 0, true)

	if c.Yaw() != 10 {
		t.Fatalf("yaw = %v, want 10", c.Yaw())
	}
	if c.Pitch() != 0 {
		t.Fatalf("pitch = %v, want 0", c.Pitch())
	}
	if c.Orientation() != before {
		t.Fatal("orientation changed before Advance")
	}
	want := common.QuaternionFromPitchYaw(0, mgl32.DegToRad(10))
	if !c.TargetOrientation().ApproxEqual(want, tolerance) {
		t.Fatalf("target = %+v, want %+v", c.TargetOrientation(), want)
	}
}

func TestApplyMouseDeltaClampsPitch(t *testing.T) {
	tests := []struct {
		name string
		dy   float32
		want float32
	}{
		{"small up", 100, 10},
		{"huge up", 1e6, 89},
		{"huge down", -1e6, -89},
		{"exact limit", 890, 89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithSensitivity(0.1))
			c.ApplyMouseDelta(0, tt.dy, true)
			if !near(c.Pitch(), tt.want) {
				t.Fatalf("pitch = %v, want %v", c.Pitch(), tt.want)
			}
		})
	}

	c := NewCamera(WithSensitivity(0.1))
	for i := 0; i < 50; i++ {
		c.ApplyMouseDelta(3, 400, true)
		if c.Pitch() > PitchLimit || c.Pitch() < -PitchLimit {
			t.Fatalf("pitch escaped the clamp: %v", c.Pitch())
		}
	}

	free := NewCamera(WithSensitivity(1))
	free.ApplyMouseDelta(0, 120, false)
	if free.Pitch() != 120 {
		t.Fatalf("unconstrained pitch = %v, want 120", free.Pitch())
	}
}

func TestAdvanceSmoothsTowardTarget(t *testing.T) {
	c := NewCamera(WithSensitivity(1))
	c.ApplyMouseDelta(90, 0, true)

	start := c.Orientation()
	target := c.TargetOrientation()
	c.Advance(0.016)

	first := c.Orientation()
	if first.ApproxEqual(start, 1e-6) || first.ApproxEqual(target, 1e-6) {
		t.Fatalf("one advance should land strictly between start and target, got %+v", first)
	}
	want := common.Slerp(start, target, SlerpBlend)
	if !first.ApproxEqual(want, 1e-6) {
		t.Fatalf("got %+v, want %+v", first, want)
	}

	settle(c)
	if c.Orientation() != target {
		t.Fatalf("orientation did not reach target: %+v vs %+v", c.Orientation(), target)
	}
}

func TestBasisOrthonormalAfterAdvance(t *testing.T) {
	c := NewCamera(WithSensitivity(0.3))
	moves := [][2]float32{{40, 10}, {-300, 200}, {1000, -50}, {5, 5}, {-77, -500}, {0, 0}, {1234, 321}}

	for _, m := range moves {
		c.ApplyMouseDelta(m[0], m[1], true)
		for i := 0; i < 3; i++ {
			c.Advance(0.016)
			f, r, u := c.Front(), c.Right(), c.Up()
			if !near(f.Len(), 1) || !near(r.Len(), 1) || !near(u.Len(), 1) {
				t.Fatalf("basis not unit: |f|=%v |r|=%v |u|=%v", f.Len(), r.Len(), u.Len())
			}
			if !near(f.Dot(r), 0) || !near(f.Dot(u), 0) || !near(r.Dot(u), 0) {
				t.Fatalf("basis not orthogonal: f.r=%v f.u=%v r.u=%v", f.Dot(r), f.Dot(u), r.Dot(u))
			}
		}
	}
}

func TestYawTurnsRight(t *testing.T) {
	c := NewCamera(WithSensitivity(1))
	c.ApplyMouseDelta(90, 0, true)
	settle(c)

	if !nearVec(c.Front(), mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("front = %v, want +X", c.Front())
	}
	if !nearVec(c.Right(), mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("right = %v, want +Z", c.Right())
	}
}

func TestPitchLooksUp(t *testing.T) {
	c := NewCamera(WithSensitivity(1))
	c.ApplyMouseDelta(0, 30, true)
	settle(c)

	want := mgl32.Vec3{0, float32(math.Sin(math.Pi / 6)), -float32(math.Cos(math.Pi / 6))}
	if !nearVec(c.Front(), want) {
		t.Fatalf("front = %v, want %v", c.Front(), want)
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	ctrl := NewCameraController(WithPosition(1, 2, 3))
	c := NewCamera(WithController(ctrl), WithSensitivity(1))
	c.ApplyMouseDelta(35, -20, true)
	settle(c)

	eye := c.Eye()
	want := mgl32.LookAtV(eye, eye.Add(c.Front()), c.Up())
	if !nearMat(c.ViewMatrix(), want) {
		t.Fatalf("view = %v\nwant %v", c.ViewMatrix(), want)
	}
	if !nearMat(c.ViewProjectionMatrix(), c.ProjectionMatrix().Mul4(c.ViewMatrix())) {
		t.Fatal("view-projection is not projection * view")
	}
}

func TestWithLookAt(t *testing.T) {
	tests := []struct {
		name      string
		eye       mgl32.Vec3
		target    mgl32.Vec3
		wantFront mgl32.Vec3
		wantYaw   float32
	}{
		{"down -z", mgl32.Vec3{0, 1, 5}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}, 0},
		{"toward +x", mgl32.Vec3{0, 1, 5}, mgl32.Vec3{4, 1, 5}, mgl32.Vec3{1, 0, 0}, 90},
		{"toward -x", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{-2, 0, 0}, mgl32.Vec3{-1, 0, 0}, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithLookAt(tt.eye, tt.target))
			if c.Eye() != tt.eye {
				t.Fatalf("eye = %v, want %v", c.Eye(), tt.eye)
			}
			if !near(c.Yaw(), tt.wantYaw) {
				t.Fatalf("yaw = %v, want %v", c.Yaw(), tt.wantYaw)
			}
			if !nearVec(c.Front(), tt.wantFront) {
				t.Fatalf("front = %v, want %v", c.Front(), tt.wantFront)
			}
		})
	}
}

func TestWithLookAtPitch(t *testing.T) {
	c := NewCamera(WithLookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, -1}))
	if !near(c.Pitch(), 45) {
		t.Fatalf("pitch = %v, want 45", c.Pitch())
	}
	want := mgl32.Vec3{0, 1, -1}.Normalize()
	if !nearVec(c.Front(), want) {
		t.Fatalf("front = %v, want %v", c.Front(), want)
	}
}

func TestProcessKeyFollowsOrientation(t *testing.T) {
	ctrl := NewCameraController(WithSpeed(2))
	c := NewCamera(WithController(ctrl), WithSensitivity(1))
	c.ApplyMouseDelta(90, 0, true)
	settle(c)

	c.ProcessKey(MoveForward, 1, false)
	if !nearVec(c.Eye(), mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("eye after forward = %v", c.Eye())
	}

	c.ProcessKey(MoveLeft, 0.5, true)
	if !nearVec(c.Eye(), mgl32.Vec3{2, 0, -2}) {
		t.Fatalf("eye after running strafe = %v", c.Eye())
	}
}

func TestGPUCameraUniform(t *testing.T) {
	c := NewCamera(WithLookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 0}))
	u := NewGPUCameraUniform(c)

	if u.Size() != 80 {
		t.Fatalf("size = %d, want 80", u.Size())
	}
	if u.Eye != [3]float32{1, 2, 3} {
		t.Fatalf("eye = %v", u.Eye)
	}
	want := common.WebGPUClipCorrection.Mul4(c.ViewProjectionMatrix())
	if !nearMat(mgl32.Mat4(u.ViewProj), want) {
		t.Fatal("view-projection was not depth corrected")
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("marshal length = %d", len(buf))
	}
	if got := math.Float32frombits(uint32(buf[68]) | uint32(buf[69])<<8 | uint32(buf[70])<<16 | uint32(buf[71])<<24); got != 2 {
		t.Fatalf("eye.y at offset 68 = %v", got)
	}
}
