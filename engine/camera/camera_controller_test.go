package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type testBox struct {
	center mgl32.Vec3
	half   mgl32.Vec3
}

func (b testBox) Position() (x, y, z float32) {
	return b.center[0], b.center[1], b.center[2]
}

func (b testBox) Scale() (sx, sy, sz float32) {
	return b.half[0], b.half[1], b.half[2]
}

var unitBox = testBox{center: mgl32.Vec3{0, 0, 0}, half: mgl32.Vec3{0.5, 0.5, 0.5}}

func TestJumpFromGround(t *testing.T) {
	cc := NewCameraController()
	cc.Move(MoveJump, 0.016, false, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 0, 0})

	if cc.VerticalVelocity() != cc.JumpStrength() {
		t.Fatalf("vertical velocity = %v, want %v", cc.VerticalVelocity(), cc.JumpStrength())
	}
	if cc.Grounded() {
		t.Fatal("still grounded after jump")
	}

	// a second jump while airborne does nothing
	cc.SetVerticalVelocity(-1)
	cc.Move(MoveJump, 0.016, false, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 0, 0})
	if cc.VerticalVelocity() != -1 {
		t.Fatalf("airborne jump changed velocity to %v", cc.VerticalVelocity())
	}
}

func TestFallToGround(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 5, 0), WithAirborne(0), WithGravity(-9.81))

	prev := cc.Position().Y()
	for i := 0; i < 100 && !cc.Grounded(); i++ {
		cc.IntegratePhysics(0.1)
		y := cc.Position().Y()
		if y >= prev {
			t.Fatalf("step %d: y did not decrease (%v -> %v)", i, prev, y)
		}
		prev = y
	}

	if !cc.Grounded() {
		t.Fatal("never landed")
	}
	if cc.Position().Y() != 0 {
		t.Fatalf("landed at y = %v, want exactly 0", cc.Position().Y())
	}
	if cc.VerticalVelocity() != 0 {
		t.Fatalf("vertical velocity after landing = %v", cc.VerticalVelocity())
	}
}

func TestIntegratePhysicsGroundedIsNoop(t *testing.T) {
	cc := NewCameraController(WithPosition(1, 3, 1))
	cc.IntegratePhysics(1)
	if cc.Position() != (mgl32.Vec3{1, 3, 1}) || cc.VerticalVelocity() != 0 {
		t.Fatalf("grounded controller moved: %v vy=%v", cc.Position(), cc.VerticalVelocity())
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	cc := NewCameraController()
	cc.Move(MoveJump, 0, false, mgl32.Vec3{}, mgl32.Vec3{})

	peak := float32(0)
	for i := 0; i < 200 && !cc.Grounded(); i++ {
		cc.IntegratePhysics(0.02)
		peak = max(peak, cc.Position().Y())
	}
	if !cc.Grounded() || cc.Position().Y() != 0 {
		t.Fatalf("did not land: %v grounded=%v", cc.Position(), cc.Grounded())
	}
	// v^2 / 2g is about 1.27 for the defaults
	if peak < 1.1 || peak > 1.4 {
		t.Fatalf("peak height %v out of range", peak)
	}
}

func TestMoveDirectionsAndRun(t *testing.T) {
	front := mgl32.Vec3{0, 0, -1}
	right := mgl32.Vec3{1, 0, 0}

	tests := []struct {
		key     MoveKey
		running bool
		want    mgl32.Vec3
	}{
		{MoveForward, false, mgl32.Vec3{0, 0, -1}},
		{MoveBackward, false, mgl32.Vec3{0, 0, 1}},
		{MoveLeft, false, mgl32.Vec3{-1, 0, 0}},
		{MoveRight, false, mgl32.Vec3{1, 0, 0}},
		{MoveForward, true, mgl32.Vec3{0, 0, -2}},
		{MoveRight, true, mgl32.Vec3{2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			cc := NewCameraController(WithSpeed(4))
			cc.Move(tt.key, 0.25, tt.running, front, right)
			if !nearVec(cc.Position(), tt.want) {
				t.Fatalf("position = %v, want %v", cc.Position(), tt.want)
			}
		})
	}
}

func TestResolveCollisionsInsideBox(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 0, 0.3))
	cc.ResolveCollisions([]Obstacle{unitBox}, 0.25)

	if !nearVec(cc.Position(), mgl32.Vec3{0, 0, 0.25}) {
		t.Fatalf("eye = %v, want (0, 0, 0.25)", cc.Position())
	}
}

func TestResolveCollisionsLanding(t *testing.T) {
	cc := NewCameraController(WithPosition(0.1, 0.6, 0), WithAirborne(-3))
	cc.ResolveCollisions([]Obstacle{unitBox}, 0.25)

	if !nearVec(cc.Position(), mgl32.Vec3{0.1, 0.75, 0}) {
		t.Fatalf("eye = %v, want (0.1, 0.75, 0)", cc.Position())
	}
	if !cc.Grounded() || cc.VerticalVelocity() != 0 {
		t.Fatalf("grounded=%v vy=%v after landing on box", cc.Grounded(), cc.VerticalVelocity())
	}
}

func TestResolveCollisionsZeroLengthPushGoesUp(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 0.5, 0), WithAirborne(-1))
	cc.ResolveCollisions([]Obstacle{unitBox}, 0.25)

	if !nearVec(cc.Position(), mgl32.Vec3{0, 0.75, 0}) {
		t.Fatalf("eye = %v, want (0, 0.75, 0)", cc.Position())
	}
	if !cc.Grounded() {
		t.Fatal("upward fallback push should land")
	}
}

func TestResolveCollisionsSidePushKeepsAirborne(t *testing.T) {
	cc := NewCameraController(WithPosition(0.6, 0, 0), WithAirborne(-2))
	cc.ResolveCollisions([]Obstacle{unitBox}, 0.25)

	if !nearVec(cc.Position(), mgl32.Vec3{0.75, 0, 0}) {
		t.Fatalf("eye = %v, want (0.75, 0, 0)", cc.Position())
	}
	if cc.Grounded() || cc.VerticalVelocity() != -2 {
		t.Fatalf("side push changed vertical state: grounded=%v vy=%v", cc.Grounded(), cc.VerticalVelocity())
	}
}

func TestResolveCollisionsOutOfReach(t *testing.T) {
	cc := NewCameraController(WithPosition(3, 0, 0))
	cc.ResolveCollisions([]Obstacle{unitBox, nil, testBox{center: mgl32.Vec3{0, 0, -3}, half: mgl32.Vec3{1, 1, 1}}}, 0.25)

	if cc.Position() != (mgl32.Vec3{3, 0, 0}) {
		t.Fatalf("eye moved to %v", cc.Position())
	}
}

func TestResolveCollisionsInOrder(t *testing.T) {
	// the second box only overlaps the eye after the first box has pushed it
	second := testBox{center: mgl32.Vec3{0, 0, 1.4}, half: mgl32.Vec3{0.5, 0.5, 0.5}}
	cc := NewCameraController(WithPosition(0, 0, 0.6))

	cc.ResolveCollisions([]Obstacle{unitBox, second}, 0.25)
	if !nearVec(cc.Position(), mgl32.Vec3{0, 0, 0.65}) {
		t.Fatalf("eye = %v, want (0, 0, 0.65)", cc.Position())
	}

	reversed := NewCameraController(WithPosition(0, 0, 0.6))
	reversed.ResolveCollisions([]Obstacle{second, unitBox}, 0.25)
	if !nearVec(reversed.Position(), mgl32.Vec3{0, 0, 0.75}) {
		t.Fatalf("reversed order eye = %v, want (0, 0, 0.75)", reversed.Position())
	}
}

func TestFovKick(t *testing.T) {
	k := NewFovKick(1, 0.5, 1)

	if got := k.Update(false, 0.1); got != 1 {
		t.Fatalf("resting fov = %v", got)
	}

	mid := k.Update(true, 0.5)
	if mid <= 1 || mid >= 1.5 {
		t.Fatalf("mid-ease fov = %v", mid)
	}
	if got := k.Update(true, 1); got != 1.5 {
		t.Fatalf("eased fov = %v, want 1.5", got)
	}
	if got := k.Update(false, 2); got != 1 {
		t.Fatalf("released fov = %v, want 1", got)
	}

	instant := NewFovKick(1, 0.25, 0)
	if got := instant.Update(true, 0); got != 1.25 {
		t.Fatalf("instant kick = %v", got)
	}
}
