package camera

import "github.com/go-gl/mathgl/mgl32"

// MoveKey is a movement command understood by the controller.
type MoveKey int

const (
	// MoveForward translates along the camera front vector.
	MoveForward MoveKey = iota
	// MoveBackward translates against the camera front vector.
	MoveBackward
	// MoveLeft strafes against the camera right vector.
	MoveLeft
	// MoveRight strafes along the camera right vector.
	MoveRight
	// MoveJump starts a jump when the controller is grounded.
	MoveJump
)

// String returns a short name for the key, used in logs.
func (k MoveKey) String() string {
	switch k {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveJump:
		return "jump"
	}
	return "unknown"
}

// Obstacle is a static box the controller must not penetrate.
// Position is the box center and Scale its per-axis half-extents.
type Obstacle interface {
	// Position returns the box center.
	//
	// Returns:
	//   - x, y, z: world-space center
	Position() (x, y, z float32)

	// Scale returns the box half-extents.
	//
	// Returns:
	//   - sx, sy, sz: half sizes along each axis
	Scale() (sx, sy, sz float32)
}

// CameraController owns the translational state of a first-person camera: the eye position,
// vertical velocity and grounded flag. It integrates movement input, gravity and jumps, and
// pushes the eye out of obstacles.
//
// The controller never reads orientation itself. Movement directions are passed in by the
// Camera on each call, so the controller can also be driven directly in tests.
type CameraController interface {
	// Position returns the eye position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space eye position
	Position() mgl32.Vec3

	// SetPosition moves the eye without touching velocity or grounded state.
	//
	// Parameters:
	//   - p: world-space eye position
	SetPosition(p mgl32.Vec3)

	// VerticalVelocity returns the current vertical velocity in units per second.
	//
	// Returns:
	//   - float32: the vertical velocity
	VerticalVelocity() float32

	// SetVerticalVelocity overrides the vertical velocity.
	//
	// Parameters:
	//   - v: vertical velocity in units per second
	SetVerticalVelocity(v float32)

	// Grounded reports whether vertical motion is held by ground contact.
	//
	// Returns:
	//   - bool: true while grounded
	Grounded() bool

	// SetGrounded overrides the grounded flag. Clearing it starts free fall on the next
	// IntegratePhysics call.
	//
	// Parameters:
	//   - grounded: the new flag value
	SetGrounded(grounded bool)

	// Speed returns the walking speed in units per second.
	//
	// Returns:
	//   - float32: the walking speed
	Speed() float32

	// Gravity returns the vertical acceleration applied while airborne.
	//
	// Returns:
	//   - float32: gravity in units per second squared (negative is down)
	Gravity() float32

	// JumpStrength returns the vertical velocity assigned when a jump starts.
	//
	// Returns:
	//   - float32: the jump velocity
	JumpStrength() float32

	// Radius returns the configured collision radius of the eye.
	//
	// Returns:
	//   - float32: the collision radius
	Radius() float32

	// Move applies one movement command for a frame. Translation distance is Speed()*dt,
	// doubled while running. Forward and backward follow front, strafing follows right.
	// MoveJump sets the vertical velocity to JumpStrength() and clears the grounded flag,
	// but only while grounded.
	//
	// Parameters:
	//   - key: the movement command
	//   - dt: frame time in seconds
	//   - running: whether the run modifier is held
	//   - front: the camera's current front vector
	//   - right: the camera's current right vector
	Move(key MoveKey, dt float32, running bool, front, right mgl32.Vec3)

	// IntegratePhysics advances gravity by dt while airborne and clamps the eye to the ground
	// plane y = 0, landing when it is reached.
	//
	// Parameters:
	//   - dt: frame time in seconds
	IntegratePhysics(dt float32)

	// ResolveCollisions pushes the eye out of every obstacle it is closer than radius to,
	// one obstacle at a time in slice order. A push that is mostly upward counts as landing
	// on the obstacle.
	//
	// Parameters:
	//   - obstacles: the boxes to resolve against
	//   - radius: the collision radius of the eye
	ResolveCollisions(obstacles []Obstacle, radius float32)
}
