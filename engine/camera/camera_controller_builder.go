package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial eye position.
//
// Parameters:
//   - x, y, z: world-space eye position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl32.Vec3{x, y, z}
	}
}

// WithSpeed sets the walking speed in units per second.
//
// Parameters:
//   - speed: units per second, doubled while running
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}

// WithGravity sets the vertical acceleration applied while airborne.
//
// Parameters:
//   - gravity: acceleration in units per second squared, negative pulls down
//
// Returns:
//   - CameraControllerOption: functional option to set gravity
func WithGravity(gravity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.gravity = gravity
	}
}

// WithJumpStrength sets the vertical velocity assigned at the start of a jump.
//
// Parameters:
//   - strength: jump velocity in units per second
//
// Returns:
//   - CameraControllerOption: functional option to set the jump strength
func WithJumpStrength(strength float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.jumpStrength = strength
	}
}

// WithCollisionRadius sets the collision radius reported by Radius.
//
// Parameters:
//   - radius: the eye's collision radius
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithCollisionRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithAirborne starts the controller in free fall with the given vertical velocity.
//
// Parameters:
//   - verticalVelocity: the initial vertical velocity
//
// Returns:
//   - CameraControllerOption: functional option to start airborne
func WithAirborne(verticalVelocity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.grounded = false
		cc.verticalVelocity = verticalVelocity
	}
}
