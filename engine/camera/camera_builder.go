package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the camera's near clipping plane distance.
//
// Parameters:
//   - near: the near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the camera's far clipping plane distance.
//
// Parameters:
//   - far: the far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithSensitivity sets the mouse sensitivity in degrees per input unit.
//
// Parameters:
//   - sensitivity: degrees of rotation per unit of mouse movement
//
// Returns:
//   - CameraBuilderOption: a function that sets the sensitivity
func WithSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.sensitivity = sensitivity
	}
}

// WithYawPitch sets the starting yaw and pitch in degrees. Pitch is clamped to ±89.
//
// Parameters:
//   - yaw: starting yaw in degrees, 0 faces -Z
//   - pitch: starting pitch in degrees, positive looks up
//
// Returns:
//   - CameraBuilderOption: a function that sets the starting angles
func WithYawPitch(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.pitch = mgl32.Clamp(pitch, -PitchLimit, PitchLimit)
	}
}

// WithLookAt places the eye and turns the camera to face target.
// Yaw and pitch are derived from normalize(target - eye). If eye and target coincide the
// angles are left unchanged.
//
// Parameters:
//   - eye: the eye position
//   - target: the point to face
//
// Returns:
//   - CameraBuilderOption: a function that sets the eye and starting angles
func WithLookAt(eye, target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt = &[2]mgl32.Vec3{eye, target}

		dir := target.Sub(eye)
		if dir.LenSqr() == 0 {
			return
		}
		dir = dir.Normalize()
		c.pitch = mgl32.Clamp(mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1))))), -PitchLimit, PitchLimit)
		c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir.X()), float64(-dir.Z()))))
	}
}

// WithController attaches a CameraController. A default controller is created when none is given.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
