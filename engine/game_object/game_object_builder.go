package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the name of the GameObject.
//
// Parameters:
//   - name: a human readable name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject starts enabled. Objects are enabled by default.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the cube center.
//
// Parameters:
//   - x, y, z: world-space center
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithScale sets the cube half-extents.
//
// Parameters:
//   - sx, sy, sz: half sizes along each axis
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithRotation sets the visual rotation as an axis and angle.
//
// Parameters:
//   - axis: the rotation axis
//   - angle: the angle in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(axis mgl32.Vec3, angle float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationAxis = axis
		obj.angle = angle
	}
}

// WithColor sets the RGBA tint.
//
// Parameters:
//   - color: the tint
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the color
func WithColor(color [4]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.color = color
	}
}
