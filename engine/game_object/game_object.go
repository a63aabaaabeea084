package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool

	position     mgl32.Vec3
	scale        mgl32.Vec3 // half-extents
	rotationAxis mgl32.Vec3
	angle        float32 // radians about rotationAxis
	color        [4]float32
}

// GameObject is a cube in the scene. Position is the cube center and Scale its per-axis
// half-extents, so the collision box is Position ± Scale. Rotation only affects how the cube
// is drawn; collision always uses the axis-aligned box.
//
// GameObject satisfies camera.Obstacle.
type GameObject interface {
	// ID returns the object's unique identifier within its scene.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's name, taken from the layout file when loaded.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// Enabled returns whether this object is drawn and collided with.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the cube center.
	//
	// Returns:
	//   - x, y, z: world-space center
	Position() (x, y, z float32)

	// Scale returns the cube half-extents.
	//
	// Returns:
	//   - sx, sy, sz: half sizes along each axis
	Scale() (sx, sy, sz float32)

	// Rotation returns the visual rotation as an axis and an angle in radians.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation axis
	//   - float32: the angle in radians
	Rotation() (mgl32.Vec3, float32)

	// Color returns the RGBA tint applied to the cube's texture.
	//
	// Returns:
	//   - [4]float32: the tint
	Color() [4]float32

	// AABB returns the collision box Position ± Scale.
	//
	// Returns:
	//   - common.AABB: the box
	AABB() common.AABB

	// ModelMatrix returns translate(position) * rotate(axis, angle) * scale(halfExtents) for a
	// cube mesh spanning -1..1 on every axis.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// SetID sets the object's identifier. Scenes assign IDs when objects are added.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is drawn and collided with.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the cube center.
	//
	// Parameters:
	//   - x, y, z: world-space center
	SetPosition(x, y, z float32)

	// SetScale sets the cube half-extents.
	//
	// Parameters:
	//   - sx, sy, sz: half sizes along each axis
	SetScale(sx, sy, sz float32)

	// SetRotation sets the visual rotation.
	//
	// Parameters:
	//   - axis: the rotation axis, need not be normalized
	//   - angle: the angle in radians
	SetRotation(axis mgl32.Vec3, angle float32)

	// SetColor sets the RGBA tint.
	//
	// Parameters:
	//   - color: the tint
	SetColor(color [4]float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled unit-half-extent cube at the origin with a white tint.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:        mgl32.Vec3{0.5, 0.5, 0.5},
		rotationAxis: common.WorldUp,
		color:        [4]float32{1, 1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) Rotation() (mgl32.Vec3, float32) {
	return g.rotationAxis, g.angle
}

func (g *gameObject) Color() [4]float32 {
	return g.color
}

func (g *gameObject) AABB() common.AABB {
	return common.NewAABB(g.position, g.scale)
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	return common.BuildModelMatrix(g.position, g.scale, g.rotationAxis, g.angle)
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = mgl32.Vec3{x, y, z}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = mgl32.Vec3{sx, sy, sz}
}

func (g *gameObject) SetRotation(axis mgl32.Vec3, angle float32) {
	g.rotationAxis = axis
	g.angle = angle
}

func (g *gameObject) SetColor(color [4]float32) {
	g.color = color
}
