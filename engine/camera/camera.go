package camera

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SlerpBlend is the fraction of the remaining rotation applied by each Advance call.
	// It is not scaled by frame time, so smoothing speed depends on frame rate.
	SlerpBlend = 0.2

	// PitchLimit is the pitch clamp in degrees used when pitch is constrained.
	PitchLimit = 89.0

	defaultFov         = 100.0 * (math.Pi / 180.0) // radians
	defaultAspect      = 1024.0 / 768.0
	defaultNear        = 0.2
	defaultFar         = 100.0
	defaultSensitivity = 0.1
)

var (
	axisFront = mgl32.Vec3{0, 0, -1}
	axisRight = mgl32.Vec3{1, 0, 0}
	axisUp    = mgl32.Vec3{0, 1, 0}
)

// cameraCount is an atomic counter used to generate unique bind group provider names for each camera instance.
var cameraCount atomic.Uint64

type cameraImpl struct {
	fov    float32
	aspect float32
	near   float32
	far    float32

	// yaw and pitch are accumulated mouse input in degrees
	yaw         float32
	pitch       float32
	sensitivity float32

	orientation       common.Quaternion
	targetOrientation common.Quaternion

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	// lookAt is applied to the controller once options have run
	lookAt *[2]mgl32.Vec3

	controller        CameraController
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera is a first-person camera driven by mouse look and keyboard movement.
//
// Rotation is stored as a quaternion built from accumulated yaw and pitch. Mouse input only
// moves the target rotation; each Advance call slerps the current rotation a fixed fraction
// toward it and rebuilds the basis vectors and matrices. Translation, gravity and collisions
// are delegated to the attached CameraController.
//
// A Camera is owned by a single update loop and is not safe for concurrent use.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFov sets the vertical field of view. Takes effect on the next Advance.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio. Takes effect on the next Advance.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// SetNear sets the near plane distance. Takes effect on the next Advance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far plane distance. Takes effect on the next Advance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Eye returns the eye position held by the controller.
	//
	// Returns:
	//   - mgl32.Vec3: world-space eye position
	Eye() mgl32.Vec3

	// Yaw returns the accumulated yaw in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the accumulated pitch in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Sensitivity returns the mouse sensitivity in degrees per input unit.
	//
	// Returns:
	//   - float32: the sensitivity
	Sensitivity() float32

	// Orientation returns the current, smoothed rotation.
	//
	// Returns:
	//   - common.Quaternion: the current rotation
	Orientation() common.Quaternion

	// TargetOrientation returns the rotation the camera is converging toward.
	//
	// Returns:
	//   - common.Quaternion: the target rotation
	TargetOrientation() common.Quaternion

	// Front returns the unit view direction derived from Orientation.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Right returns the unit right vector derived from Orientation.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	Right() mgl32.Vec3

	// Up returns the unit up vector derived from Orientation.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// ViewMatrix returns the view matrix computed by the last Advance.
	//
	// Returns:
	//   - mgl32.Mat4: rotation(orientation) * translate(-eye), column-major
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective matrix computed by the last Advance.
	// Uses OpenGL clip depth (-1..1).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns Projection * View.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// ApplyMouseDelta scales the deltas by Sensitivity and accumulates them into yaw and pitch,
	// clamping pitch to ±89 degrees when constrainPitch is set. Only the target rotation
	// changes; the camera turns over the following Advance calls.
	//
	// Parameters:
	//   - dx: horizontal mouse movement, positive turns right
	//   - dy: vertical mouse movement, positive looks up
	//   - constrainPitch: whether to clamp pitch
	ApplyMouseDelta(dx, dy float32, constrainPitch bool)

	// Advance slerps the orientation SlerpBlend of the way toward the target, then recomputes
	// the basis vectors, view and projection. dt does not scale the blend.
	//
	// Parameters:
	//   - dt: frame time in seconds
	Advance(dt float32)

	// ProcessKey forwards a movement command to the controller using the current front and
	// right vectors.
	//
	// Parameters:
	//   - key: the movement command
	//   - dt: frame time in seconds
	//   - running: whether the run modifier is held
	ProcessKey(key MoveKey, dt float32, running bool)

	// Controller returns the attached CameraController.
	//
	// Returns:
	//   - CameraController: the controller
	Controller() CameraController

	// SetController replaces the attached CameraController.
	//
	// Parameters:
	//   - ctrl: the new controller, must not be nil
	SetController(ctrl CameraController)

	// BindGroupProvider returns the provider holding the camera's GPU uniform buffer.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the camera provider
	BindGroupProvider() bind_group_provider.BindGroupProvider
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera facing -Z with a grounded controller at the origin.
// Defaults: 100 degree fov, 1024/768 aspect, near 0.2, far 100, sensitivity 0.1.
// The basis vectors and matrices are valid immediately.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the new camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		fov:         defaultFov,
		aspect:      defaultAspect,
		near:        defaultNear,
		far:         defaultFar,
		sensitivity: defaultSensitivity,
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera_" + strconv.FormatUint(cameraCount.Load(), 10),
		),
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	if c.lookAt != nil {
		c.controller.SetPosition(c.lookAt[0])
	}

	// start settled on the initial yaw and pitch
	c.targetOrientation = targetFor(c.pitch, c.yaw)
	c.orientation = c.targetOrientation
	c.updateMatrices()

	cameraCount.Add(1)
	return c
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
}

func (c *cameraImpl) SetNear(near float32) {
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.far = far
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	return c.controller.Position()
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Sensitivity() float32 {
	return c.sensitivity
}

func (c *cameraImpl) Orientation() common.Quaternion {
	return c.orientation
}

func (c *cameraImpl) TargetOrientation() common.Quaternion {
	return c.targetOrientation
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.viewProjectionMatrix
}

func (c *cameraImpl) ApplyMouseDelta(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.sensitivity
	c.pitch += dy * c.sensitivity

	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -PitchLimit, PitchLimit)
	}

	c.targetOrientation = targetFor(c.pitch, c.yaw)
}

func (c *cameraImpl) Advance(dt float32) {
	c.orientation = common.Slerp(c.orientation, c.targetOrientation, SlerpBlend)
	c.updateMatrices()
}

func (c *cameraImpl) ProcessKey(key MoveKey, dt float32, running bool) {
	c.controller.Move(key, dt, running, c.front, c.right)
}

func (c *cameraImpl) Controller() CameraController {
	return c.controller
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	if ctrl == nil {
		return
	}
	c.controller = ctrl
	c.updateMatrices()
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return c.bindGroupProvider
}

// targetFor builds the view rotation for pitch and yaw in degrees. Pitch is negated because
// the quaternion rotates the world into camera space.
func targetFor(pitch, yaw float32) common.Quaternion {
	return common.QuaternionFromPitchYaw(mgl32.DegToRad(-pitch), mgl32.DegToRad(yaw))
}

// updateMatrices derives the basis from the orientation and rebuilds view and projection.
// The orientation maps world to camera space, so the world-space basis is the camera axes
// rotated by its inverse: the rows of the view rotation.
func (c *cameraImpl) updateMatrices() {
	toWorld := c.orientation.Conjugate()
	c.front = common.NormalizeOr(toWorld.Rotate(axisFront), axisFront)
	c.right = common.NormalizeOr(toWorld.Rotate(axisRight), axisRight)
	c.up = common.NormalizeOr(toWorld.Rotate(axisUp), axisUp)

	eye := c.controller.Position()
	c.viewMatrix = c.orientation.Mat4().Mul4(mgl32.Translate3D(-eye.X(), -eye.Y(), -eye.Z()))
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
