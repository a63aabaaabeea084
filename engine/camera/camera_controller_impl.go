package camera

import (
	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultSpeed        = 2.5
	defaultGravity      = -9.81
	defaultJumpStrength = 5.0
	defaultRadius       = 0.25

	// runMultiplier scales movement while the run modifier is held.
	runMultiplier = 2.0

	// landingThreshold is the minimum vertical component of a push-out direction that
	// counts as standing on top of an obstacle.
	landingThreshold = 0.5
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	position mgl32.Vec3

	verticalVelocity float32
	grounded         bool

	speed        float32
	gravity      float32
	jumpStrength float32
	radius       float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a grounded controller at the origin.
// Defaults: speed 2.5, gravity -9.81, jump strength 5, collision radius 0.25.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		grounded:     true,
		speed:        defaultSpeed,
		gravity:      defaultGravity,
		jumpStrength: defaultJumpStrength,
		radius:       defaultRadius,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	cc.position = p
}

func (cc *cameraControllerImpl) VerticalVelocity() float32 {
	return cc.verticalVelocity
}

func (cc *cameraControllerImpl) SetVerticalVelocity(v float32) {
	cc.verticalVelocity = v
}

func (cc *cameraControllerImpl) Grounded() bool {
	return cc.grounded
}

func (cc *cameraControllerImpl) SetGrounded(grounded bool) {
	cc.grounded = grounded
}

func (cc *cameraControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *cameraControllerImpl) Gravity() float32 {
	return cc.gravity
}

func (cc *cameraControllerImpl) JumpStrength() float32 {
	return cc.jumpStrength
}

func (cc *cameraControllerImpl) Radius() float32 {
	return cc.radius
}

func (cc *cameraControllerImpl) Move(key MoveKey, dt float32, running bool, front, right mgl32.Vec3) {
	velocity := cc.speed * dt
	if running {
		velocity *= runMultiplier
	}

	switch key {
	case MoveForward:
		cc.position = cc.position.Add(front.Mul(velocity))
	case MoveBackward:
		cc.position = cc.position.Sub(front.Mul(velocity))
	case MoveLeft:
		cc.position = cc.position.Sub(right.Mul(velocity))
	case MoveRight:
		cc.position = cc.position.Add(right.Mul(velocity))
	case MoveJump:
		if cc.grounded {
			cc.verticalVelocity = cc.jumpStrength
			cc.grounded = false
		}
	}
}

func (cc *cameraControllerImpl) IntegratePhysics(dt float32) {
	if cc.grounded {
		return
	}

	cc.verticalVelocity += cc.gravity * dt
	cc.position[1] += cc.verticalVelocity * dt

	if cc.position[1] <= 0 {
		cc.position[1] = 0
		cc.verticalVelocity = 0
		cc.grounded = true
	}
}

func (cc *cameraControllerImpl) ResolveCollisions(obstacles []Obstacle, radius float32) {
	for _, obstacle := range obstacles {
		if obstacle == nil {
			continue
		}
		box := common.NewAABB(common.Vec3From(obstacle.Position()), common.Vec3From(obstacle.Scale()))
		closest := box.ClosestPoint(cc.position)
		offset := cc.position.Sub(closest)

		if offset.Len() >= radius {
			continue
		}

		dir := common.NormalizeOr(offset, common.WorldUp)
		cc.position = closest.Add(dir.Mul(radius))

		if dir.Dot(common.WorldUp) > landingThreshold {
			cc.grounded = true
			cc.verticalVelocity = 0
		}
	}
}
