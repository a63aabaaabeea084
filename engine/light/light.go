package light

import "github.com/go-gl/mathgl/mgl32"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	direction mgl32.Vec3
	ambient   mgl32.Vec3
	diffuse   mgl32.Vec3
	specular  mgl32.Vec3
	shininess float32
	intensity float32
	enabled   bool
}

// Light is the scene's single directional light. It carries the ambient, specular and
// shininess terms used by the cube shader together with a diffuse colour and direction.
//
// The scene uploads it once per frame through GPULightUniform.
type Light interface {
	// Direction returns the normalized direction the light travels in.
	//
	// Returns:
	//   - mgl32.Vec3: the light direction
	Direction() mgl32.Vec3

	// AmbientColour returns the colour added to every fragment regardless of orientation.
	//
	// Returns:
	//   - mgl32.Vec3: the ambient RGB colour
	AmbientColour() mgl32.Vec3

	// DiffuseColour returns the colour scaled by the angle between the surface and the light.
	//
	// Returns:
	//   - mgl32.Vec3: the diffuse RGB colour
	DiffuseColour() mgl32.Vec3

	// SpecularColour returns the highlight colour.
	//
	// Returns:
	//   - mgl32.Vec3: the specular RGB colour
	SpecularColour() mgl32.Vec3

	// Shininess returns the specular exponent.
	//
	// Returns:
	//   - float32: the exponent, larger is tighter
	Shininess() float32

	// Intensity returns the scalar applied to the diffuse and specular terms.
	//
	// Returns:
	//   - float32: the intensity
	Intensity() float32

	// Enabled reports whether the light contributes beyond its ambient term.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetDirection sets the light direction. The vector is normalized; a zero vector is ignored.
	//
	// Parameters:
	//   - dir: the new direction
	SetDirection(dir mgl32.Vec3)

	// SetAmbientColour sets the ambient colour.
	//
	// Parameters:
	//   - colour: RGB colour
	SetAmbientColour(colour mgl32.Vec3)

	// SetDiffuseColour sets the diffuse colour.
	//
	// Parameters:
	//   - colour: RGB colour
	SetDiffuseColour(colour mgl32.Vec3)

	// SetSpecularColour sets the specular colour.
	//
	// Parameters:
	//   - colour: RGB colour
	SetSpecularColour(colour mgl32.Vec3)

	// SetShininess sets the specular exponent.
	//
	// Parameters:
	//   - s: the exponent
	SetShininess(s float32)

	// SetIntensity sets the diffuse and specular scale.
	//
	// Parameters:
	//   - intensity: the scale
	SetIntensity(intensity float32)

	// SetEnabled toggles the diffuse and specular terms.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a light with ambient (0.2, 0.2, 0.2), white diffuse and specular, shininess 32,
// pointing down and slightly forward.
//
// Parameters:
//   - options: functional options applied after defaults
//
// Returns:
//   - Light: the light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		direction: mgl32.Vec3{-0.3, -1, -0.5}.Normalize(),
		ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		diffuse:   mgl32.Vec3{1, 1, 1},
		specular:  mgl32.Vec3{1, 1, 1},
		shininess: 32,
		intensity: 1,
		enabled:   true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) AmbientColour() mgl32.Vec3 {
	return l.ambient
}

func (l *lightImpl) DiffuseColour() mgl32.Vec3 {
	return l.diffuse
}

func (l *lightImpl) SpecularColour() mgl32.Vec3 {
	return l.specular
}

func (l *lightImpl) Shininess() float32 {
	return l.shininess
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetDirection(dir mgl32.Vec3) {
	if dir.LenSqr() == 0 {
		return
	}
	l.direction = dir.Normalize()
}

func (l *lightImpl) SetAmbientColour(colour mgl32.Vec3) {
	l.ambient = colour
}

func (l *lightImpl) SetDiffuseColour(colour mgl32.Vec3) {
	l.diffuse = colour
}

func (l *lightImpl) SetSpecularColour(colour mgl32.Vec3) {
	l.specular = colour
}

func (l *lightImpl) SetShininess(s float32) {
	l.shininess = s
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
