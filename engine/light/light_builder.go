package light

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithDirection sets the direction the light travels in. The direction is normalized before
// storing; a zero vector keeps the default.
//
// Parameters:
//   - x, y, z: the direction components
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetDirection(mgl32.Vec3{x, y, z})
	}
}

// WithAmbientColour sets the ambient RGB colour.
//
// Parameters:
//   - r, g, b: the colour components
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient colour to a lightImpl
func WithAmbientColour(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = mgl32.Vec3{r, g, b}
	}
}

// WithDiffuseColour sets the diffuse RGB colour.
//
// Parameters:
//   - r, g, b: the colour components
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse colour to a lightImpl
func WithDiffuseColour(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = mgl32.Vec3{r, g, b}
	}
}

// WithSpecularColour sets the specular RGB colour.
//
// Parameters:
//   - r, g, b: the colour components
//
// Returns:
//   - LightBuilderOption: a function that applies the specular colour to a lightImpl
func WithSpecularColour(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = mgl32.Vec3{r, g, b}
	}
}

// WithShininess sets the specular exponent.
//
// Parameters:
//   - s: the exponent
//
// Returns:
//   - LightBuilderOption: a function that applies the shininess to a lightImpl
func WithShininess(s float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.shininess = s
	}
}

// WithIntensity sets the scalar applied to diffuse and specular terms.
//
// Parameters:
//   - intensity: the scale
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled state to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
