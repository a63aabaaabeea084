package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option applied to a renderer during NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the initial present mode.
//
// Parameters:
//   - mode: PresentModeVSync or PresentModeUncapped
//
// Returns:
//   - RendererBuilderOption: a function that sets the present mode
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample count. Use MSAAOff to draw straight into the swapchain.
//
// Parameters:
//   - count: the sample count
//
// Returns:
//   - RendererBuilderOption: a function that sets the sample count
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - red, green, blue, alpha: color components in 0..1
//
// Returns:
//   - RendererBuilderOption: a function that sets the clear color
func WithClearColor(red, green, blue, alpha float64) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: alpha}
	}
}

// WithForceSoftwareRenderer requests the fallback (CPU) adapter. Needs a software Vulkan
// driver such as lavapipe or SwiftShader.
//
// Parameters:
//   - force: true to request the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that sets the adapter preference
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithBackend supplies a backend instead of creating one from the surface.
//
// Parameters:
//   - backend: the backend to drive
//
// Returns:
//   - RendererBuilderOption: a function that sets the backend
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}
