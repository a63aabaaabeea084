package shader

import "github.com/cogentcore/webgpu/wgpu"

type ShaderBuilderOption func(*shader)

// WithEntryPoint overrides the entry point found in the source.
//
// Parameters:
//   - entryPoint: the WGSL function name
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithVertexLayout sets the vertex buffer layouts for a pipeline variant, replacing any
// layout derived from the source.
//
// Parameters:
//   - key: the variant key
//   - layouts: the buffer layouts
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layout
func WithVertexLayout(key int, layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts[key] = layouts
	}
}
