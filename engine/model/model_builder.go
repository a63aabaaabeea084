package model

import (
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/bind_group_provider"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the mesh vertices.
//
// Parameters:
//   - vertices: the vertex list
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle list indices.
//
// Parameters:
//   - indices: the index list, three per triangle
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithMeshProvider is an option builder that sets the BindGroupProvider for GPU mesh resources.
//
// Parameters:
//   - provider: the mesh bind group provider
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh provider option to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}
