package scene

import (
	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/camera"
	"github.com/Carmen-Shannon/cubewalk/engine/game_object"
	"github.com/Carmen-Shannon/cubewalk/engine/light"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithObjects adds initial objects to the scene in collision order.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.add(objects...)
	}
}

// WithLight sets the scene's directional light. A default light is used otherwise.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lt = l
	}
}

// WithRenderer attaches a renderer. The scene creates its pipeline and GPU resources on it
// during NewScene. Without a renderer the scene only simulates.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.r = r
	}
}

// WithFovKick widens the camera's field of view while running.
//
// Parameters:
//   - kick: the kick to apply each Update
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFovKick(kick *camera.FovKick) SceneBuilderOption {
	return func(s *scene) {
		s.fovKick = kick
	}
}

// WithWorkers sets the number of worker goroutines used to build instance data.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		s.workers = max(n, 1)
	}
}

// WithTexture sets the albedo texture applied to every cube. A grey checkerboard is used otherwise.
//
// Parameters:
//   - tex: the texture pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTexture(tex common.TextureStagingData) SceneBuilderOption {
	return func(s *scene) {
		s.texture = &tex
	}
}

// WithCullingDisabled turns off frustum culling so every enabled object is drawn.
//
// Parameters:
//   - disabled: true to draw everything
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithInstanceCapacity sets the starting size, in objects, of the instance buffer. The buffer
// doubles whenever more objects are visible.
//
// Parameters:
//   - n: the starting capacity (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithInstanceCapacity(n int) SceneBuilderOption {
	return func(s *scene) {
		s.instanceCapacity = max(n, 1)
	}
}
