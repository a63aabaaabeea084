package engine

import (
	"time"

	"github.com/Carmen-Shannon/cubewalk/engine/profiler"
	"github.com/Carmen-Shannon/cubewalk/engine/scene"
	"github.com/Carmen-Shannon/cubewalk/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose loop drives the engine and whose events feed input.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene updated and rendered each frame.
//
// Parameters:
//   - s: the Scene to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}

// WithMaxDelta sets the per-frame delta time clamp. Defaults to 100ms; 0 disables it.
//
// Parameters:
//   - d: the largest delta handed to the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxDelta(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.maxDelta = max(d, 0)
	}
}

// WithProfilerInterval sets how often profiling statistics are logged.
//
// Parameters:
//   - interval: the reporting interval (default 1s)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfilerInterval(interval time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = profiler.NewProfiler(interval)
	}
}
