package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/input"
	"github.com/Carmen-Shannon/cubewalk/engine/profiler"
	"github.com/Carmen-Shannon/cubewalk/engine/scene"
	"github.com/Carmen-Shannon/cubewalk/engine/window"
)

// engine implements the Engine interface.
// Runs every frame on the window thread.
type engine struct {
	running  bool
	quitOnce sync.Once // Ensures shutdown only runs once

	window window.Window
	input  input.State
	scene  scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float32)

	maxDelta   time.Duration // dt clamp; 0 = unclamped
	frameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// Engine is the main entry point for the engine.
// It wires window events into input state and drives the scene's update and render each frame.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the input state fed by the window callbacks.
	//
	// Returns:
	//   - input.State: the input state
	Input() input.State

	// Scene returns the scene being driven.
	//
	// Returns:
	//   - scene.Scene: the scene, or nil if none is set
	Scene() scene.Scene

	// SetScene replaces the scene being driven. The previous scene is not released.
	//
	// Parameters:
	//   - s: the new scene
	SetScene(s scene.Scene)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ToggleProfiler flips profiling output. Bound to F3.
	ToggleProfiler()

	// ProfilerEnabled reports whether profiling output is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	ProfilerEnabled() bool

	// SetTickCallback registers a function called each frame after the scene update and
	// before rendering.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// SetMaxDelta clamps the per-frame delta time so a stall does not launch the camera
	// through geometry. Pass 0 to disable the clamp.
	//
	// Parameters:
	//   - d: the largest delta handed to the scene
	SetMaxDelta(d time.Duration)

	// Frame runs one frame: input snapshot, scene update, tick callback, render, profiler.
	// Run calls it from the window loop.
	Frame()

	// Run starts the main loop on the calling goroutine (blocks until the window closes),
	// then shuts the engine down.
	Run()

	// Quit releases the scene and renderer and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// The window callbacks are wired to a fresh input state; Escape closes the window and F3
// toggles the profiler.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		input:    input.NewState(),
		profiler: profiler.NewProfiler(time.Second),
		maxDelta: 100 * time.Millisecond,
		now:      time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow routes window events into the input state, the renderer and the camera.
func (e *engine) bindWindow() {
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyF3 && !e.input.Pressed(keyCode) {
			e.ToggleProfiler()
		}
		e.input.KeyDown(keyCode)
	})
	e.window.SetKeyUpCallback(e.input.KeyUp)
	e.window.SetMouseMoveCallback(func(x, y float64) {
		if e.window.CursorCaptured() {
			e.input.CursorMove(x, y)
		}
	})
	e.window.SetFocusCallback(func(bool) {
		// the cursor jumps when focus changes; drop the first sample after it
		e.input.ResetCursor()
	})
	e.window.SetResizeCallback(func(width, height int) {
		if e.scene == nil || width <= 0 || height <= 0 {
			return
		}
		if r := e.scene.Renderer(); r != nil {
			r.Resize(width, height)
		}
		e.scene.Camera().SetAspect(float32(width) / float32(height))
	})
	if e.scene != nil && e.window.Height() > 0 {
		e.scene.Camera().SetAspect(float32(e.window.Width()) / float32(e.window.Height()))
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() input.State {
	return e.input
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) SetScene(s scene.Scene) {
	e.scene = s
}

func (e *engine) Run() {
	if e.window == nil {
		log.Println("[Engine] no window configured, nothing to run")
		return
	}
	e.running = true
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.Frame)
	e.window.ProcessMessages()
	e.Quit()
}

func (e *engine) Frame() {
	start := e.now()
	if e.lastFrame.IsZero() {
		e.lastFrame = start
	}
	delta := start.Sub(e.lastFrame)
	e.lastFrame = start
	if e.maxDelta > 0 && delta > e.maxDelta {
		delta = e.maxDelta
	}
	dt := float32(delta.Seconds())

	frame := e.input.Snapshot()
	if e.scene != nil {
		e.scene.Update(dt, frame)
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	e.render()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(delta)
	}

	// Frame rate limiting
	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

// render uploads the scene and encodes its draw. A failed swapchain acquire skips the frame.
func (e *engine) render() {
	if e.scene == nil {
		return
	}
	r := e.scene.Renderer()
	if r == nil {
		return
	}

	if err := e.scene.PrepareFrame(); err != nil {
		log.Printf("[Engine] prepare frame: %v", err)
		return
	}
	if err := r.BeginFrame(); err != nil {
		log.Printf("[Engine] begin frame: %v", err)
		return
	}
	if err := e.scene.DrawCalls(); err != nil {
		log.Printf("[Engine] draw: %v", err)
	}
	r.EndFrame()
	r.Present()
}

// Quit releases GPU resources before the window that owns the surface goes away.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running = false
		if e.scene != nil {
			r := e.scene.Renderer()
			e.scene.Release()
			if r != nil {
				r.Release()
			}
		}
		if e.window != nil && e.window.IsRunning() {
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] close window: %v", err)
			}
		}
		log.Println("[Engine] shut down")
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) ToggleProfiler() {
	e.profilingEnabled = !e.profilingEnabled
	log.Printf("[Engine] profiler enabled: %v", e.profilingEnabled)
}

func (e *engine) ProfilerEnabled() bool {
	return e.profilingEnabled
}

// SetTickCallback registers the function called each frame.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) SetMaxDelta(d time.Duration) {
	e.maxDelta = max(d, 0)
}

// frameDuration converts a frame rate to a minimum frame duration; non-positive rates uncap.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
