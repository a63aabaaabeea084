// Package input collects window events into per-frame movement and look commands.
package input

import (
	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/camera"
)

// moveBindings maps key codes to movement commands. Snapshot reports held keys in this order.
var moveBindings = []struct {
	code uint32
	key  camera.MoveKey
}{
	{common.KeyW, camera.MoveForward},
	{common.KeyS, camera.MoveBackward},
	{common.KeyA, camera.MoveLeft},
	{common.KeyD, camera.MoveRight},
	{common.KeySpace, camera.MoveJump},
}

// Frame is the input gathered since the previous Snapshot.
type Frame struct {
	// Keys holds the movement commands whose keys are held, in binding order.
	Keys []camera.MoveKey

	// Running is true while either Shift key is held.
	Running bool

	// MouseDX is the accumulated horizontal cursor movement, positive to the right.
	MouseDX float32

	// MouseDY is the accumulated vertical cursor movement, positive upward.
	MouseDY float32
}

// stateImpl is the implementation of the State interface.
type stateImpl struct {
	pressed map[uint32]bool

	hasCursor bool
	lastX     float64
	lastY     float64

	dx float32
	dy float32
}

// State accumulates key and cursor events between frames. Window callbacks feed it and the
// update loop drains it once per frame with Snapshot.
//
// State is not safe for concurrent use; events and snapshots must come from the window thread.
type State interface {
	// KeyDown records a key press.
	//
	// Parameters:
	//   - code: the key code (see common.Key*)
	KeyDown(code uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - code: the key code
	KeyUp(code uint32)

	// Pressed reports whether a key is currently held.
	//
	// Parameters:
	//   - code: the key code
	//
	// Returns:
	//   - bool: true if held
	Pressed(code uint32) bool

	// CursorMove records an absolute cursor position. The first position after construction
	// or ResetCursor only establishes the reference point and produces no movement.
	//
	// Parameters:
	//   - x, y: cursor position in screen coordinates, y growing downward
	CursorMove(x, y float64)

	// ResetCursor forgets the last cursor position, for example after the cursor is recaptured.
	ResetCursor()

	// Snapshot returns the held movement keys and the cursor movement since the previous
	// Snapshot, then clears the accumulated movement.
	//
	// Returns:
	//   - Frame: this frame's input
	Snapshot() Frame
}

var _ State = &stateImpl{}

// NewState creates an empty input state.
//
// Returns:
//   - State: the input state
func NewState() State {
	return &stateImpl{
		pressed: make(map[uint32]bool),
	}
}

func (s *stateImpl) KeyDown(code uint32) {
	s.pressed[code] = true
}

func (s *stateImpl) KeyUp(code uint32) {
	delete(s.pressed, code)
}

func (s *stateImpl) Pressed(code uint32) bool {
	return s.pressed[code]
}

func (s *stateImpl) CursorMove(x, y float64) {
	if !s.hasCursor {
		s.lastX, s.lastY = x, y
		s.hasCursor = true
		return
	}
	s.dx += float32(x - s.lastX)
	// screen y grows downward
	s.dy += float32(s.lastY - y)
	s.lastX, s.lastY = x, y
}

func (s *stateImpl) ResetCursor() {
	s.hasCursor = false
}

func (s *stateImpl) Snapshot() Frame {
	f := Frame{
		Running: s.pressed[common.KeyLeftShift] || s.pressed[common.KeyRightShift],
		MouseDX: s.dx,
		MouseDY: s.dy,
	}
	for _, b := range moveBindings {
		if s.pressed[b.code] {
			f.Keys = append(f.Keys, b.key)
		}
	}
	s.dx, s.dy = 0, 0
	return f
}
