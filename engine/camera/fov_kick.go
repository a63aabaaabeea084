package camera

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FovKick eases the field of view wider while the player runs and back when they stop.
// It only produces a value; the caller applies it with Camera.SetFov.
type FovKick struct {
	base     float32
	boost    float32
	duration float32

	running bool
	current float32
	tween   *gween.Tween
}

// NewFovKick creates a kick that widens base by boost radians over duration seconds.
//
// Parameters:
//   - base: the resting field of view in radians
//   - boost: the extra field of view while running, in radians
//   - duration: the easing time in seconds
//
// Returns:
//   - *FovKick: the kick, resting at base
func NewFovKick(base, boost, duration float32) *FovKick {
	return &FovKick{
		base:     base,
		boost:    boost,
		duration: duration,
		current:  base,
	}
}

// Update advances the easing by dt and returns the field of view to use this frame.
// A change in running restarts the ease from the current value toward the new goal.
//
// Parameters:
//   - running: whether the player is running this frame
//   - dt: frame time in seconds
//
// Returns:
//   - float32: the field of view in radians
func (k *FovKick) Update(running bool, dt float32) float32 {
	if running != k.running {
		k.running = running
		goal := k.base
		if running {
			goal += k.boost
		}
		if k.duration <= 0 {
			k.current = goal
			k.tween = nil
			return k.current
		}
		k.tween = gween.New(k.current, goal, k.duration, ease.OutQuad)
	}

	if k.tween != nil {
		current, finished := k.tween.Update(dt)
		k.current = current
		if finished {
			k.tween = nil
		}
	}
	return k.current
}

// Base returns the resting field of view in radians.
func (k *FovKick) Base() float32 {
	return k.base
}
