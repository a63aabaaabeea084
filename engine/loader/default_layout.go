package loader

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/cubewalk/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultLayoutName is the cache key used for DefaultLayout.
const DefaultLayoutName = "default"

// DefaultLayout builds the arrangement used when no layout file is given: a ring of pillars
// around the origin, a short staircase toward -Z and a low platform to jump onto.
//
// Returns:
//   - *Layout: a fresh layout; objects are not shared with earlier calls
func DefaultLayout() *Layout {
	var objects []game_object.GameObject
	add := func(name string, pos, half mgl32.Vec3, color [4]float32, options ...game_object.GameObjectBuilderOption) {
		options = append([]game_object.GameObjectBuilderOption{
			game_object.WithID(uint64(len(objects)) + 1),
			game_object.WithName(name),
			game_object.WithPosition(pos.X(), pos.Y(), pos.Z()),
			game_object.WithScale(half.X(), half.Y(), half.Z()),
			game_object.WithColor(color),
		}, options...)
		objects = append(objects, game_object.NewGameObject(options...))
	}

	for i := range 8 {
		angle := float32(i) * mgl32.DegToRad(45)
		pos := mgl32.Vec3{8 * float32(math.Sin(float64(angle))), 1.5, 8 * float32(math.Cos(float64(angle)))}
		add(fmt.Sprintf("pillar_%d", i), pos, mgl32.Vec3{0.5, 1.5, 0.5}, [4]float32{0.8, 0.8, 0.85, 1})
	}

	for i := range 5 {
		h := 0.25 * float32(i+1)
		add(fmt.Sprintf("step_%d", i), mgl32.Vec3{0, h / 2, -2 - float32(i)}, mgl32.Vec3{1, h / 2, 0.5}, [4]float32{0.7, 0.55, 0.4, 1})
	}

	add("platform", mgl32.Vec3{3, 0.4, 0}, mgl32.Vec3{1, 0.4, 1}, [4]float32{0.4, 0.6, 0.4, 1})
	add("crate", mgl32.Vec3{-3, 0.5, 1}, mgl32.Vec3{0.5, 0.5, 0.5}, [4]float32{0.9, 0.7, 0.3, 1},
		game_object.WithRotation(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(30)))

	return &Layout{Name: DefaultLayoutName, Objects: objects}
}
