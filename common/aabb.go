package common

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box given by its minimum and maximum corners.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB builds the box center ± halfExtents.
//
// Parameters:
//   - center: the box center
//   - halfExtents: per-axis half sizes (expected non-negative)
//
// Returns:
//   - AABB: the box
func NewAABB(center, halfExtents mgl32.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfExtents returns the per-axis half sizes of the box.
func (b AABB) HalfExtents() mgl32.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Contains reports whether p lies inside the box or on its boundary.
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of the box surface or volume nearest to p.
//
// Outside the box this is the per-axis clamp of p. Strictly inside the box the clamp would
// return p itself, so p is instead projected onto the nearest face. Ties between faces go to
// the lowest axis, minimum side first. Points on the boundary are returned unchanged.
//
// Parameters:
//   - p: the query point
//
// Returns:
//   - mgl32.Vec3: the closest point
func (b AABB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	var closest mgl32.Vec3
	inside := true
	for i := 0; i < 3; i++ {
		closest[i] = mgl32.Clamp(p[i], b.Min[i], b.Max[i])
		if p[i] <= b.Min[i] || p[i] >= b.Max[i] {
			inside = false
		}
	}
	if !inside {
		return closest
	}

	axis, face := 0, b.Min[0]
	best := p[0] - b.Min[0]
	for i := 0; i < 3; i++ {
		if d := p[i] - b.Min[i]; d < best {
			axis, face, best = i, b.Min[i], d
		}
		if d := b.Max[i] - p[i]; d < best {
			axis, face, best = i, b.Max[i], d
		}
	}
	closest[axis] = face
	return closest
}
