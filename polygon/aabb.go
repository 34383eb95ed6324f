package polygon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box in the plane
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// EmptyAABB returns a box that contains nothing and absorbs the first point or box merged into it
func EmptyAABB() AABB {
	return AABB{
		Min: mgl64.Vec2{math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// IsEmpty reports whether the box has no extent on some axis
func (a AABB) IsEmpty() bool {
	return a.Min.X() > a.Max.X() || a.Min.Y() > a.Max.Y()
}

// Extend grows the box to include point
func (a AABB) Extend(point mgl64.Vec2) AABB {
	return AABB{
		Min: mgl64.Vec2{math.Min(a.Min.X(), point.X()), math.Min(a.Min.Y(), point.Y())},
		Max: mgl64.Vec2{math.Max(a.Max.X(), point.X()), math.Max(a.Max.Y(), point.Y())},
	}
}

// Union returns the smallest box containing both boxes
func (a AABB) Union(other AABB) AABB {
	if other.IsEmpty() {
		return a
	}
	return a.Extend(other.Min).Extend(other.Max)
}

// Center returns the midpoint of the box
func (a AABB) Center() mgl64.Vec2 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the width and height of the box
func (a AABB) Size() mgl64.Vec2 {
	return a.Max.Sub(a.Min)
}

// Square returns a square box with the same center, padded by margin (a fraction of the side).
// Plots drawn in a square box keep an equal aspect ratio.
func (a AABB) Square(margin float64) AABB {
	size := a.Size()
	half := 0.5 * math.Max(size.X(), size.Y()) * (1 + margin)
	if half == 0 {
		half = 1
	}
	center := a.Center()
	return AABB{
		Min: mgl64.Vec2{center.X() - half, center.Y() - half},
		Max: mgl64.Vec2{center.X() + half, center.Y() + half},
	}
}
