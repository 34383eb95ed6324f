package polygon

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// HullEpsilon is the cross product threshold below which three points are treated as collinear.
// Collinear points on the hull boundary are dropped.
const HullEpsilon = 1e-12

// ConvexHull returns the convex hull of points in counter-clockwise order, starting from the
// lowest-leftmost point (Andrew's monotone chain).
//
// Duplicate and collinear points are removed. Fewer than three distinct points yield the
// distinct points themselves.
func ConvexHull(points []mgl64.Vec2) Polygon {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b mgl64.Vec2) int {
		if c := cmp.Compare(a.X(), b.X()); c != 0 {
			return c
		}
		return cmp.Compare(a.Y(), b.Y())
	})
	sorted = slices.Compact(sorted)

	if len(sorted) < 3 {
		return Polygon(sorted)
	}

	hull := make(Polygon, 0, 2*len(sorted))

	// Lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= HullEpsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= HullEpsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first
	return hull[:len(hull)-1]
}
