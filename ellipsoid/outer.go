package ellipsoid

import (
	"fmt"
	"math"

	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// Outer computes the minimum-area ellipse containing every point.
//
// The ellipse is searched in gauge form {x : |P·x - c| <= 1} with P symmetric positive definite;
// its area is π/det P, so the solver maximises log det P subject to |P·xᵢ - c| <= 1:
//  1. Reduce the points to their convex hull (interior points never constrain the result)
//  2. Reject hulls without interior (fewer than three points, or collinear)
//  3. Start the barrier method from the disc of radius 2R around the vertex mean, R being the
//     largest distance from the mean to a vertex
//
// The result is converted with FromGauge. settings may be nil. Errors wrap ErrDegenerate or
// ErrNotConverged.
func Outer(points []mgl64.Vec2, settings *Settings) (Ellipsoid, error) {
	hull := polygon.ConvexHull(points)
	if len(hull) < 3 {
		return Ellipsoid{}, fmt.Errorf("%w: %d distinct non-collinear points", ErrDegenerate, len(hull))
	}

	mean := hull.VertexMean()
	var radius float64
	for _, x := range hull {
		radius = math.Max(radius, x.Sub(mean).Len())
	}
	if hull.Area() <= degenerateEpsilon*radius*radius {
		return Ellipsoid{}, fmt.Errorf("%w: points span area %g", ErrDegenerate, hull.Area())
	}

	b := barrier{cones: make([]cone, len(hull)), settings: settings.withDefaults()}
	for i, x := range hull {
		b.cones[i] = outerCone(x)
	}

	k := 1 / (2 * radius)
	z, err := b.solve(vars{k, 0, k, k * mean.X(), k * mean.Y()})
	if err != nil {
		return Ellipsoid{}, fmt.Errorf("outer ellipsoid: %w", err)
	}

	e, ok := FromGauge(z.matrix(), z.vector())
	if !ok {
		return Ellipsoid{}, fmt.Errorf("%w: singular gauge matrix", ErrNotConverged)
	}
	return e, nil
}

// outerCone encodes |P·x - c| <= 1. With P = [[z0, z1], [z1, z2]] and c = (z3, z4),
// P·x - c = (x.x·z0 + x.y·z1 - z3, x.x·z1 + x.y·z2 - z4).
func outerCone(x mgl64.Vec2) cone {
	return cone{
		beta: 1,
		n: [2]vars{
			{x.X(), x.Y(), 0, -1, 0},
			{0, x.X(), x.Y(), 0, -1},
		},
	}
}
