package ellipsoid

import (
	"fmt"

	"github.com/akmonengine/lownerjohn/halfplane"
	"github.com/go-gl/mathgl/mgl64"
)

// Inner computes the maximum-area ellipse contained in {x : aᵢ·x <= bᵢ}.
//
// With the ellipse written as E = {C·u + d : |u| <= 1}, E lies in halfplane i exactly when
// |C·aᵢ| + aᵢ·d <= bᵢ. The solver maximises log det C under these constraints:
//  1. Reject rows with a zero normal (they either always hold or make the set empty)
//  2. Check that the normals bound a region
//  3. Find the Chebyshev center d₀ and radius r (linear program)
//  4. Start the barrier method from C₀ = r/2·I, d₀
//
// settings may be nil. Errors wrap ErrDegenerate, ErrInfeasible, ErrUnbounded or ErrNotConverged.
func Inner(sys halfplane.System, settings *Settings) (Ellipsoid, error) {
	rows := halfplane.System{}
	for i, normal := range sys.Normals {
		if normal.LenSqr() == 0 {
			if sys.Offsets[i] < 0 {
				return Ellipsoid{}, fmt.Errorf("%w: row %d reads 0 <= %g", ErrInfeasible, i, sys.Offsets[i])
			}
			continue
		}
		rows.Normals = append(rows.Normals, normal)
		rows.Offsets = append(rows.Offsets, sys.Offsets[i])
	}

	if !bounded(rows.Normals) {
		return Ellipsoid{}, fmt.Errorf("%w: %d halfplanes do not enclose a bounded region", ErrUnbounded, rows.Len())
	}

	center, radius, err := chebyshev(rows)
	if err != nil {
		return Ellipsoid{}, err
	}
	if radius <= degenerateEpsilon*spread(rows, center) {
		return Ellipsoid{}, fmt.Errorf("%w: inscribed radius %g", ErrDegenerate, radius)
	}

	b := barrier{cones: make([]cone, rows.Len()), settings: settings.withDefaults()}
	for i, a := range rows.Normals {
		b.cones[i] = innerCone(a, rows.Offsets[i])
	}

	z, err := b.solve(vars{radius / 2, 0, radius / 2, center.X(), center.Y()})
	if err != nil {
		return Ellipsoid{}, fmt.Errorf("inner ellipsoid: %w", err)
	}

	return Ellipsoid{Shape: z.matrix(), Center: z.vector()}, nil
}

// innerCone encodes |C·a| + a·d <= b. With C = [[z0, z1], [z1, z2]],
// C·a = (a.x·z0 + a.y·z1, a.x·z1 + a.y·z2), which is linear in the unknowns.
func innerCone(a mgl64.Vec2, b float64) cone {
	return cone{
		beta: b,
		g:    vars{0, 0, 0, a.X(), a.Y()},
		n: [2]vars{
			{a.X(), a.Y(), 0, 0, 0},
			{0, a.X(), a.Y(), 0, 0},
		},
	}
}
