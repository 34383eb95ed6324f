package ellipsoid

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/akmonengine/lownerjohn/halfplane"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// bounded reports whether the normals positively span the plane, which is the case exactly when
// the halfplanes (if feasible) intersect in a bounded region. In angular order, no two
// consecutive normals may be half a turn or more apart.
func bounded(normals []mgl64.Vec2) bool {
	angles := make([]float64, 0, len(normals))
	for _, a := range normals {
		angles = append(angles, math.Atan2(a.Y(), a.X()))
	}
	if len(angles) < 3 {
		return false
	}
	slices.Sort(angles)

	const margin = 1e-12
	for i := range angles {
		gap := angles[(i+1)%len(angles)] - angles[i]
		if i == len(angles)-1 {
			gap += 2 * math.Pi
		}
		if gap >= math.Pi-margin {
			return false
		}
	}
	return true
}

// chebyshev returns the center and radius of the largest disc inside the halfplanes.
//
// The disc {x : |x - d| <= r} satisfies every row aᵢ·x <= bᵢ exactly when aᵢ·d + |aᵢ|·r <= bᵢ,
// so the center solves the linear program
//
//	maximise r  subject to  aᵢ·d + |aᵢ|·r <= bᵢ
//
// The rows are first shifted to a reference point p (the vertex mean of an ordered system), so
// that the offsets are positive and the slack basis the simplex starts from is not degenerate.
// Written in standard form for lp.Simplex the unknowns are [d⁺, d⁻, r, slack] >= 0 with
// d - p = d⁺ - d⁻. Only lp.ErrInfeasible is trusted: boundedness is settled before this call,
// so any other simplex failure is numerical and the reference point itself is tried instead.
func chebyshev(sys halfplane.System) (center mgl64.Vec2, radius float64, err error) {
	m := sys.Len()
	cols := 5 + m

	var ref mgl64.Vec2
	vertices, ordered := sys.Vertices()
	if ordered {
		ref = vertices.VertexMean()
	}

	c := make([]float64, cols)
	c[4] = -1

	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	interior := true
	for i, normal := range sys.Normals {
		a.Set(i, 0, normal.X())
		a.Set(i, 1, normal.Y())
		a.Set(i, 2, -normal.X())
		a.Set(i, 3, -normal.Y())
		a.Set(i, 4, normal.Len())
		a.Set(i, 5+i, 1)
		b[i] = sys.Offsets[i] - normal.Dot(ref)
		interior = interior && b[i] > 0
	}

	// With p inside, the slack columns are a feasible starting basis
	var basic []int
	if interior {
		basic = make([]int, m)
		for i := range basic {
			basic[i] = 5 + i
		}
	}

	_, x, lpErr := lp.Simplex(c, a, b, 0, basic)
	switch {
	case errors.Is(lpErr, lp.ErrInfeasible):
		return mgl64.Vec2{}, 0, fmt.Errorf("%w: %v", ErrInfeasible, lpErr)
	case lpErr == nil:
		center = ref.Add(mgl64.Vec2{x[0] - x[2], x[1] - x[3]})
		if radius = inscribedRadius(sys, center); radius > 0 {
			return center, radius, nil
		}
	}

	// Fallback for ordered systems
	if ordered {
		if radius = inscribedRadius(sys, ref); radius > 0 {
			return ref, radius, nil
		}
	}

	if lpErr == nil {
		lpErr = errors.New("linear program returned a boundary point")
	}
	return mgl64.Vec2{}, 0, fmt.Errorf("%w: no interior point found: %v", ErrInfeasible, lpErr)
}

// inscribedRadius returns the distance from center to the nearest boundary line, negative when
// center violates a row
func inscribedRadius(sys halfplane.System, center mgl64.Vec2) float64 {
	radius := math.Inf(1)
	for i, r := range sys.Residuals(center) {
		radius = math.Min(radius, r/sys.Normals[i].Len())
	}
	return radius
}

// spread returns the largest distance from center to a boundary line. It sets the scale against
// which a small inscribed radius counts as degenerate.
func spread(sys halfplane.System, center mgl64.Vec2) float64 {
	var out float64
	for i, r := range sys.Residuals(center) {
		out = math.Max(out, math.Abs(r)/sys.Normals[i].Len())
	}
	return out
}
