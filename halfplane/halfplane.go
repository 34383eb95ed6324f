// Package halfplane converts ordered convex polygons into their halfplane representation.
//
// A System with rows (aᵢ, bᵢ) describes the region {x : aᵢ·x ≤ bᵢ for every i}. When built from
// a polygon, row i belongs to the edge ending at vertex i, so consecutive rows meet at the
// polygon's vertices.
package halfplane

import (
	"math"

	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// ParallelEpsilon is the determinant threshold below which two boundary lines are treated as parallel.
const ParallelEpsilon = 1e-12

// System is the halfplane representation {x : Normals[i]·x <= Offsets[i]}
type System struct {
	Normals []mgl64.Vec2
	Offsets []float64
}

// FromPolygon builds the halfplane system of an ordered convex polygon.
//
// For vertex i with predecessor p = v[i-1] (indices modulo n), the edge p -> v[i] gets the normal
// (p.y - v.y, v.x - p.x) and the offset normal·v[i]. That normal points outward for clockwise
// vertex order. Counter-clockwise input has its normals negated so that the system describes the
// same polygon either way.
//
// Normals are not normalised: their length equals the edge length. Degenerate or non-convex
// input produces a system that does not describe the polygon; this is not detected.
func FromPolygon(p polygon.Polygon) System {
	n := len(p)
	sys := System{
		Normals: make([]mgl64.Vec2, n),
		Offsets: make([]float64, n),
	}

	sign := 1.0
	if p.SignedArea() > 0 {
		sign = -1
	}

	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		cur := p[i]
		normal := mgl64.Vec2{prev.Y() - cur.Y(), cur.X() - prev.X()}.Mul(sign)
		sys.Normals[i] = normal
		sys.Offsets[i] = normal.Dot(cur)
	}

	return sys
}

// Len returns the number of halfplanes
func (s System) Len() int {
	return len(s.Normals)
}

// Residuals returns bᵢ - aᵢ·x for every row. A point is inside when all residuals are non-negative.
func (s System) Residuals(x mgl64.Vec2) []float64 {
	r := make([]float64, s.Len())
	for i, a := range s.Normals {
		r[i] = s.Offsets[i] - a.Dot(x)
	}
	return r
}

// Contains reports whether x satisfies every row up to tolerance
func (s System) Contains(x mgl64.Vec2, tolerance float64) bool {
	for i, a := range s.Normals {
		if a.Dot(x) > s.Offsets[i]+tolerance {
			return false
		}
	}
	return true
}

// Normalized returns the equivalent system with unit normals. Zero rows are kept as they are.
func (s System) Normalized() System {
	out := System{
		Normals: make([]mgl64.Vec2, s.Len()),
		Offsets: make([]float64, s.Len()),
	}
	for i, a := range s.Normals {
		length := a.Len()
		if length == 0 {
			out.Normals[i], out.Offsets[i] = a, s.Offsets[i]
			continue
		}
		out.Normals[i] = a.Mul(1 / length)
		out.Offsets[i] = s.Offsets[i] / length
	}
	return out
}

// Vertices intersects each boundary line with the next one. For a system built by FromPolygon,
// line i and line i+1 meet at vertex i, so this recovers the polygon.
//
// ok is false when two consecutive lines are parallel.
func (s System) Vertices() (vertices polygon.Polygon, ok bool) {
	n := s.Len()
	vertices = make(polygon.Polygon, n)
	for i := 0; i < n; i++ {
		v, found := intersect(s.Normals[i], s.Offsets[i], s.Normals[(i+1)%n], s.Offsets[(i+1)%n])
		if !found {
			return nil, false
		}
		vertices[i] = v
	}
	return vertices, true
}

// intersect solves a1·x = b1, a2·x = b2 by Cramer's rule
func intersect(a1 mgl64.Vec2, b1 float64, a2 mgl64.Vec2, b2 float64) (mgl64.Vec2, bool) {
	det := a1.X()*a2.Y() - a1.Y()*a2.X()
	scale := a1.Len() * a2.Len()
	if scale == 0 || math.Abs(det) < ParallelEpsilon*scale {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{
		(b1*a2.Y() - a1.Y()*b2) / det,
		(a1.X()*b2 - b1*a2.X()) / det,
	}, true
}
