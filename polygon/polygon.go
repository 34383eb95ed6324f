// Package polygon provides the planar point sets used throughout the module: ordered convex
// polygons, regular polygons on the unit circle, sampled circles and ellipses, and the affine
// maps applied to them.
//
// A Polygon is an ordered list of vertices, implicitly closed (the last vertex connects back
// to the first). The order defines the traversal direction used for edge normals. Convexity
// is assumed, never checked.
package polygon

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is an ordered, implicitly closed sequence of vertices
type Polygon []mgl64.Vec2

// Regular returns the regular n-gon inscribed in the unit circle, with vertex k at angle 2πk/n.
func Regular(n int) Polygon {
	return onCircle(n, 2*math.Pi/float64(n))
}

// Circle samples the unit circle at the given number of equally spaced angles.
func Circle(samples int) Polygon {
	return Regular(samples)
}

// Ellipse samples the axis-aligned ellipse with semi-axes a and b.
func Ellipse(a, b float64, samples int) Polygon {
	return Circle(samples).Scale(a, b)
}

func onCircle(n int, step float64) Polygon {
	if n <= 0 {
		return nil
	}
	p := make(Polygon, n)
	for k := range p {
		theta := step * float64(k)
		p[k] = mgl64.Vec2{math.Cos(theta), math.Sin(theta)}
	}
	return p
}

// Scale applies diag(a, b) to every vertex
func (p Polygon) Scale(a, b float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = mgl64.Vec2{a * v.X(), b * v.Y()}
	}
	return out
}

// Transform applies an affine map to every vertex
func (p Polygon) Transform(t Transform) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = t.Apply(v)
	}
	return out
}

// Closed returns the vertices with the first one repeated at the end, as needed to draw the outline
func (p Polygon) Closed() Polygon {
	if len(p) == 0 {
		return nil
	}
	out := make(Polygon, 0, len(p)+1)
	out = append(out, p...)
	return append(out, p[0])
}

// Reversed returns the vertices in the opposite traversal order
func (p Polygon) Reversed() Polygon {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

// SignedArea computes the shoelace area: positive for counter-clockwise order, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return 0.5 * sum
}

// Area returns the enclosed area regardless of orientation
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsClockwise reports whether the vertices are listed clockwise
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Clockwise returns the polygon in clockwise order, reversing it if needed
func (p Polygon) Clockwise() Polygon {
	if p.SignedArea() > 0 {
		return p.Reversed()
	}
	return slices.Clone(p)
}

// VertexMean returns the arithmetic mean of the vertices
func (p Polygon) VertexMean() mgl64.Vec2 {
	var sum mgl64.Vec2
	for _, v := range p {
		sum = sum.Add(v)
	}
	if len(p) == 0 {
		return sum
	}
	return sum.Mul(1 / float64(len(p)))
}

// Centroid returns the area centroid. Degenerate polygons (zero area) fall back to the vertex mean.
func (p Polygon) Centroid() mgl64.Vec2 {
	area := p.SignedArea()
	if math.Abs(area) < 1e-15 {
		return p.VertexMean()
	}

	var cx, cy float64
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		cross := a.X()*b.Y() - b.X()*a.Y()
		cx += (a.X() + b.X()) * cross
		cy += (a.Y() + b.Y()) * cross
	}
	factor := 1 / (6 * area)
	return mgl64.Vec2{cx * factor, cy * factor}
}

// Bounds returns the axis-aligned bounding box of the vertices
func (p Polygon) Bounds() AABB {
	box := EmptyAABB()
	for _, v := range p {
		box = box.Extend(v)
	}
	return box
}

// Support returns the vertex furthest along direction
func (p Polygon) Support(direction mgl64.Vec2) mgl64.Vec2 {
	if len(p) == 0 {
		return mgl64.Vec2{}
	}
	best := p[0]
	bestDot := best.Dot(direction)
	for _, v := range p[1:] {
		if d := v.Dot(direction); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

// Cross returns the z component of (b-a) x (c-a); positive when a, b, c turn counter-clockwise.
func Cross(a, b, c mgl64.Vec2) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.X()*ac.Y() - ab.Y()*ac.X()
}
