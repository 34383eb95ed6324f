// Package ellipsoid computes Löwner–John ellipsoids of convex polygons.
//
// Two problems are solved:
//   - Inner: the maximum-area ellipse contained in a polygon given by halfplanes
//   - Outer: the minimum-area ellipse containing a set of points
//
// Both are log-det programs with second-order cone constraints. They share one interior-point
// solver (see barrier.go) working on the five unknowns of a planar ellipse: the three entries of
// a symmetric 2x2 matrix and a 2D vector.
//
// References:
//   - John: "Extremum problems with inequalities as subsidiary conditions" (1948)
//   - Boyd, Vandenberghe: "Convex Optimization", sections 8.4.1 and 8.4.2 (2004)
package ellipsoid

import (
	"math"

	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// Ellipsoid is the image of the unit disc under u -> Shape*u + Center.
// Shape is symmetric positive definite for every ellipsoid returned by this package.
type Ellipsoid struct {
	Shape  mgl64.Mat2
	Center mgl64.Vec2
}

// Unit returns the unit disc centered at the origin
func Unit() Ellipsoid {
	return Ellipsoid{Shape: mgl64.Ident2()}
}

// FromGauge converts the description {x : |P*x - c| <= 1} into an Ellipsoid.
// ok is false when P is singular.
func FromGauge(p mgl64.Mat2, c mgl64.Vec2) (e Ellipsoid, ok bool) {
	if p.Det() == 0 {
		return Ellipsoid{}, false
	}
	shape := p.Inv()
	return Ellipsoid{Shape: shape, Center: shape.Mul2x1(c)}, true
}

// Gauge returns (P, c) such that the ellipsoid is {x : |P*x - c| <= 1}.
// ok is false when the ellipsoid is degenerate.
func (e Ellipsoid) Gauge() (p mgl64.Mat2, c mgl64.Vec2, ok bool) {
	if e.Shape.Det() == 0 {
		return mgl64.Mat2{}, mgl64.Vec2{}, false
	}
	p = e.Shape.Inv()
	return p, p.Mul2x1(e.Center), true
}

// Transform returns the affine map sending the unit disc onto the ellipsoid
func (e Ellipsoid) Transform() polygon.Transform {
	return polygon.Transform{Linear: e.Shape, Translation: e.Center}
}

// Area returns π·|det(Shape)|
func (e Ellipsoid) Area() float64 {
	return math.Pi * math.Abs(e.Shape.Det())
}

// Scale grows the ellipsoid by factor k about its center
func (e Ellipsoid) Scale(k float64) Ellipsoid {
	return Ellipsoid{Shape: e.Shape.Mul(k), Center: e.Center}
}

// Norm returns |Shape⁻¹(x - Center)|: below 1 inside, 1 on the boundary, above 1 outside.
// A degenerate ellipsoid reports +Inf.
func (e Ellipsoid) Norm(x mgl64.Vec2) float64 {
	if e.Shape.Det() == 0 {
		return math.Inf(1)
	}
	return e.Shape.Inv().Mul2x1(x.Sub(e.Center)).Len()
}

// Contains reports whether x lies in the ellipsoid up to a relative tolerance
func (e Ellipsoid) Contains(x mgl64.Vec2, tolerance float64) bool {
	return e.Norm(x) <= 1+tolerance
}

// Boundary samples the boundary at the given number of equally spaced parameter angles
func (e Ellipsoid) Boundary(samples int) polygon.Polygon {
	return polygon.Circle(samples).Transform(e.Transform())
}

// Support returns the boundary point furthest along direction
func (e Ellipsoid) Support(direction mgl64.Vec2) mgl64.Vec2 {
	u := e.Shape.Transpose().Mul2x1(direction)
	length := u.Len()
	if length == 0 {
		return e.Center
	}
	return e.Shape.Mul2x1(u.Mul(1 / length)).Add(e.Center)
}

// Bounds returns the axis-aligned bounding box, from the supports along the four axis directions
func (e Ellipsoid) Bounds() polygon.AABB {
	return polygon.AABB{
		Min: mgl64.Vec2{e.Support(mgl64.Vec2{-1, 0}).X(), e.Support(mgl64.Vec2{0, -1}).Y()},
		Max: mgl64.Vec2{e.Support(mgl64.Vec2{1, 0}).X(), e.Support(mgl64.Vec2{0, 1}).Y()},
	}
}

// Axes returns the semi-axis lengths (major >= minor) and the angle of the major axis,
// from the eigen-decomposition of the symmetric part of Shape.
func (e Ellipsoid) Axes() (major, minor, angle float64) {
	a := e.Shape.At(0, 0)
	b := 0.5 * (e.Shape.At(0, 1) + e.Shape.At(1, 0))
	c := e.Shape.At(1, 1)

	mean := 0.5 * (a + c)
	radius := math.Hypot(0.5*(a-c), b)
	major, minor = math.Abs(mean+radius), math.Abs(mean-radius)
	angle = 0.5 * math.Atan2(2*b, a-c)
	if minor > major {
		major, minor = minor, major
		angle += math.Pi / 2
	}
	return major, minor, angle
}
