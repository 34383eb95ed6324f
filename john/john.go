// Package john moves convex polygons into John position.
//
// A convex body is in John position when its maximum-area inscribed ellipse is the unit disc.
// Every convex polygon reaches it through the affine map T(x) = C⁻¹(x - d), where
// {C·u + d : |u| <= 1} is the polygon's inner Löwner–John ellipse.
package john

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/akmonengine/lownerjohn/halfplane"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// EnclosedTolerance is the slack allowed by Result.Enclosed on the vertex norms
const EnclosedTolerance = 1e-6

// ErrSingular reports an ellipse whose shape matrix cannot be inverted
var ErrSingular = errors.New("john: singular ellipse")

// Map returns T(x) = C⁻¹(x - d), the affine map sending the ellipse onto the unit disc
func Map(e ellipsoid.Ellipsoid) (polygon.Transform, error) {
	if e.Shape.Det() == 0 {
		return polygon.Transform{}, fmt.Errorf("%w: det = %g", ErrSingular, e.Shape.Det())
	}
	shift := polygon.NewTranslation(e.Center.Mul(-1))
	return shift.Then(polygon.Transform{Linear: e.Shape.Inv()}), nil
}

// Apply maps a single point with T(x) = C⁻¹(x - d)
func Apply(x mgl64.Vec2, e ellipsoid.Ellipsoid) (mgl64.Vec2, error) {
	t, err := Map(e)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return t.Apply(x), nil
}

// Result holds both sides of a normalisation
type Result struct {
	Original polygon.Polygon
	Inner    ellipsoid.Ellipsoid
	Map      polygon.Transform

	Normalized      polygon.Polygon
	NormalizedInner ellipsoid.Ellipsoid
}

// Normalize maps the polygon into John position.
//
// The inner ellipse of the image is solved again from scratch, so NormalizedInner measures how
// close the result is to the unit disc (see Deviation). settings may be nil.
func Normalize(p polygon.Polygon, settings *ellipsoid.Settings) (Result, error) {
	inner, err := ellipsoid.Inner(halfplane.FromPolygon(p), settings)
	if err != nil {
		return Result{}, fmt.Errorf("inner ellipse of the polygon: %w", err)
	}

	t, err := Map(inner)
	if err != nil {
		return Result{}, err
	}
	normalized := p.Transform(t)

	normalizedInner, err := ellipsoid.Inner(halfplane.FromPolygon(normalized), settings)
	if err != nil {
		return Result{}, fmt.Errorf("inner ellipse of the normalized polygon: %w", err)
	}

	return Result{
		Original:        p,
		Inner:           inner,
		Map:             t,
		Normalized:      normalized,
		NormalizedInner: normalizedInner,
	}, nil
}

// Deviation returns the largest absolute difference between NormalizedInner and the unit disc,
// over the entries of the shape matrix and the center coordinates.
func (r Result) Deviation() float64 {
	identity := mgl64.Ident2()
	var out float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out = math.Max(out, math.Abs(r.NormalizedInner.Shape.At(i, j)-identity.At(i, j)))
		}
	}
	out = math.Max(out, math.Abs(r.NormalizedInner.Center.X()))
	return math.Max(out, math.Abs(r.NormalizedInner.Center.Y()))
}

// Enclosed reports whether every vertex of the normalized polygon lies in the disc of radius k.
// By John's theorem this holds for k = 2, and for k = √2 when the polygon is centrally symmetric.
func (r Result) Enclosed(k float64) bool {
	for _, v := range r.Normalized {
		if v.Len() > k+EnclosedTolerance {
			return false
		}
	}
	return true
}

// AreaRatio returns area(polygon)/area(inner ellipse), which the affine map leaves unchanged
func (r Result) AreaRatio() float64 {
	return r.Original.Area() / r.Inner.Area()
}
