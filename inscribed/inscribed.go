// Package inscribed builds regular polygons inscribed in ellipses.
//
// The regular n-gon has the largest area among n-gons inscribed in a circle. Affine maps scale
// every area by the same factor, so its image under diag(a, b) is the largest n-gon inscribed in
// the ellipse with semi-axes a and b. MaxAreaAngles checks the first half of the argument
// numerically.
package inscribed

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/lownerjohn/polygon"
)

// DefaultSamples is the number of boundary samples of the circle and the ellipse
const DefaultSamples = 500

var (
	// ErrSides reports a polygon with fewer than three sides
	ErrSides = errors.New("inscribed: a polygon needs at least 3 sides")
	// ErrAxes reports a non-positive semi-axis
	ErrAxes = errors.New("inscribed: semi-axes must be positive")
)

// Figure is the unit circle and the ellipse, each with its inscribed regular polygon.
// EllipsePolygon is CirclePolygon scaled by diag(a, b), vertex by vertex.
type Figure struct {
	Circle        polygon.Polygon
	CirclePolygon polygon.Polygon

	Ellipse        polygon.Polygon
	EllipsePolygon polygon.Polygon
}

// Regular returns the figure for the regular n-gon and the ellipse with semi-axes a and b
func Regular(n int, a, b float64) (Figure, error) {
	return RegularSampled(n, a, b, DefaultSamples)
}

// RegularSampled is Regular with an explicit number of boundary samples
func RegularSampled(n int, a, b float64, samples int) (Figure, error) {
	if err := validate(n, a, b); err != nil {
		return Figure{}, err
	}

	circlePolygon := polygon.Regular(n)
	return Figure{
		Circle:         polygon.Circle(samples),
		CirclePolygon:  circlePolygon,
		Ellipse:        polygon.Ellipse(a, b, samples),
		EllipsePolygon: circlePolygon.Scale(a, b),
	}, nil
}

// RegularArea returns the area of the regular n-gon inscribed in the ellipse, (n/2)·sin(2π/n)·a·b
func RegularArea(n int, a, b float64) float64 {
	return float64(n) / 2 * math.Sin(2*math.Pi/float64(n)) * a * b
}

func validate(n int, a, b float64) error {
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrSides, n)
	}
	if !(a > 0) || !(b > 0) {
		return fmt.Errorf("%w: got a=%g, b=%g", ErrAxes, a, b)
	}
	return nil
}
