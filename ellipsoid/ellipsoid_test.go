package ellipsoid

import (
	"math"
	"testing"

	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// Helper functions
func vec2Equal(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance && math.Abs(a.Y()-b.Y()) < tolerance
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func mat2Equal(a, b mgl64.Mat2, tolerance float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(a.At(i, j)-b.At(i, j)) >= tolerance {
				return false
			}
		}
	}
	return true
}

func TestUnit(t *testing.T) {
	e := Unit()

	if !floatEqual(e.Area(), math.Pi, 1e-15) {
		t.Errorf("Area() = %v, want π", e.Area())
	}
	if !e.Contains(mgl64.Vec2{0.6, 0.8}, 1e-12) || e.Contains(mgl64.Vec2{0.8, 0.8}, 1e-12) {
		t.Error("Contains() wrong for the unit disc")
	}
	for i, p := range e.Boundary(64) {
		if !floatEqual(p.Len(), 1, 1e-12) {
			t.Errorf("boundary sample %d = %v", i, p)
		}
	}
}

func TestGaugeRoundTrip(t *testing.T) {
	e := Ellipsoid{Shape: polygon.Mat2(2, 0.5, 0.5, 1), Center: mgl64.Vec2{3, -1}}

	p, c, ok := e.Gauge()
	if !ok {
		t.Fatal("Gauge() failed")
	}

	// Every boundary point satisfies |P·x - c| = 1
	for i, x := range e.Boundary(50) {
		if v := p.Mul2x1(x).Sub(c).Len(); !floatEqual(v, 1, 1e-12) {
			t.Errorf("boundary sample %d: |Px - c| = %v", i, v)
		}
	}

	back, ok := FromGauge(p, c)
	if !ok {
		t.Fatal("FromGauge() failed")
	}
	if !mat2Equal(back.Shape, e.Shape, 1e-12) || !vec2Equal(back.Center, e.Center, 1e-12) {
		t.Errorf("round trip gave %+v, want %+v", back, e)
	}

	if _, _, ok := (Ellipsoid{}).Gauge(); ok {
		t.Error("Gauge() of a degenerate ellipsoid should fail")
	}
	if _, ok := FromGauge(mgl64.Mat2{}, mgl64.Vec2{}); ok {
		t.Error("FromGauge() of a singular matrix should fail")
	}
}

func TestScaleAboutCenter(t *testing.T) {
	e := Ellipsoid{Shape: polygon.Mat2(3, 0, 0, 1), Center: mgl64.Vec2{1, 1}}
	big := e.Scale(2)

	if big.Center != e.Center {
		t.Error("Scale() moved the center")
	}
	if !floatEqual(big.Area(), 4*e.Area(), 1e-12) {
		t.Errorf("Scale(2) area = %v, want %v", big.Area(), 4*e.Area())
	}
	if !big.Contains(mgl64.Vec2{6.9, 1}, 0) || big.Contains(mgl64.Vec2{7.1, 1}, 0) {
		t.Error("Scale(2) extent along x should be 6")
	}
}

func TestSupportAndBounds(t *testing.T) {
	e := Ellipsoid{Shape: polygon.Mat2(2, 0, 0, 1), Center: mgl64.Vec2{-1, 4}}

	if got := e.Support(mgl64.Vec2{1, 0}); !vec2Equal(got, mgl64.Vec2{1, 4}, 1e-12) {
		t.Errorf("Support(+x) = %v", got)
	}
	if got := e.Support(mgl64.Vec2{0, -5}); !vec2Equal(got, mgl64.Vec2{-1, 3}, 1e-12) {
		t.Errorf("Support(-y) = %v", got)
	}

	box := e.Bounds()
	if !vec2Equal(box.Min, mgl64.Vec2{-3, 3}, 1e-12) || !vec2Equal(box.Max, mgl64.Vec2{1, 5}, 1e-12) {
		t.Errorf("Bounds() = %+v", box)
	}

	// A rotated ellipse: every boundary sample must fall inside the box
	rotated := Ellipsoid{Shape: polygon.Mat2(2, 0.9, 0.9, 1)}
	rbox := rotated.Bounds()
	for _, p := range rotated.Boundary(360) {
		if p.X() < rbox.Min.X()-1e-9 || p.X() > rbox.Max.X()+1e-9 || p.Y() < rbox.Min.Y()-1e-9 || p.Y() > rbox.Max.Y()+1e-9 {
			t.Fatalf("boundary point %v outside bounds %+v", p, rbox)
		}
	}
}

func TestAxes(t *testing.T) {
	rotation := mgl64.Rotate2D(math.Pi / 6)
	shape := rotation.Mul2(polygon.Mat2(3, 0, 0, 1)).Mul2(rotation.Transpose())

	major, minor, angle := Ellipsoid{Shape: shape}.Axes()
	if !floatEqual(major, 3, 1e-12) || !floatEqual(minor, 1, 1e-12) {
		t.Errorf("Axes() = %v, %v, want 3, 1", major, minor)
	}
	if !floatEqual(angle, math.Pi/6, 1e-12) {
		t.Errorf("Axes() angle = %v, want π/6", angle)
	}
}
