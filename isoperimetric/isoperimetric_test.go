package isoperimetric

import (
	"errors"
	"math"
	"testing"
)

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestBallMeasures(t *testing.T) {
	tests := []struct {
		n       int
		volume  float64
		surface float64
	}{
		{1, 2, 2},
		{2, math.Pi, 2 * math.Pi},
		{3, 4 * math.Pi / 3, 4 * math.Pi},
		{4, math.Pi * math.Pi / 2, 2 * math.Pi * math.Pi},
		{5, 8 * math.Pi * math.Pi / 15, 8 * math.Pi * math.Pi / 3},
	}

	for _, tt := range tests {
		if got := BallVolume(tt.n); !floatEqual(got, tt.volume, 1e-12) {
			t.Errorf("BallVolume(%d) = %v, want %v", tt.n, got, tt.volume)
		}
		if got := BallSurface(tt.n); !floatEqual(got, tt.surface, 1e-12) {
			t.Errorf("BallSurface(%d) = %v, want %v", tt.n, got, tt.surface)
		}
	}
}

func TestSurfaceIsDerivativeOfVolume(t *testing.T) {
	// S(n) = n·V(n) for the unit ball
	for n := 1; n <= 40; n++ {
		if got, want := BallSurface(n), float64(n)*BallVolume(n); !floatEqual(got/want, 1, 1e-12) {
			t.Errorf("n=%d: surface %v, n·volume %v", n, got, want)
		}
	}
}

func TestBallVolumePeaksAtFive(t *testing.T) {
	for n := 1; n <= 30; n++ {
		if n != 5 && BallVolume(n) >= BallVolume(5) {
			t.Errorf("BallVolume(%d) = %v >= BallVolume(5)", n, BallVolume(n))
		}
	}
}

func TestCubeMeasures(t *testing.T) {
	for n := 1; n <= 23; n++ {
		if CubeVolume(n) != 1 {
			t.Errorf("CubeVolume(%d) = %v", n, CubeVolume(n))
		}
		if CubeSurface(n) != float64(2*n) {
			t.Errorf("CubeSurface(%d) = %v", n, CubeSurface(n))
		}
	}
}

func TestRatioScaleInvariant(t *testing.T) {
	// Scaling by s multiplies S by s^(n-1) and V by s^n
	for n := 2; n <= 6; n++ {
		s := 3.0
		scaled := Ratio(BallSurface(n)*math.Pow(s, float64(n-1)), BallVolume(n)*math.Pow(s, float64(n)), n)
		if base := Ratio(BallSurface(n), BallVolume(n), n); !floatEqual(scaled, base, 1e-9) {
			t.Errorf("n=%d: ratio %v changed to %v under scaling", n, base, scaled)
		}
	}
}

func TestCompareCoincideInOneDimension(t *testing.T) {
	rows, err := Compare(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	r := rows[0]
	if !floatEqual(r.BallRatio, 2, 1e-12) || !floatEqual(r.CubeRatio, 2, 1e-12) {
		t.Errorf("n=1 ratios = %v, %v, want 2, 2", r.BallRatio, r.CubeRatio)
	}
	if !floatEqual(r.Gap(), 0, 1e-12) {
		t.Errorf("Gap() = %v, want 0", r.Gap())
	}
}

func TestCompareDivergence(t *testing.T) {
	rows, err := Compare(1, 23)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 23 {
		t.Fatalf("Compare(1, 23) returned %d rows", len(rows))
	}

	for i, r := range rows {
		if r.Dim != i+1 {
			t.Errorf("row %d has Dim %d", i, r.Dim)
		}
		if r.BallRatio > r.CubeRatio+1e-12 {
			t.Errorf("n=%d: ball ratio %v exceeds cube ratio %v", r.Dim, r.BallRatio, r.CubeRatio)
		}
		if i == 0 {
			continue
		}

		prev := rows[i-1]
		if !(r.Gap() > prev.Gap()) {
			t.Errorf("n=%d: gap %v does not grow from %v", r.Dim, r.Gap(), prev.Gap())
		}
		if !(r.BallRatio/r.CubeRatio < prev.BallRatio/prev.CubeRatio) {
			t.Errorf("n=%d: ball/cube ratio %v does not fall from %v",
				r.Dim, r.BallRatio/r.CubeRatio, prev.BallRatio/prev.CubeRatio)
		}
		if !(r.BallRatio > prev.BallRatio) {
			t.Errorf("n=%d: ball ratio %v does not grow", r.Dim, r.BallRatio)
		}
	}
}

func TestCompareInvalidRange(t *testing.T) {
	tests := []struct{ from, to int }{
		{0, 5},
		{-1, 3},
		{5, 4},
	}

	for _, tt := range tests {
		if _, err := Compare(tt.from, tt.to); !errors.Is(err, ErrRange) {
			t.Errorf("Compare(%d, %d) error = %v, want ErrRange", tt.from, tt.to, err)
		}
	}
}
