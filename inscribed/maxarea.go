package inscribed

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/optimize"
)

// MaxArea is the outcome of the numerical maximum-area search
type MaxArea struct {
	// Area of the best polygon found, inscribed in the unit circle
	Area float64
	// Angles of its vertices in increasing order, starting at 0
	Angles []float64
	// Evaluations of the area function
	Evaluations int
	// Status is the reason the search stopped
	Status optimize.Status
}

// Polygon returns the vertices at the found angles
func (m MaxArea) Polygon() polygon.Polygon {
	p := make(polygon.Polygon, len(m.Angles))
	for i, theta := range m.Angles {
		p[i] = mgl64.Vec2{math.Cos(theta), math.Sin(theta)}
	}
	return p
}

// MaxAreaAngles searches the n-gon of largest area among those inscribed in the unit circle.
//
// The central angles between consecutive vertices are parametrised by a softmax of n free
// weights, so every candidate is a valid polygon in counter-clockwise order and the search is
// unconstrained. Nelder–Mead starts from random weights drawn from seed. The area of a candidate
// is Σ sin(gapᵢ)/2; its maximum is RegularArea(n, 1, 1).
func MaxAreaAngles(n int, seed uint64) (MaxArea, error) {
	if err := validate(n, 1, 1); err != nil {
		return MaxArea{}, err
	}

	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	initial := make([]float64, n)
	for i := range initial {
		initial[i] = 2*rng.Float64() - 1
	}

	problem := optimize.Problem{
		Func: func(w []float64) float64 {
			return -gapArea(gaps(w))
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: 50000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-15,
			Iterations: 500,
		},
	}

	// Hitting an evaluation limit still leaves the best simplex vertex in result
	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if result == nil || len(result.X) != n {
		return MaxArea{}, fmt.Errorf("maximum-area search for n=%d: %w", n, err)
	}

	g := gaps(result.X)
	angles := make([]float64, n)
	for i := 1; i < n; i++ {
		angles[i] = angles[i-1] + g[i-1]
	}

	return MaxArea{
		Area:        gapArea(g),
		Angles:      angles,
		Evaluations: result.Stats.FuncEvaluations,
		Status:      result.Status,
	}, nil
}

// gaps maps free weights to central angles, positive and summing to 2π
func gaps(w []float64) []float64 {
	maxW := math.Inf(-1)
	for _, v := range w {
		maxW = math.Max(maxW, v)
	}

	out := make([]float64, len(w))
	var sum float64
	for i, v := range w {
		out[i] = math.Exp(v - maxW)
		sum += out[i]
	}
	for i := range out {
		out[i] *= 2 * math.Pi / sum
	}
	return out
}

// gapArea is the area of the inscribed polygon with the given central angles
func gapArea(gaps []float64) float64 {
	var area float64
	for _, g := range gaps {
		area += math.Sin(g)
	}
	return area / 2
}

// MaxAreaRestarts runs MaxAreaAngles from restarts consecutive seeds starting at seed and keeps
// the largest area. Evaluations is summed over all runs.
func MaxAreaRestarts(n int, seed uint64, restarts int) (MaxArea, error) {
	if err := validate(n, 1, 1); err != nil {
		return MaxArea{}, err
	}

	var best MaxArea
	var evaluations int
	for i := range max(1, restarts) {
		m, err := MaxAreaAngles(n, seed+uint64(i))
		if err != nil {
			return MaxArea{}, err
		}
		evaluations += m.Evaluations
		if i == 0 || m.Area > best.Area {
			best = m
		}
	}
	best.Evaluations = evaluations
	return best, nil
}
