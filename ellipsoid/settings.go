package ellipsoid

import "errors"

const (
	// DefaultTolerance bounds the duality gap m/t of the final barrier iterate.
	// With a handful of constraints the returned matrix entries are accurate to roughly this order.
	DefaultTolerance = 1e-9

	// DefaultBarrierGrowth multiplies the barrier weight t between centering steps.
	DefaultBarrierGrowth = 10.0

	// DefaultMaxNewtonSteps limits the Newton iterations of a single centering step.
	DefaultMaxNewtonSteps = 100

	// DefaultMaxBarrierSteps limits the number of centering steps.
	DefaultMaxBarrierSteps = 60

	// NewtonTolerance stops a centering step once half the squared Newton decrement falls below it.
	NewtonTolerance = 1e-10

	// lineSearchAlpha and lineSearchBeta are the Armijo fraction and the backtracking factor.
	lineSearchAlpha = 0.25
	lineSearchBeta  = 0.5

	// minStep is the smallest backtracking step; below it the iterate is as good as rounding allows.
	minStep = 1e-14

	// divergenceLimit flags iterates running off to infinity (unbounded feasible sets).
	divergenceLimit = 1e12

	// degenerateEpsilon is the relative size below which an interior radius or a point spread
	// counts as zero.
	degenerateEpsilon = 1e-10
)

var (
	// ErrDegenerate reports an input without interior: fewer than three points, collinear
	// points, or halfplanes whose intersection is flat.
	ErrDegenerate = errors.New("ellipsoid: degenerate input")
	// ErrInfeasible reports halfplanes with an empty intersection.
	ErrInfeasible = errors.New("ellipsoid: infeasible halfplanes")
	// ErrUnbounded reports halfplanes whose intersection is not bounded.
	ErrUnbounded = errors.New("ellipsoid: unbounded halfplanes")
	// ErrNotConverged reports that the interior-point iteration hit its limits.
	ErrNotConverged = errors.New("ellipsoid: solver did not converge")
)

// Settings tunes the interior-point solver. The zero value of a field selects its default.
type Settings struct {
	Tolerance       float64
	BarrierGrowth   float64
	MaxNewtonSteps  int
	MaxBarrierSteps int
}

// DefaultSettings returns the settings used when nil is passed to Inner or Outer
func DefaultSettings() *Settings {
	return &Settings{
		Tolerance:       DefaultTolerance,
		BarrierGrowth:   DefaultBarrierGrowth,
		MaxNewtonSteps:  DefaultMaxNewtonSteps,
		MaxBarrierSteps: DefaultMaxBarrierSteps,
	}
}

// withDefaults fills unset fields
func (s *Settings) withDefaults() Settings {
	out := *DefaultSettings()
	if s == nil {
		return out
	}
	if s.Tolerance > 0 {
		out.Tolerance = s.Tolerance
	}
	if s.BarrierGrowth > 1 {
		out.BarrierGrowth = s.BarrierGrowth
	}
	if s.MaxNewtonSteps > 0 {
		out.MaxNewtonSteps = s.MaxNewtonSteps
	}
	if s.MaxBarrierSteps > 0 {
		out.MaxBarrierSteps = s.MaxBarrierSteps
	}
	return out
}
