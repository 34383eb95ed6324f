package ellipsoid

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// dim is the number of unknowns of a planar ellipse problem
const dim = 5

// vars holds the unknowns: the symmetric matrix [[z0, z1], [z1, z2]] and the vector (z3, z4)
type vars [dim]float64

func (z *vars) matrix() mgl64.Mat2 {
	return polygon.Mat2(z[0], z[1], z[1], z[2])
}

func (z *vars) vector() mgl64.Vec2 {
	return mgl64.Vec2{z[3], z[4]}
}

func (z *vars) det() float64 {
	return z[0]*z[2] - z[1]*z[1]
}

func (z *vars) add(step float64, dir *vars) vars {
	var out vars
	for k := range out {
		out[k] = z[k] + step*dir[k]
	}
	return out
}

func (z *vars) diverged() bool {
	for _, v := range z {
		if math.IsNaN(v) || math.Abs(v) > divergenceLimit {
			return true
		}
	}
	return false
}

func dot(a, b *vars) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}
	return sum
}

// cone is the constraint beta - g·z - |N·z| > 0, where N has two rows
type cone struct {
	beta float64
	g    vars
	n    [2]vars
}

// eval returns the slack of the constraint and the vector N·z
func (c *cone) eval(z *vars) (slack float64, v mgl64.Vec2) {
	v = mgl64.Vec2{dot(&c.n[0], z), dot(&c.n[1], z)}
	return c.beta - dot(&c.g, z) - v.Len(), v
}

// barrier minimises -log det(M(z)) subject to the cone constraints with a log-barrier method.
//
// For a barrier weight t, the centering problem is
//
//	minimise  F(z) = -t·log det(M(z)) - Σ log(slackᵢ(z))
//
// solved by damped Newton steps. t then grows geometrically until the duality gap bound m/t
// drops below the tolerance (m = number of constraints).
type barrier struct {
	cones    []cone
	settings Settings
}

// terms caches the pieces of F at one iterate, so that F differences can be formed from ratios
// instead of subtracting two large values.
type terms struct {
	det    float64
	slacks []float64
}

func (b *barrier) terms(z *vars) terms {
	out := terms{det: z.det(), slacks: make([]float64, len(b.cones))}
	for i := range b.cones {
		out.slacks[i], _ = b.cones[i].eval(z)
	}
	return out
}

// feasible reports whether z is strictly inside the domain of F
func (b *barrier) feasible(z *vars) bool {
	if !(z[0] > 0) || !(z.det() > 0) {
		return false
	}
	for i := range b.cones {
		if s, _ := b.cones[i].eval(z); !(s > 0) {
			return false
		}
	}
	return true
}

// change returns F(next) - F(z) for the iterate whose terms are base
func (b *barrier) change(t float64, base terms, next *vars) float64 {
	delta := -t * math.Log(next.det()/base.det)
	for i := range b.cones {
		s, _ := b.cones[i].eval(next)
		delta -= math.Log(s / base.slacks[i])
	}
	return delta
}

// newton computes the Newton direction of F at z and the squared Newton decrement
func (b *barrier) newton(t float64, z *vars) (dir vars, decrement float64, err error) {
	var grad vars
	var hess [dim][dim]float64

	// -t·log det: the determinant only involves the matrix unknowns z0, z1, z2
	det := z.det()
	dd := vars{z[2], -2 * z[1], z[0]}
	for i := 0; i < 3; i++ {
		grad[i] -= t * dd[i] / det
		for j := 0; j < 3; j++ {
			hess[i][j] += t * dd[i] * dd[j] / (det * det)
		}
	}
	hess[0][2] -= t / det
	hess[2][0] -= t / det
	hess[1][1] += 2 * t / det

	// -log(slack) for every cone
	for i := range b.cones {
		c := &b.cones[i]
		s, v := c.eval(z)
		length := v.Len()

		var ds vars // gradient of the slack
		var u mgl64.Vec2
		for k := range ds {
			ds[k] = -c.g[k]
		}
		if length > 0 {
			u = v.Mul(1 / length)
			for k := range ds {
				ds[k] -= u.X()*c.n[0][k] + u.Y()*c.n[1][k]
			}
		}

		for k := 0; k < dim; k++ {
			grad[k] -= ds[k] / s
			for l := 0; l < dim; l++ {
				hess[k][l] += ds[k] * ds[l] / (s * s)
			}
		}

		if length == 0 {
			continue
		}
		// curvature of |N·z|: Nᵀ(I - u·uᵀ)N / |N·z|
		q := [2][2]float64{
			{1 - u.X()*u.X(), -u.X() * u.Y()},
			{-u.X() * u.Y(), 1 - u.Y()*u.Y()},
		}
		for k := 0; k < dim; k++ {
			for l := 0; l < dim; l++ {
				var sum float64
				for p := 0; p < 2; p++ {
					for r := 0; r < 2; r++ {
						sum += c.n[p][k] * q[p][r] * c.n[r][l]
					}
				}
				hess[k][l] += sum / (length * s)
			}
		}
	}

	x, err := solveNewtonSystem(&hess, &grad)
	if err != nil {
		return vars{}, 0, err
	}
	for k := range dir {
		dir[k] = x.AtVec(k)
	}
	return dir, -dot(&grad, &dir), nil
}

// solveNewtonSystem solves hess·x = -grad by Cholesky factorisation. Hessians that lost
// definiteness to rounding get a growing diagonal shift.
func solveNewtonSystem(hess *[dim][dim]float64, grad *vars) (*mat.VecDense, error) {
	data := make([]float64, 0, dim*dim)
	var maxDiag float64
	for k := 0; k < dim; k++ {
		data = append(data, hess[k][:]...)
		maxDiag = math.Max(maxDiag, math.Abs(hess[k][k]))
	}
	h := mat.NewSymDense(dim, data)

	rhs := mat.NewVecDense(dim, nil)
	for k := 0; k < dim; k++ {
		rhs.SetVec(k, -grad[k])
	}

	var chol mat.Cholesky
	ok := chol.Factorize(h)
	shift := 1e-12 * math.Max(maxDiag, 1)
	for attempt := 0; !ok && attempt < 8; attempt++ {
		for k := 0; k < dim; k++ {
			h.SetSym(k, k, h.At(k, k)+shift)
		}
		ok = chol.Factorize(h)
		shift *= 100
	}
	if !ok {
		return nil, fmt.Errorf("%w: Newton system is not positive definite", ErrNotConverged)
	}

	var x mat.VecDense
	if err := chol.SolveVecTo(&x, rhs); err != nil {
		// An ill-conditioned system still yields a usable direction near the end of the path
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrNotConverged, err)
		}
	}
	return &x, nil
}

// lineSearch backtracks from a full Newton step until the iterate stays strictly feasible and
// F decreases enough (Armijo). ok is false when no step above minStep qualifies, which happens
// once rounding dominates the decrease.
func (b *barrier) lineSearch(t float64, z *vars, dir *vars, slope float64) (step float64, ok bool) {
	base := b.terms(z)
	for step = 1; step >= minStep; step *= lineSearchBeta {
		next := z.add(step, dir)
		if !b.feasible(&next) {
			continue
		}
		if b.change(t, base, &next) <= lineSearchAlpha*step*slope {
			return step, true
		}
	}
	return 0, false
}

// center runs damped Newton on F for a fixed t, updating z in place
func (b *barrier) center(t float64, z *vars) (steps int, err error) {
	for steps = 0; steps < b.settings.MaxNewtonSteps; steps++ {
		dir, decrement, err := b.newton(t, z)
		if err != nil {
			return steps, err
		}
		if decrement/2 <= NewtonTolerance {
			return steps, nil
		}

		step, ok := b.lineSearch(t, z, &dir, -decrement)
		if !ok {
			return steps, nil
		}
		*z = z.add(step, &dir)

		if z.diverged() {
			return steps, fmt.Errorf("%w: iterate diverged at t=%g", ErrUnbounded, t)
		}
	}
	return steps, fmt.Errorf("%w: centering at t=%g needed more than %d Newton steps",
		ErrNotConverged, t, b.settings.MaxNewtonSteps)
}

// solve follows the central path from the strictly feasible start until the gap bound is met
func (b *barrier) solve(start vars) (vars, error) {
	z := start
	if !b.feasible(&z) {
		return z, fmt.Errorf("%w: starting point is not strictly feasible", ErrDegenerate)
	}

	m := float64(len(b.cones))
	t := 1.0
	for i := 0; i < b.settings.MaxBarrierSteps; i++ {
		if _, err := b.center(t, &z); err != nil {
			return z, err
		}
		if m/t < b.settings.Tolerance {
			return z, nil
		}
		t *= b.settings.BarrierGrowth
	}

	return z, fmt.Errorf("%w: duality gap %g after %d barrier steps",
		ErrNotConverged, m/t, b.settings.MaxBarrierSteps)
}
