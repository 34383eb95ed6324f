// Package isoperimetric compares the unit ball with the unit cube across dimensions.
//
// The isoperimetric ratio S/V^((n-1)/n) does not change under scaling, so it compares shapes
// rather than sizes. Among all bodies the ball has the smallest ratio; the cube's grows
// linearly with the dimension while the ball's grows like √n.
package isoperimetric

import (
	"errors"
	"fmt"
	"math"
)

// ErrRange reports an empty or non-positive dimension range
var ErrRange = errors.New("isoperimetric: invalid dimension range")

// BallVolume returns the volume of the unit n-ball, π^(n/2)/Γ(n/2+1)
func BallVolume(n int) float64 {
	half := float64(n) / 2
	lg, _ := math.Lgamma(half + 1)
	return math.Exp(half*math.Log(math.Pi) - lg)
}

// BallSurface returns the surface area of the unit n-ball, 2π^(n/2)/Γ(n/2)
func BallSurface(n int) float64 {
	half := float64(n) / 2
	lg, _ := math.Lgamma(half)
	return 2 * math.Exp(half*math.Log(math.Pi)-lg)
}

// CubeVolume returns the volume of the unit n-cube
func CubeVolume(int) float64 {
	return 1
}

// CubeSurface returns the surface area of the unit n-cube: 2n facets of unit area
func CubeSurface(n int) float64 {
	return 2 * float64(n)
}

// Ratio returns surface/volume^((n-1)/n)
func Ratio(surface, volume float64, n int) float64 {
	return surface / math.Pow(volume, float64(n-1)/float64(n))
}

// Row holds the measures of both bodies in one dimension
type Row struct {
	Dim         int
	BallVolume  float64
	BallSurface float64
	CubeVolume  float64
	CubeSurface float64
	BallRatio   float64
	CubeRatio   float64
}

// Gap returns CubeRatio - BallRatio
func (r Row) Gap() float64 {
	return r.CubeRatio - r.BallRatio
}

// Compare returns one row per dimension from..to, inclusive
func Compare(from, to int) ([]Row, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("%w: %d..%d", ErrRange, from, to)
	}

	rows := make([]Row, 0, to-from+1)
	for n := from; n <= to; n++ {
		r := Row{
			Dim:         n,
			BallVolume:  BallVolume(n),
			BallSurface: BallSurface(n),
			CubeVolume:  CubeVolume(n),
			CubeSurface: CubeSurface(n),
		}
		r.BallRatio = Ratio(r.BallSurface, r.BallVolume, n)
		r.CubeRatio = Ratio(r.CubeSurface, r.CubeVolume, n)
		rows = append(rows, r)
	}
	return rows, nil
}
