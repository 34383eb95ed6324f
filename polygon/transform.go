package polygon

import "github.com/go-gl/mathgl/mgl64"

// Transform represents the affine map x -> Linear*x + Translation
type Transform struct {
	Linear      mgl64.Mat2
	Translation mgl64.Vec2
}

// NewTranslation creates the map x -> x + offset
func NewTranslation(offset mgl64.Vec2) Transform {
	return Transform{Linear: mgl64.Ident2(), Translation: offset}
}

// Mat2 builds a 2x2 matrix from its entries in row order.
// mgl64 stores matrices column-major, which makes literals easy to get wrong.
func Mat2(m00, m01, m10, m11 float64) mgl64.Mat2 {
	return mgl64.Mat2{m00, m10, m01, m11}
}

// Apply maps a single point
func (t Transform) Apply(point mgl64.Vec2) mgl64.Vec2 {
	return t.Linear.Mul2x1(point).Add(t.Translation)
}

// Then returns the transform that applies t first and next second
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Linear:      next.Linear.Mul2(t.Linear),
		Translation: next.Apply(t.Translation),
	}
}
