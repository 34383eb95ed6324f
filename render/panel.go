// Package render draws polygons, ellipses and dimension sweeps into image files.
//
// Figures are built from panels laid out side by side in one file, the way the demos compare a
// shape before and after a map. Geometric panels keep both axes on the same scale: their data
// range is widened to a square before drawing, and SaveRow gives every panel the same size.
package render

import (
	"fmt"
	"image/color"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Margin is the fraction of the data extent left around a geometric panel's content
const Margin = 0.08

var (
	Red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	Green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	Blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	Purple = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	Gray   = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

// Drawable is a figure panel SaveRow can lay out
type Drawable interface {
	Plot() *plot.Plot
}

// Panel is a geometric plot with a grid, a legend and equal axis scales
type Panel struct {
	plot   *plot.Plot
	bounds polygon.AABB
	series int
}

// NewPanel creates an empty panel with the given title
func NewPanel(title string) *Panel {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	return &Panel{plot: p, bounds: polygon.EmptyAABB()}
}

// AddPolygon draws the closed outline of p with a marker on every vertex.
// A nil color picks the next color of the default palette.
func (pn *Panel) AddPolygon(name string, p polygon.Polygon, c color.Color) error {
	c = pn.color(c)

	line, err := plotter.NewLine(xys(p.Closed()))
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)

	vertices, err := plotter.NewScatter(xys(p))
	if err != nil {
		return err
	}
	vertices.GlyphStyle.Color = c
	vertices.GlyphStyle.Radius = vg.Points(3)
	vertices.GlyphStyle.Shape = draw.CircleGlyph{}

	pn.plot.Add(line, vertices)
	if name != "" {
		pn.plot.Legend.Add(name, line, vertices)
	}
	pn.extend(p)
	return nil
}

// AddCurve draws an open polyline, dashed on request
func (pn *Panel) AddCurve(name string, points polygon.Polygon, c color.Color, dashed bool) error {
	line, err := plotter.NewLine(xys(points))
	if err != nil {
		return err
	}
	line.LineStyle.Color = pn.color(c)
	line.LineStyle.Width = vg.Points(1.5)
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	}

	pn.plot.Add(line)
	if name != "" {
		pn.plot.Legend.Add(name, line)
	}
	pn.extend(points)
	return nil
}

// AddEllipse draws the boundary of e sampled at the given number of points
func (pn *Panel) AddEllipse(name string, e ellipsoid.Ellipsoid, samples int, c color.Color, dashed bool) error {
	return pn.AddCurve(name, e.Boundary(samples).Closed(), c, dashed)
}

// AddPoints draws unconnected markers
func (pn *Panel) AddPoints(name string, points []mgl64.Vec2, c color.Color) error {
	scatter, err := plotter.NewScatter(xys(points))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = pn.color(c)
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CrossGlyph{}

	pn.plot.Add(scatter)
	if name != "" {
		pn.plot.Legend.Add(name, scatter)
	}
	pn.extend(points)
	return nil
}

// AddLabels writes text next to points. labels and points must have the same length.
func (pn *Panel) AddLabels(points []mgl64.Vec2, labels []string) error {
	if len(points) != len(labels) {
		return fmt.Errorf("%w: %d points, %d labels", ErrLength, len(points), len(labels))
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys(points), Labels: labels})
	if err != nil {
		return err
	}
	l.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}

	pn.plot.Add(l)
	pn.extend(points)
	return nil
}

// Bounds returns the extent of everything drawn so far
func (pn *Panel) Bounds() polygon.AABB {
	return pn.bounds
}

// Plot returns the underlying plot with a square data range
func (pn *Panel) Plot() *plot.Plot {
	if !pn.bounds.IsEmpty() {
		square := pn.bounds.Square(Margin)
		pn.plot.X.Min, pn.plot.X.Max = square.Min.X(), square.Max.X()
		pn.plot.Y.Min, pn.plot.Y.Max = square.Min.Y(), square.Max.Y()
	}
	return pn.plot
}

func (pn *Panel) color(c color.Color) color.Color {
	if c == nil {
		c = plotutil.Color(pn.series)
	}
	pn.series++
	return c
}

func (pn *Panel) extend(points []mgl64.Vec2) {
	pn.bounds = pn.bounds.Union(polygon.Polygon(points).Bounds())
}

func xys(points []mgl64.Vec2) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, p := range points {
		out[i] = plotter.XY{X: p.X(), Y: p.Y()}
	}
	return out
}
