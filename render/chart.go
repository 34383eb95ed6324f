package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrLength reports series whose coordinates do not pair up
var ErrLength = errors.New("render: x and y have different lengths")

// Chart is a line chart of values against a parameter, such as the dimension
type Chart struct {
	plot   *plot.Plot
	series int
}

// NewChart creates an empty chart with a grid and a legend
func NewChart(title, xLabel, yLabel string) *Chart {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	return &Chart{plot: p}
}

// AddSeries draws ys against xs as a line with markers.
// A nil color picks the next color of the default palette.
func (ch *Chart) AddSeries(name string, xs, ys []float64, c color.Color) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d and %d", ErrLength, len(xs), len(ys))
	}
	if c == nil {
		c = plotutil.Color(ch.series)
	}
	ch.series++

	points := make(plotter.XYs, len(xs))
	for i := range xs {
		points[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	ch.plot.Add(line, scatter)
	ch.plot.Legend.Add(name, line, scatter)
	return nil
}

// Plot returns the underlying plot
func (ch *Chart) Plot() *plot.Plot {
	return ch.plot
}
