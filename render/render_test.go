package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/plot/vg"
)

func samplePanel(t *testing.T) *Panel {
	t.Helper()
	p := NewPanel("sample")
	hexagon := polygon.Regular(6).Scale(2, 1)

	if err := p.AddPolygon("hexagon", hexagon, Red); err != nil {
		t.Fatal(err)
	}
	if err := p.AddEllipse("ellipse", ellipsoid.Ellipsoid{Shape: polygon.Mat2(2, 0, 0, 1)}, 100, nil, true); err != nil {
		t.Fatal(err)
	}
	if err := p.AddPoints("", []mgl64.Vec2{{0, 0}}, Gray); err != nil {
		t.Fatal(err)
	}
	if err := p.AddLabels(hexagon[:2], []string{"A", "B"}); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPanelEqualAspect(t *testing.T) {
	p := samplePanel(t)

	box := p.Bounds()
	if box.Min.X() > -2 || box.Max.X() < 2 || box.Min.Y() > -1 || box.Max.Y() < 1 {
		t.Errorf("Bounds() = %+v does not cover the drawn shapes", box)
	}

	pl := p.Plot()
	xRange := pl.X.Max - pl.X.Min
	yRange := pl.Y.Max - pl.Y.Min
	if math.Abs(xRange-yRange) > 1e-12 {
		t.Errorf("axis ranges %v and %v differ", xRange, yRange)
	}
	if xRange < 4 {
		t.Errorf("x range %v is narrower than the data", xRange)
	}
}

func TestPanelBoundsMerge(t *testing.T) {
	p := NewPanel("bounds")
	if !p.Bounds().IsEmpty() {
		t.Fatalf("new panel bounds %+v, want empty", p.Bounds())
	}
	if err := p.AddPoints("", []mgl64.Vec2{{5, -3}}, Gray); err != nil {
		t.Fatal(err)
	}
	if err := p.AddCurve("", polygon.Polygon{{-1, 0}, {0, 1}}, Blue, false); err != nil {
		t.Fatal(err)
	}

	box := p.Bounds()
	if box.Min != (mgl64.Vec2{-1, -3}) || box.Max != (mgl64.Vec2{5, 1}) {
		t.Errorf("Bounds() = %+v, want (-1, -3)..(5, 1)", box)
	}
}

func TestPanelDefaultPalette(t *testing.T) {
	p := NewPanel("palette")
	if err := p.AddCurve("first", polygon.Regular(3), nil, false); err != nil {
		t.Fatal(err)
	}
	if err := p.AddCurve("second", polygon.Regular(4), nil, false); err != nil {
		t.Fatal(err)
	}
	if p.series != 2 {
		t.Errorf("series = %d, want 2", p.series)
	}
}

func TestPanelLabelsMismatch(t *testing.T) {
	p := NewPanel("labels")
	if err := p.AddLabels([]mgl64.Vec2{{0, 0}, {1, 1}}, []string{"only one"}); !errors.Is(err, ErrLength) {
		t.Errorf("AddLabels() error = %v, want ErrLength", err)
	}
}

func TestChartSeries(t *testing.T) {
	c := NewChart("volume", "n", "V")
	if err := c.AddSeries("ball", []float64{1, 2, 3}, []float64{2, math.Pi, 4.18}, Red); err != nil {
		t.Fatal(err)
	}

	err := c.AddSeries("cube", []float64{1, 2, 3}, []float64{1, 1}, Green)
	if !errors.Is(err, ErrLength) {
		t.Errorf("AddSeries() error = %v, want ErrLength", err)
	}
}

func TestSaveRowPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "row.png")

	c := NewChart("chart", "x", "y")
	if err := c.AddSeries("line", []float64{0, 1, 2}, []float64{0, 1, 4}, nil); err != nil {
		t.Fatal(err)
	}

	if err := SaveRow(path, 3*vg.Inch, 3*vg.Inch, samplePanel(t), c); err != nil {
		t.Fatalf("SaveRow() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}
}

func TestSaveRowSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "row.SVG")

	if err := SaveRow(path, Inches(2), Inches(2), samplePanel(t)); err != nil {
		t.Fatalf("SaveRow() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output is not an SVG document")
	}
}

func TestSaveRowErrors(t *testing.T) {
	dir := t.TempDir()

	if err := SaveRow(filepath.Join(dir, "empty.png"), vg.Inch, vg.Inch); !errors.Is(err, ErrNoPanels) {
		t.Errorf("SaveRow() without panels error = %v, want ErrNoPanels", err)
	}
	if err := SaveRow(filepath.Join(dir, "figure.xyz"), vg.Inch, vg.Inch, NewPanel("p")); !errors.Is(err, ErrFormat) {
		t.Errorf("SaveRow() error = %v, want ErrFormat", err)
	}
	if err := SaveRow(filepath.Join(dir, "missing", "figure.png"), vg.Inch, vg.Inch, samplePanel(t)); err == nil {
		t.Error("SaveRow() into a missing directory should fail")
	}
}

func TestInches(t *testing.T) {
	if Inches(2) != 2*vg.Inch {
		t.Errorf("Inches(2) = %v", Inches(2))
	}
}
