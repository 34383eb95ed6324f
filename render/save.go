package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrNoPanels reports a figure without panels
	ErrNoPanels = errors.New("render: nothing to draw")
	// ErrFormat reports a file name whose extension names no image format
	ErrFormat = errors.New("render: unsupported image format")
)

// SaveRow draws the panels side by side into one image file.
// Each panel gets width × height; the format follows the file extension (png, jpg, svg, pdf, eps, tif).
func SaveRow(path string, width, height vg.Length, panels ...Drawable) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	canvas, err := draw.NewFormattedCanvas(width*vg.Length(len(panels)), height, format)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrFormat, format, err)
	}

	row := make([]*plot.Plot, len(panels))
	for i, p := range panels {
		row[i] = p.Plot()
	}

	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(panels),
		PadX: vg.Millimeter * 4,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, draw.New(canvas))
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Inches converts a length given in inches, as read from configuration
func Inches(v float64) vg.Length {
	return vg.Length(v) * vg.Inch
}
