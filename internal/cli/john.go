package cli

import (
	"fmt"
	"math"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/akmonengine/lownerjohn/john"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/akmonengine/lownerjohn/render"
	"github.com/spf13/cobra"
)

// defaultJohnPolygon is the hexagon drawn when no --point is given, in clockwise order
var defaultJohnPolygon = polygon.Polygon{{0, 0}, {1, 3}, {5.5, 4.5}, {7, 4}, {7, 1}, {3, -2}}

func newJohnCmd() *cobra.Command {
	points := &pointsFlag{}

	cmd := &cobra.Command{
		Use:   "john",
		Short: "Map a convex polygon into John position",
		Long: `Map a convex polygon by T(x) = C⁻¹(x - d), where {C·u + d : |u| <= 1} is its
inner Löwner–John ellipse, so that the image has the unit disc as inner ellipse.

The vertices given with --point must be listed in order around the polygon. The figure
shows the original and the normalized polygon with their inner ellipses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := points.points
			if len(p) == 0 {
				p = defaultJohnPolygon
			}
			return runJohn(cmd, p)
		},
	}

	cmd.Flags().Var(points, "point", "polygon vertex in order, repeatable")

	return cmd
}

func runJohn(cmd *cobra.Command, p polygon.Polygon) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if len(p) < 3 {
		return fmt.Errorf("%w: got %d vertices", ErrTooFewPoints, len(p))
	}

	prog := newProgress(logger)
	r, err := john.Normalize(p, cfg.Settings())
	if err != nil {
		return err
	}
	prog.done("Normalized polygon", "deviation", r.Deviation())

	if !r.Enclosed(2) {
		logger.Warn("Normalized polygon leaves the disc of radius 2; the vertices may not be convex or in order")
	}
	logger.Debug("Map", "linear", r.Map.Linear, "translation", r.Map.Translation)

	original, normalized, err := johnPanels(r, cfg.Samples)
	if err != nil {
		return err
	}

	path, err := saveFigure(ctx, "john", original, normalized)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "deviation from the unit disc: %.2e\n", r.Deviation())
	fmt.Fprintf(out, "area ratio polygon/inner ellipse: %.6f (π·ratio = %.6f)\n", r.AreaRatio(), math.Pi*r.AreaRatio())
	for i, v := range r.Normalized {
		fmt.Fprintf(out, "  %s -> %s\n", formatPoint(r.Original[i]), formatPoint(v))
	}
	fmt.Fprintln(out, path)
	return nil
}

// johnPanels draws the polygon before and after the map. The normalized panel shows the disc of
// radius 2 about the origin, the bound Result.Enclosed(2) checks.
func johnPanels(r john.Result, samples int) (original, normalized *render.Panel, err error) {
	original = render.NewPanel("Original")
	if err := original.AddPolygon("Polygon", r.Original, render.Red); err != nil {
		return nil, nil, err
	}
	if err := original.AddEllipse("Original Inner ellipsoid", r.Inner, samples, render.Green, false); err != nil {
		return nil, nil, err
	}

	normalized = render.NewPanel("John Normalized")
	if err := normalized.AddPolygon("Normalized polygon", r.Normalized, render.Blue); err != nil {
		return nil, nil, err
	}
	if err := normalized.AddEllipse("Normalized Inner ellipsoid", r.NormalizedInner, samples, render.Green, false); err != nil {
		return nil, nil, err
	}
	if err := normalized.AddEllipse("Radius 2", ellipsoid.Unit().Scale(2), samples, render.Gray, true); err != nil {
		return nil, nil, err
	}
	return original, normalized, nil
}
