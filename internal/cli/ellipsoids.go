package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/akmonengine/lownerjohn/halfplane"
	"github.com/akmonengine/lownerjohn/internal/prompt"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/akmonengine/lownerjohn/render"
	"github.com/spf13/cobra"
)

// ErrTooFewPoints reports input whose convex hull is not a polygon
var ErrTooFewPoints = errors.New("need at least 3 points that are not collinear")

func newEllipsoidsCmd() *cobra.Command {
	points := &pointsFlag{}

	cmd := &cobra.Command{
		Use:   "ellipsoids",
		Short: "Compute the inner and outer Löwner–John ellipses of a polygon",
		Long: `Read points, take their convex hull and compute its maximum-area inscribed (inner)
and minimum-area enclosing (outer) ellipse.

Without --point the points are read interactively, one "x y" pair per line; an empty
line finishes the input. The figure shows the points in input order, then the polygon
with the inner ellipse E, √2·E, 2·E and the outer ellipse.`,
		Example: `  lownerjohn ellipsoids
  lownerjohn ellipsoids --point 0,0 --point 4,0 --point 5,3 --point 1,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := points.points
			if len(input) == 0 {
				var err error
				if input, err = prompt.ReadPoints(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return runEllipsoids(cmd, input)
		},
	}

	cmd.Flags().Var(points, "point", "polygon point, repeatable")

	return cmd
}

func runEllipsoids(cmd *cobra.Command, points polygon.Polygon) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	hull := polygon.ConvexHull(points)
	if len(hull) < 3 {
		return fmt.Errorf("%w: the convex hull has %d vertices", ErrTooFewPoints, len(hull))
	}
	poly := hull.Clockwise()
	logger.Debug("Convex hull", "vertices", len(poly), "dropped", len(points)-len(poly))

	prog := newProgress(logger)
	inner, err := ellipsoid.Inner(halfplane.FromPolygon(poly), cfg.Settings())
	if err != nil {
		return err
	}
	prog.done("Solved inner ellipse", "area", inner.Area())

	prog = newProgress(logger)
	outer, err := ellipsoid.Outer(poly, cfg.Settings())
	if err != nil {
		return err
	}
	prog.done("Solved outer ellipse", "area", outer.Area())

	input := render.NewPanel("Input points")
	if err := input.AddCurve("", points, render.Red, false); err != nil {
		return err
	}
	if err := input.AddPoints("Points", points, render.Red); err != nil {
		return err
	}
	labels := make([]string, len(points))
	for i := range points {
		labels[i] = strconv.Itoa(i + 1)
	}
	if err := input.AddLabels(points, labels); err != nil {
		return err
	}

	result := render.NewPanel("Polygon with Inner and Outer Ellipsoids")
	if err := result.AddPolygon("Polygon", poly, render.Red); err != nil {
		return err
	}
	if err := result.AddEllipse("Inner ellipsoid", inner, cfg.Samples, render.Green, false); err != nil {
		return err
	}
	if err := result.AddEllipse("sqrt(2) * Inner ellipsoid", inner.Scale(math.Sqrt2), cfg.Samples, render.Orange, true); err != nil {
		return err
	}
	if err := result.AddEllipse("2 * Inner ellipsoid", inner.Scale(2), cfg.Samples, render.Purple, true); err != nil {
		return err
	}
	if err := result.AddEllipse("Outer ellipsoid", outer, cfg.Samples, render.Blue, false); err != nil {
		return err
	}

	path, err := saveFigure(ctx, "ellipsoids", input, result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	major, minor, angle := inner.Axes()
	fmt.Fprintf(out, "polygon: %d vertices, area %.6f\n", len(poly), poly.Area())
	fmt.Fprintf(out, "inner: center (%.6f, %.6f), semi-axes %.6f, %.6f, angle %.4f rad, area %.6f\n",
		inner.Center.X(), inner.Center.Y(), major, minor, angle, inner.Area())
	major, minor, angle = outer.Axes()
	fmt.Fprintf(out, "outer: center (%.6f, %.6f), semi-axes %.6f, %.6f, angle %.4f rad, area %.6f\n",
		outer.Center.X(), outer.Center.Y(), major, minor, angle, outer.Area())
	fmt.Fprintln(out, path)
	return nil
}
