package cli

import (
	"fmt"
	"math"

	"github.com/akmonengine/lownerjohn/inscribed"
	"github.com/akmonengine/lownerjohn/render"
	"github.com/spf13/cobra"
)

type inscribedOpts struct {
	sides    int
	a, b     float64
	seed     uint64
	restarts int
}

func newInscribedCmd() *cobra.Command {
	opts := inscribedOpts{}

	cmd := &cobra.Command{
		Use:   "inscribed",
		Short: "Draw a regular polygon inscribed in a circle and in an ellipse",
		Long: `Draw the regular n-gon inscribed in the unit circle and its image under diag(a, b), which
is the largest n-gon inscribed in the ellipse with semi-axes a and b.

A numerical maximum-area search over n-gons in the unit circle checks that no other
polygon does better than the regular one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInscribed(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.sides, "sides", "n", 7, "number of polygon sides")
	cmd.Flags().Float64Var(&opts.a, "a", 2, "semi-axis along x")
	cmd.Flags().Float64Var(&opts.b, "b", 1, "semi-axis along y")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed of the maximum-area search")
	cmd.Flags().IntVar(&opts.restarts, "restarts", 4, "independent starts of the maximum-area search")

	return cmd
}

func runInscribed(cmd *cobra.Command, opts inscribedOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	fig, err := inscribed.RegularSampled(opts.sides, opts.a, opts.b, cfg.Samples)
	if err != nil {
		return err
	}

	regular := inscribed.RegularArea(opts.sides, 1, 1)
	logger.Info("Regular polygon", "sides", opts.sides,
		"circle_area", regular, "ellipse_area", inscribed.RegularArea(opts.sides, opts.a, opts.b))

	prog := newProgress(logger)
	best, err := inscribed.MaxAreaRestarts(opts.sides, opts.seed, opts.restarts)
	if err != nil {
		return err
	}
	prog.done("Maximum-area search", "area", best.Area, "restarts", opts.restarts, "evaluations", best.Evaluations, "status", best.Status)
	logger.Info("Regular polygon versus search", "difference", regular-best.Area)
	if best.Area > regular+1e-9 {
		logger.Warn("Search found a larger polygon than the regular one", "excess", best.Area-regular)
	}

	circle := render.NewPanel(fmt.Sprintf("Unit circle with inscribed %d-polygon", opts.sides))
	if err := circle.AddCurve("Unit circle", fig.Circle.Closed(), render.Blue, false); err != nil {
		return err
	}
	if err := circle.AddPolygon(fmt.Sprintf("%d-gon in circle", opts.sides), fig.CirclePolygon, render.Blue); err != nil {
		return err
	}

	ellipse := render.NewPanel(fmt.Sprintf("Ellipse with inscribed %d-polygon", opts.sides))
	if err := ellipse.AddCurve("Ellipse", fig.Ellipse.Closed(), render.Blue, false); err != nil {
		return err
	}
	if err := ellipse.AddPolygon(fmt.Sprintf("%d-gon in ellipse", opts.sides), fig.EllipsePolygon, render.Red); err != nil {
		return err
	}

	path, err := saveFigure(ctx, "inscribed", circle, ellipse)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d-gon: area %.6f in the circle, %.6f in the ellipse (a=%g, b=%g)\n",
		opts.sides, regular, regular*opts.a*opts.b, opts.a, opts.b)
	fmt.Fprintf(cmd.OutOrStdout(), "maximum-area search: %.6f after %d evaluations (gap %.1e)\n",
		best.Area, best.Evaluations, math.Abs(regular-best.Area))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
