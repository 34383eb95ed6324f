package cli

import (
	"fmt"
	"strconv"

	"github.com/akmonengine/lownerjohn/isoperimetric"
	"github.com/akmonengine/lownerjohn/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newIsoperimetricCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "isoperimetric",
		Short: "Compare the unit ball and the unit cube across dimensions",
		Long: `Tabulate volume, surface area and isoperimetric ratio S/V^((n-1)/n) of the unit ball
and the unit cube for every dimension in the range, and plot the three measures.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIsoperimetric(cmd, from, to)
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "first dimension")
	cmd.Flags().IntVar(&to, "to", 23, "last dimension")

	return cmd
}

func runIsoperimetric(cmd *cobra.Command, from, to int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	rows, err := isoperimetric.Compare(from, to)
	if err != nil {
		return err
	}
	logger.Debug("Compared dimensions", "from", from, "to", to)

	fmt.Fprintln(cmd.OutOrStdout(), comparisonTable(rows))

	dims := make([]float64, len(rows))
	series := map[string][]float64{}
	for i, r := range rows {
		dims[i] = float64(r.Dim)
		series["ball volume"] = append(series["ball volume"], r.BallVolume)
		series["cube volume"] = append(series["cube volume"], r.CubeVolume)
		series["ball surface"] = append(series["ball surface"], r.BallSurface)
		series["cube surface"] = append(series["cube surface"], r.CubeSurface)
		series["ball ratio"] = append(series["ball ratio"], r.BallRatio)
		series["cube ratio"] = append(series["cube ratio"], r.CubeRatio)
	}

	charts := []struct {
		title, yLabel, ball, cube, key string
	}{
		{"Volume of unit ball and unit cube", "Volume", "Ball volume", "Cube volume", "volume"},
		{"Surface area of unit ball and unit cube", "Surface Area", "Ball surface area", "Cube surface area", "surface"},
		{"Isoperimetric ratio of unit ball and unit cube", "Isoperimetric Ratio", "Ball Isoperimetric Ratio", "Cube Isoperimetric Ratio", "ratio"},
	}

	panels := make([]render.Drawable, 0, len(charts))
	for _, c := range charts {
		chart := render.NewChart(c.title, "Dimension n", c.yLabel)
		if err := chart.AddSeries(c.ball, dims, series["ball "+c.key], render.Red); err != nil {
			return err
		}
		if err := chart.AddSeries(c.cube, dims, series["cube "+c.key], render.Green); err != nil {
			return err
		}
		panels = append(panels, chart)
	}

	path, err := saveFigure(ctx, "isoperimetric", panels...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// comparisonTable renders the rows with lipgloss, one dimension per line
func comparisonTable(rows []isoperimetric.Row) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.Dim),
			formatFloat(r.BallVolume),
			formatFloat(r.BallSurface),
			formatFloat(r.CubeVolume),
			formatFloat(r.CubeSurface),
			formatFloat(r.BallRatio),
			formatFloat(r.CubeRatio),
			formatFloat(r.Gap()),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("n", "ball V", "ball S", "cube V", "cube S", "ball ratio", "cube ratio", "gap").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	return t.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
