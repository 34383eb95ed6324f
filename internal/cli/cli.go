// Package cli implements the lownerjohn command-line interface.
//
// Each command runs one demonstration and writes its figure into the output directory:
//   - inscribed: regular polygons inscribed in a circle and in an ellipse
//   - ellipsoids: inner and outer Löwner–John ellipses of a polygon entered at the console
//   - john: a polygon before and after the map into John position
//   - isoperimetric: ball and cube measures across dimensions
//
// All commands support --verbose (-v) for debug-level logging and --config for an explicit
// configuration file. The logger and the configuration travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/akmonengine/lownerjohn/internal/config"
	"github.com/akmonengine/lownerjohn/render"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, typically from ldflags
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lownerjohn CLI
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "lownerjohn",
		Short:        "Löwner–John ellipsoids and other convex geometry demonstrations",
		Long:         `lownerjohn computes inscribed and circumscribed ellipses of convex polygons, normalizes polygons into John position, and compares balls with cubes across dimensions. Every command writes its figure as an image file.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Debug("Loaded configuration", "output_dir", cfg.OutputDir, "format", cfg.Format)

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lownerjohn %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: ./lownerjohn.yaml or ~/.config/lownerjohn/lownerjohn.yaml)")

	root.AddCommand(newInscribedCmd())
	root.AddCommand(newEllipsoidsCmd())
	root.AddCommand(newJohnCmd())
	root.AddCommand(newIsoperimetricCmd())

	return root
}

// saveFigure writes the panels side by side into <output_dir>/<name>.<format>
func saveFigure(ctx context.Context, name string, panels ...render.Drawable) (string, error) {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := cfg.OutputPath(name)
	prog := newProgress(logger)
	if err := render.SaveRow(path, render.Inches(cfg.PanelWidth), render.Inches(cfg.PanelHeight), panels...); err != nil {
		return "", err
	}
	prog.done("Wrote figure", "path", path, "panels", len(panels))
	return path, nil
}
