package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty working directory with an empty home
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 5.0, cfg.PanelWidth)
	assert.Equal(t, 5.0, cfg.PanelHeight)
	assert.Equal(t, 200, cfg.Samples)
	assert.Equal(t, ellipsoid.DefaultTolerance, cfg.Solver.Tolerance)
	assert.Equal(t, ellipsoid.DefaultBarrierGrowth, cfg.Solver.BarrierGrowth)
	assert.Equal(t, ellipsoid.DefaultMaxNewtonSteps, cfg.Solver.MaxNewtonSteps)
	assert.Equal(t, ellipsoid.DefaultMaxBarrierSteps, cfg.Solver.MaxBarrierSteps)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lownerjohn.yaml"), `
output_dir: figures
format: svg
samples: 64
solver:
  tolerance: 1.0e-6
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "figures", cfg.OutputDir)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, 64, cfg.Samples)
	assert.Equal(t, 1e-6, cfg.Solver.Tolerance)
	// Unset keys keep their defaults
	assert.Equal(t, ellipsoid.DefaultMaxBarrierSteps, cfg.Solver.MaxBarrierSteps)
}

func TestLoad_HomeConfigDirectory(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "home", ".config", "lownerjohn", "lownerjohn.yaml"), "format: pdf\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Format)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "panel_width: 7.5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7.5, cfg.PanelWidth)

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoad_Environment(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lownerjohn.yaml"), "format: svg\n")

	t.Setenv("LOWNERJOHN_FORMAT", "jpg")
	t.Setenv("LOWNERJOHN_SOLVER_MAX_NEWTON_STEPS", "42")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "jpg", cfg.Format)
	assert.Equal(t, 42, cfg.Solver.MaxNewtonSteps)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"too few samples", "samples: 2\n"},
		{"zero panel width", "panel_width: 0\n"},
		{"empty format", "format: \"\"\n"},
		{"negative tolerance", "solver:\n  tolerance: -1\n"},
		{"barrier growth of one", "solver:\n  barrier_growth: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, "lownerjohn.yaml"), tt.content)

			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "lownerjohn.yaml"), "format: [unclosed\n")

	_, err := Load("")
	assert.Error(t, err)
}

func TestConfig_Settings(t *testing.T) {
	cfg := Default()
	cfg.Solver.Tolerance = 1e-7
	cfg.Solver.MaxBarrierSteps = 10

	s := cfg.Settings()
	assert.Equal(t, 1e-7, s.Tolerance)
	assert.Equal(t, ellipsoid.DefaultBarrierGrowth, s.BarrierGrowth)
	assert.Equal(t, 10, s.MaxBarrierSteps)
}

func TestConfig_OutputPath(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "out"
	cfg.Format = "svg"
	assert.Equal(t, filepath.Join("out", "john.svg"), cfg.OutputPath("john"))

	cfg.Format = ".pdf"
	assert.Equal(t, filepath.Join("out", "john.pdf"), cfg.OutputPath("john"))
}
