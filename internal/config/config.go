// Package config loads lownerjohn settings from an optional YAML file and the environment.
//
// Lookup order for the file: the path given with --config, then lownerjohn.yaml in the current
// directory, then in $HOME/.config/lownerjohn. Environment variables prefixed with LOWNERJOHN_
// override file values; nested keys use an underscore (LOWNERJOHN_SOLVER_TOLERANCE).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/spf13/viper"
)

const (
	configFileName = "lownerjohn"
	configFileType = "yaml"
	envPrefix      = "LOWNERJOHN"

	keyOutputDir       = "output_dir"
	keyFormat          = "format"
	keyPanelWidth      = "panel_width"
	keyPanelHeight     = "panel_height"
	keySamples         = "samples"
	keyTolerance       = "solver.tolerance"
	keyBarrierGrowth   = "solver.barrier_growth"
	keyMaxNewtonSteps  = "solver.max_newton_steps"
	keyMaxBarrierSteps = "solver.max_barrier_steps"
)

// ErrInvalid reports a configuration value outside its domain
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the commands read
type Config struct {
	OutputDir   string  `mapstructure:"output_dir"`
	Format      string  `mapstructure:"format"`
	PanelWidth  float64 `mapstructure:"panel_width"`
	PanelHeight float64 `mapstructure:"panel_height"`
	Samples     int     `mapstructure:"samples"`
	Solver      Solver  `mapstructure:"solver"`
}

// Solver mirrors ellipsoid.Settings
type Solver struct {
	Tolerance       float64 `mapstructure:"tolerance"`
	BarrierGrowth   float64 `mapstructure:"barrier_growth"`
	MaxNewtonSteps  int     `mapstructure:"max_newton_steps"`
	MaxBarrierSteps int     `mapstructure:"max_barrier_steps"`
}

// Load reads the configuration. An empty path searches the default locations, where a missing
// file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configFileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment variable is set
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyOutputDir, ".")
	v.SetDefault(keyFormat, "png")
	v.SetDefault(keyPanelWidth, 5.0)
	v.SetDefault(keyPanelHeight, 5.0)
	v.SetDefault(keySamples, 200)
	v.SetDefault(keyTolerance, ellipsoid.DefaultTolerance)
	v.SetDefault(keyBarrierGrowth, ellipsoid.DefaultBarrierGrowth)
	v.SetDefault(keyMaxNewtonSteps, ellipsoid.DefaultMaxNewtonSteps)
	v.SetDefault(keyMaxBarrierSteps, ellipsoid.DefaultMaxBarrierSteps)
}

// Validate checks the values the commands cannot work around
func (c *Config) Validate() error {
	switch {
	case c.Format == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalid, keyFormat)
	case !(c.PanelWidth > 0) || !(c.PanelHeight > 0):
		return fmt.Errorf("%w: panel size %gx%g", ErrInvalid, c.PanelWidth, c.PanelHeight)
	case c.Samples < 3:
		return fmt.Errorf("%w: %s = %d, need at least 3", ErrInvalid, keySamples, c.Samples)
	case !(c.Solver.Tolerance > 0):
		return fmt.Errorf("%w: %s = %g", ErrInvalid, keyTolerance, c.Solver.Tolerance)
	case !(c.Solver.BarrierGrowth > 1):
		return fmt.Errorf("%w: %s = %g, need more than 1", ErrInvalid, keyBarrierGrowth, c.Solver.BarrierGrowth)
	}
	return nil
}

// Settings returns the solver settings for ellipsoid.Inner and ellipsoid.Outer
func (c *Config) Settings() *ellipsoid.Settings {
	return &ellipsoid.Settings{
		Tolerance:       c.Solver.Tolerance,
		BarrierGrowth:   c.Solver.BarrierGrowth,
		MaxNewtonSteps:  c.Solver.MaxNewtonSteps,
		MaxBarrierSteps: c.Solver.MaxBarrierSteps,
	}
}

// OutputPath returns the file for a figure: name in the output directory, with the configured format
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name+"."+strings.TrimPrefix(c.Format, "."))
}
