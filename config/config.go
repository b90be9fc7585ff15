// SPDX-License-Identifier: MIT

// Package config holds the gridrect CLI configuration. Values are layered by
// viper: defaults, then an optional YAML file, then GRIDRECT_* environment
// variables, then command-line flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridrect/decompose"
	"github.com/katalvlaran/gridrect/logging"
)

// EnvPrefix prefixes every environment override, e.g. GRIDRECT_DECOMPOSE_MIN_WIDTH.
const EnvPrefix = "GRIDRECT"

// Output formats for the decompose command.
const (
	FormatList   = "list"
	FormatReport = "report"
	FormatGrid   = "grid"
)

// Config represents the complete gridrect configuration.
type Config struct {
	Decompose DecomposeConfig `mapstructure:"decompose" yaml:"decompose"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// DecomposeConfig controls the scan.
type DecomposeConfig struct {
	// MinWidth and MinHeight are the smallest accepted rectangle (default 2×2).
	MinWidth  int `mapstructure:"min_width" yaml:"min_width"`
	MinHeight int `mapstructure:"min_height" yaml:"min_height"`
	// StrictSeams also rejects rectangles whose top edge touches a 1 above.
	StrictSeams bool `mapstructure:"strict_seams" yaml:"strict_seams"`
}

// OutputConfig controls what the decompose command prints.
type OutputConfig struct {
	// Format is one of "list", "report", "grid".
	Format  string `mapstructure:"format" yaml:"format"`
	Color   bool   `mapstructure:"color" yaml:"color"`
	Verify  bool   `mapstructure:"verify" yaml:"verify"`
	Summary bool   `mapstructure:"summary" yaml:"summary"`
}

// LoggingConfig controls the diagnostic log written to stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Decompose: DecomposeConfig{
			MinWidth:  decompose.DefaultMinSize,
			MinHeight: decompose.DefaultMinSize,
		},
		Output: OutputConfig{
			Format: FormatList,
		},
		Logging: LoggingConfig{
			Level:  logging.LevelWarn,
			Format: logging.FormatText,
		},
	}
}

// SetDefaults registers every Default value on v so unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("decompose.min_width", d.Decompose.MinWidth)
	v.SetDefault("decompose.min_height", d.Decompose.MinHeight)
	v.SetDefault("decompose.strict_seams", d.Decompose.StrictSeams)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.verify", d.Output.Verify)
	v.SetDefault("output.summary", d.Output.Summary)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load reads the configuration from v into a Config struct and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// DecomposeOptions translates the decompose section into decompose options.
func (c *Config) DecomposeOptions() []decompose.Option {
	opts := []decompose.Option{decompose.WithMinSize(c.Decompose.MinWidth, c.Decompose.MinHeight)}
	if c.Decompose.StrictSeams {
		opts = append(opts, decompose.WithStrictSeams())
	}

	return opts
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gridrect")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gridrect"
	}

	return filepath.Join(home, ".config", "gridrect")
}

// ConfigFile returns the path to the default config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidFormats returns the accepted output formats.
func ValidFormats() []string {
	return []string{FormatList, FormatReport, FormatGrid}
}
