// SPDX-License-Identifier: MIT

// Package cmd implements the gridrect command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridrect/config"
)

// Version is overridden at build time via -ldflags "-X".
var Version = "dev"

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the gridrect root command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "gridrect",
		Short: "Decompose binary grids into isolated rectangles",
		Long: `gridrect scans a binary grid and reports every solid rectangle of 1s
that is fully isolated from the rest of the shape.

Settings come from defaults, then the config file, then GRIDRECT_*
environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initConfig(v)
		},
	}

	d := config.Default()
	fs := root.PersistentFlags()
	fs.StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/gridrect/config.yaml)")
	fs.String("log-level", d.Logging.Level, "log level: debug, info, warn, error")
	fs.String("log-format", d.Logging.Format, "log format: text, json")
	bindFlags(v, fs, map[string]string{
		"config":         "config",
		"logging.level":  "log-level",
		"logging.format": "log-format",
	})

	root.AddCommand(newDecomposeCmd(v), newConfigCmd(v), newVersionCmd())

	return root
}

// bindFlags binds each viper key to the named flag in fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}

func initConfig(v *viper.Viper) error {
	config.SetDefaults(v)

	cfgFile := v.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(config.EnvPrefix)
	// GRIDRECT_DECOMPOSE_MIN_WIDTH for decompose.min_width
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}
