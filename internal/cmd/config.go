// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridrect/config"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := v.ConfigFileUsed()
			if p == "" {
				p = config.ConfigFile()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), p)

			return err
		},
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect gridrect configuration",
	}
	cmd.AddCommand(show, path)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gridrect version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gridrect", Version)
		},
	}
}
