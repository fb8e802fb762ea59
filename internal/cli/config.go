// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration commands.
//
// Command: config
//
// Subcommands:
//   show                 Print the effective configuration as TOML
//   get <key>            Print one value (dot notation, e.g. api.base_url)
//   set <key> <value>    Change one value and save the config file
//   path                 Print the config file path

package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jeranaias/concierge-tui/internal/config"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit configuration",
		Long: fmt.Sprintf(`Show and edit the concierge configuration.

Keys use dot notation. Known keys:
  %s`, strings.Join(config.GetAllKeys(), "\n  ")),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := opts.loadConfig()
				if err != nil {
					return err
				}
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := opts.loadConfig()
				if err != nil {
					return err
				}
				v, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one configuration value and save",
			Example: `  concierge config set api.base_url https://concierge.example.com
  concierge config set ui.locale fr
  concierge config set api.timeout 90s`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				// Flag overrides must not leak into the saved file.
				fileOpts := &globalOptions{configPath: opts.configPath}
				cfg, path, err := fileOpts.loadConfig()
				if err != nil {
					return err
				}
				if err := cfg.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid value for %s: %w", args[0], err)
				}

				save := config.SaveTOML
				if strings.HasSuffix(path, ".json") {
					save = config.SaveJSON
				}
				if err := save(cfg, path); err != nil {
					return err
				}
				v, _ := cfg.Get(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", args[0], v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := opts.configPath
				if path == "" {
					var err error
					if path, err = defaultConfigPath(); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
	)
	return cmd
}
