// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Build information, set via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	backend    string
	locale     string
	verbose    bool
	ephemeral  bool
}

// NewRootCommand builds the concierge command tree. Without a subcommand it
// starts the full-screen interface.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "concierge",
		Short: "Terminal client for the event concierge assistant",
		Long: `concierge talks to the event concierge backend from your terminal.

Run it without arguments for the full-screen interface with the conversation
sidebar, or use the subcommands for scripting and quick questions.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.SetVersionTemplate("concierge {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ~/.concierge/config.toml)")
	pf.StringVar(&opts.backend, "backend", "", "backend base URL (overrides api.base_url)")
	pf.StringVar(&opts.locale, "locale", "", "interface language: en or fr")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log HTTP exchanges at debug level")
	pf.BoolVar(&opts.ephemeral, "ephemeral", false, "keep local state in memory only")

	root.AddCommand(
		newChatCommand(opts),
		newAskCommand(opts),
		newConversationsCommand(opts),
		newOnboardCommand(opts),
		newStatusCommand(opts),
		newProfileCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
