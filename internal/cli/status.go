// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/concierge-tui/internal/api"
)

// =============================================================================
// STATUS
// =============================================================================

// statusResult is the --json payload of `concierge status`.
type statusResult struct {
	Backend string      `json:"backend"`
	Health  *api.Health `json:"health"`
}

func newStatusCommand(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			base := e.client.BaseURL()
			h, err := e.client.Health(cmd.Context())
			if err != nil {
				err = fmt.Errorf("backend %s: %w", base, err)
			}
			if jsonOutput {
				return printJSONResult(cmd.OutOrStdout(), "status", statusResult{Backend: base, Health: h}, err)
			}
			if err != nil {
				return err
			}
			printHealth(cmd.OutOrStdout(), base, h)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}

func printHealth(w io.Writer, base string, h *api.Health) {
	status := commandStyle.Render(h.Status)
	if h.Status != "healthy" && h.Status != "ok" {
		status = warningStyle.Render(h.Status)
	}
	keyConfigured := "no"
	if h.APIKeyConfigured {
		keyConfigured = "yes"
	}

	fmt.Fprintf(w, "%s\n", headerStyle.Render("Backend"))
	fmt.Fprintf(w, "  URL:             %s\n", base)
	fmt.Fprintf(w, "  Status:          %s\n", status)
	if h.OpenAIClient != "" {
		fmt.Fprintf(w, "  Model client:    %s\n", h.OpenAIClient)
	}
	fmt.Fprintf(w, "  API key present: %s\n", keyConfigured)
	if !h.Timestamp.IsZero() {
		fmt.Fprintf(w, "  Checked at:      %s\n", h.Timestamp.Local().Format("2006-01-02 15:04:05"))
	}
}

// =============================================================================
// PROFILE
// =============================================================================

func newProfileCommand(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the user profile the backend holds",
		Long: `Print the profile the backend assembled for the current user.

The shape of the profile is defined by the backend, so it is printed as YAML
(or JSON with --json) without interpretation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			profile, err := e.client.UserProfile(cmd.Context())
			if err != nil {
				err = fmt.Errorf("fetch profile: %w", err)
			}
			if jsonOutput {
				return printJSONResult(cmd.OutOrStdout(), "profile", profile, err)
			}
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(profile); err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}
