// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/concierge-tui/internal/i18n"
	gate "github.com/jeranaias/concierge-tui/internal/onboarding"
)

// onboardStatus is the --json payload of `concierge onboard`.
type onboardStatus struct {
	Complete    bool   `json:"complete"`
	ProfileURL  string `json:"linkedin_url,omitempty"`
	DisplayName string `json:"full_name,omitempty"`
}

func newOnboardCommand(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		reset      bool
	)

	cmd := &cobra.Command{
		Use:   "onboard [profile-url]",
		Short: "Register your LinkedIn profile, or show who you are registered as",
		Long: `Submit a LinkedIn profile URL to the backend for verification.

On success the verified name is stored locally and the full-screen interface
skips its welcome form. Without an argument, the stored state is printed.`,
		Example: `  concierge onboard https://www.linkedin.com/in/ada-lovelace
  concierge onboard
  concierge onboard --reset`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if reset {
				// The flag goes first so a partial reset never reads as complete.
				for _, key := range []string{gate.KeyComplete, gate.KeyProfileURL, gate.KeyDisplayName} {
					if err := e.store.Delete(ctx, key); err != nil {
						return fmt.Errorf("reset onboarding: %w", err)
					}
				}
				fmt.Fprintln(out, "Onboarding state cleared.")
				return nil
			}

			if len(args) == 0 {
				st, err := gate.Load(ctx, e.store)
				if err != nil {
					err = fmt.Errorf("read onboarding state: %w", err)
				}
				res := onboardStatus{Complete: st.Complete, ProfileURL: st.ProfileURL, DisplayName: st.DisplayName}
				if jsonOutput {
					return printJSONResult(out, "onboard", res, err)
				}
				if err != nil {
					return err
				}
				if !st.Complete {
					fmt.Fprintln(out, infoStyle.Render("Not onboarded. Run: concierge onboard <linkedin-profile-url>"))
					return nil
				}
				fmt.Fprintf(out, "Name:    %s\nProfile: %s\n", st.DisplayName, st.ProfileURL)
				return nil
			}

			g := gate.NewGate(e.client, e.store, e.printer, e.logger)
			st, err := g.Submit(ctx, args[0])
			if jsonOutput {
				return printJSONResult(out, "onboard",
					onboardStatus{Complete: st.Complete, ProfileURL: st.ProfileURL, DisplayName: st.DisplayName}, err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, welcomeStyle.Render(e.printer.T(i18n.OnboardingWelcome, st.DisplayName)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored profile")
	return cmd
}
