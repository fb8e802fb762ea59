// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/session"
)

// askResult is the --json payload of `concierge ask`.
type askResult struct {
	ConversationID string                     `json:"conversation_id"`
	Reply          string                     `json:"reply"`
	References     map[string]model.Reference `json:"references,omitempty"`
}

func newAskCommand(opts *globalOptions) *cobra.Command {
	var (
		conversationID string
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question and print the reply",
		Long: `Send one message and print the assistant's reply.

Without --conversation a new conversation is started; its id is printed to
stderr so follow-up questions can continue it.`,
		Example: `  concierge ask "What sessions are on Friday?"
  concierge ask -c 6651f0c2e4b0a1d2c3f4e5a6 "And on Saturday?"
  concierge ask --json "Who is speaking at the keynote?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("question cannot be empty")
			}

			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			sess := session.New(e.printer.T(i18n.ChatError))

			if conversationID != "" {
				if err := sess.Open(ctx, e.client, conversationID, e.cfg.API.TranscriptPageSize); err != nil {
					err = fmt.Errorf("load conversation %s: %w", conversationID, err)
					if jsonOutput {
						return printJSONResult(out, "ask", nil, err)
					}
					return err
				}
			}

			reply, err := sess.Send(ctx, e.client, text)
			if err != nil {
				if jsonOutput {
					return printJSONResult(out, "ask", nil, err)
				}
				return err
			}

			if jsonOutput {
				return printJSONResult(out, "ask", askResult{
					ConversationID: sess.ConversationID,
					Reply:          reply.Content,
					References:     reply.References,
				}, nil)
			}

			r := newREPL(out, e.client, e.printer, e.cfg)
			if r.plain {
				fmt.Fprintln(out, r.renderer.RenderPlain(reply.Content, reply.References))
			} else {
				fmt.Fprintln(out, strings.TrimRight(r.renderer.Render(reply.Content, reply.References), "\n"))
			}
			if sess.ConversationID != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), infoStyle.Render("conversation: "+sess.ConversationID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&conversationID, "conversation", "c", "", "continue the conversation with this id")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the reply as JSON")
	return cmd
}
