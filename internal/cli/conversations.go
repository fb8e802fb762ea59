// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// conversations.go - Conversation management commands.
//
// Command: conversations
// Aliases: conv, c
//
// Subcommands:
//   list                 List conversations, newest first
//   show <id>            Print a conversation transcript
//   delete <id>          Delete a conversation (asks first)
//   export <id>          Export a transcript to markdown, html, json or yaml

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/conversations"
	"github.com/jeranaias/concierge-tui/internal/export"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/session"
	"github.com/jeranaias/concierge-tui/internal/util"
)

func newConversationsCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conv", "c"},
		Short:   "List, show, delete and export conversations",
	}
	cmd.AddCommand(
		newConversationsListCommand(opts),
		newConversationsShowCommand(opts),
		newConversationsDeleteCommand(opts),
		newConversationsExportCommand(opts),
	)
	return cmd
}

// =============================================================================
// LIST
// =============================================================================

// listResult is the --json payload of `conversations list`.
type listResult struct {
	Conversations []model.ConversationSummary `json:"conversations"`
	Page          int                         `json:"page,omitempty"`
	TotalPages    int                         `json:"total_pages,omitempty"`
	HasNext       bool                        `json:"has_next"`
}

func newConversationsListCommand(opts *globalOptions) *cobra.Command {
	var (
		page       int
		limit      int
		all        bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations, most recent first",
		Example: `  concierge conversations list
  concierge conversations list --page 2 --limit 20
  concierge conversations list --all --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			if limit < 0 || limit > api.MaxPageLimit {
				return fmt.Errorf("--limit must be between 1 and %d", api.MaxPageLimit)
			}

			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			if limit == 0 {
				limit = e.cfg.API.PageSize
			}
			ctx := cmd.Context()

			var res listResult
			if all {
				list := conversations.NewList(e.client,
					conversations.WithPageSize(limit),
					conversations.WithLogger(e.logger),
				)
				err = list.LoadAll(ctx)
				res.Conversations = list.Items()
			} else {
				var p *api.ConversationPage
				p, err = e.client.ListConversations(ctx, page, limit)
				if err == nil {
					res = listResult{
						Conversations: p.Conversations,
						Page:          p.Page,
						TotalPages:    p.TotalPages,
						HasNext:       p.HasNext,
					}
				}
			}
			if jsonOutput {
				return printJSONResult(cmd.OutOrStdout(), "conversations list", res, err)
			}
			if err != nil {
				return err
			}
			printConversationTable(cmd.OutOrStdout(), e.printer, res, time.Now())
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "conversations per page (default api.page_size)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "fetch every page")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}

const (
	idWidth    = 24
	countWidth = 8
	whenWidth  = 14
	titleWidth = 48
)

func printConversationTable(w io.Writer, p *i18n.Printer, res listResult, now time.Time) {
	if len(res.Conversations) == 0 {
		fmt.Fprintln(w, infoStyle.Render(p.T(i18n.SidebarEmpty)))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(
		util.PadRight("ID", idWidth)+"  "+
			util.PadRight("MESSAGES", countWidth)+"  "+
			util.PadRight("UPDATED", whenWidth)+"  TITLE"))
	for _, c := range res.Conversations {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			util.PadRight(util.Truncate(c.ID, idWidth), idWidth),
			util.PadRight(fmt.Sprintf("%d", c.MessageCount), countWidth),
			util.PadRight(p.RelativeTime(c.LastMessageTimestamp.Time, now), whenWidth),
			util.Preview(c.Title(), titleWidth),
		)
	}
	if res.HasNext {
		fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("page %d of %d, use --page %d for more", res.Page, res.TotalPages, res.Page+1)))
	}
}

// =============================================================================
// SHOW
// =============================================================================

func newConversationsShowCommand(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a conversation transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			id := args[0]
			out := cmd.OutOrStdout()
			if jsonOutput {
				msgs, err := e.client.FetchTranscript(cmd.Context(), id, e.cfg.API.TranscriptPageSize)
				if err != nil {
					err = fmt.Errorf("load conversation %s: %w", id, err)
				}
				return printJSONResult(out, "conversations show", export.FromStored(id, msgs), err)
			}

			r := newREPL(out, e.client, e.printer, e.cfg)
			return r.open(cmd.Context(), id)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}

// =============================================================================
// DELETE
// =============================================================================

func newConversationsDeleteCommand(opts *globalOptions) *cobra.Command {
	var (
		yes        bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a conversation",
		Example: `  concierge conversations delete 6651f0c2e4b0a1d2c3f4e5a6
  concierge conversations delete 6651f0c2e4b0a1d2c3f4e5a6 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			out := cmd.OutOrStdout()

			ok, err := RequireConfirmation(cmd.InOrStdin(), cmd.ErrOrStderr(),
				"delete conversation "+id,
				ConfirmationOptions{Yes: yes, JSONMode: jsonOutput})
			if err != nil {
				if jsonOutput {
					return printJSONResult(out, "conversations delete", nil, err)
				}
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), infoStyle.Render("Cancelled."))
				return nil
			}

			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			list := conversations.NewList(e.client, conversations.WithLogger(e.logger))
			list.RequestDelete(id)
			_, err = list.ConfirmDelete(cmd.Context())
			if err != nil {
				err = errors.New(e.printer.T(i18n.SidebarDeleteFailed, errorText(err)))
			}

			if jsonOutput {
				return printJSONResult(out, "conversations delete", map[string]string{"id": id}, err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Deleted conversation "+id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}

// errorText prefers the server's message over the wrapped Go error.
func errorText(err error) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}

// =============================================================================
// EXPORT
// =============================================================================

func newConversationsExportCommand(opts *globalOptions) *cobra.Command {
	var (
		format     string
		outputDir  string
		openAfter  bool
		toStdout   bool
		noMetadata bool
	)

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a conversation transcript",
		Long: fmt.Sprintf(`Export a conversation transcript to a file.

Formats: %s. References are kept as links.`, strings.Join(export.Formats(), ", ")),
		Example: `  concierge conversations export 6651f0c2e4b0a1d2c3f4e5a6
  concierge conversations export 6651f0c2e4b0a1d2c3f4e5a6 --format html --open
  concierge conversations export 6651f0c2e4b0a1d2c3f4e5a6 --format json --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expOpts := export.DefaultOptions()
			expOpts.OutputDir = outputDir
			expOpts.OpenAfterExport = openAfter
			expOpts.IncludeMetadata = !noMetadata

			exporter, err := export.ForFormat(format, expOpts)
			if err != nil {
				return err
			}

			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			id := args[0]
			sess := session.New(e.printer.T(i18n.ChatError))
			if err := sess.Open(cmd.Context(), e.client, id, e.cfg.API.TranscriptPageSize); err != nil {
				return fmt.Errorf("load conversation %s: %w", id, err)
			}
			transcript := export.FromMessages(id, sess.Messages)

			if toStdout {
				data, err := exporter.Export(transcript)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path, err := export.ExportToFile(transcript, exporter, expOpts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "export format: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	cmd.Flags().BoolVar(&openAfter, "open", false, "open the file after export")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write to stdout instead of a file")
	cmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "omit the metadata header")
	return cmd
}
