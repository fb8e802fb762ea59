// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive line-mode chat for concierge.
//
// Command: chat
// Short:   Chat with the concierge without the full-screen interface
//
// Examples:
//   concierge chat                          Start a new conversation
//   concierge chat --conversation abc123    Resume a conversation
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /new, /n            Start a new conversation
//   /list, /ls          List recent conversations
//   /open <id>          Switch to another conversation (Tab completes ids)
//   /history            Reprint the current conversation
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeranaias/concierge-tui/internal/commands"
	"github.com/jeranaias/concierge-tui/internal/config"
	"github.com/jeranaias/concierge-tui/internal/conversations"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/model"
	"github.com/jeranaias/concierge-tui/internal/render"
	"github.com/jeranaias/concierge-tui/internal/session"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with history stored in the config directory.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history to file.
// SECURITY: history holds questions the user typed, so it is written 0600.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// SetCompleter installs Tab completion.
func (c *ChatCLI) SetCompleter(complete func(line string) []string) {
	c.line.SetCompleter(complete)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// lineReader is the input side of the REPL.
type lineReader interface {
	ReadInput(prompt string) (string, error)
}

// chatBackend is what the REPL needs from the API client.
type chatBackend interface {
	conversations.Backend
	session.Sender
	session.TranscriptFetcher
}

// repl drives one chat session from line input. It is single-threaded: each
// send blocks until the reply or failure is appended.
type repl struct {
	out       io.Writer
	backend   chatBackend
	printer   *i18n.Printer
	renderer  *render.Renderer
	plain     bool
	pageSize  int
	pageLimit int
	sess      *session.Session
	commands  *commands.Registry

	// known holds ids from the last /list, offered by /open completion.
	known []string
}

func newREPL(out io.Writer, backend chatBackend, printer *i18n.Printer, cfg *config.Config) *repl {
	plain := !isTTY(out)
	width := 80
	if f, ok := out.(*os.File); ok && !plain {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if cfg.UI.WordWrap > 0 {
		width = cfg.UI.WordWrap
	}

	glyphs := render.UnicodeGlyphs
	if cfg.UI.ASCIIGlyphs {
		glyphs = render.ASCIIGlyphs
	}
	theme := styles.NewTheme(cfg.UI.Theme)

	r := &repl{
		out:     out,
		backend: backend,
		printer: printer,
		renderer: render.New(
			render.WithWidth(width),
			render.WithStyle(render.StyleFor(theme.IsDark)),
			render.WithGlyphs(glyphs),
			render.WithHyperlinks(cfg.UI.Hyperlinks),
		),
		plain:     plain,
		pageSize:  cfg.API.PageSize,
		pageLimit: cfg.API.TranscriptPageSize,
		sess:      session.New(printer.T(i18n.ChatError)),
	}
	r.commands = r.registry()
	return r
}

// registry builds the slash commands bound to this REPL.
func (r *repl) registry() *commands.Registry {
	reg := commands.NewRegistry()
	reg.Register(&commands.Command{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "Show available commands",
		Handler: func(context.Context, []string) error {
			r.printHelp()
			return nil
		},
	})
	reg.Register(&commands.Command{
		Name:        "/new",
		Aliases:     []string{"/n"},
		Description: "Start a new conversation",
		Handler: func(context.Context, []string) error {
			r.sess.Reset()
			fmt.Fprintln(r.out, infoStyle.Render("Started a new conversation."))
			return nil
		},
	})
	reg.Register(&commands.Command{
		Name:        "/list",
		Aliases:     []string{"/ls"},
		Description: "List recent conversations",
		Handler: func(ctx context.Context, _ []string) error {
			return r.list(ctx)
		},
	})
	reg.Register(&commands.Command{
		Name:        "/open",
		Usage:       "/open <conversation-id>",
		Description: "Switch to another conversation",
		Args: []commands.ArgDef{{
			Name:      "id",
			Required:  true,
			Completer: func() []string { return r.known },
		}},
		Handler: func(ctx context.Context, args []string) error {
			if err := r.open(ctx, args[0]); err != nil {
				fmt.Fprintln(r.out, errorStyle.Render(r.printer.T(i18n.ChatHistoryFailed)))
			}
			return nil
		},
	})
	reg.Register(&commands.Command{
		Name:        "/history",
		Description: "Reprint the current conversation",
		Handler: func(context.Context, []string) error {
			r.printHistory()
			return nil
		},
	})
	reg.Register(&commands.Command{
		Name:        "/quit",
		Aliases:     []string{"/q", "/exit"},
		Description: "Exit chat",
		Handler: func(context.Context, []string) error {
			return commands.ErrQuit
		},
	})
	return reg
}

// open resumes an existing conversation and prints its transcript.
func (r *repl) open(ctx context.Context, id string) error {
	if err := r.sess.Open(ctx, r.backend, id, r.pageLimit); err != nil {
		return fmt.Errorf("load conversation %s: %w", id, err)
	}
	r.printHistory()
	return nil
}

// list prints the first page of conversations and remembers their ids.
func (r *repl) list(ctx context.Context) error {
	list := conversations.NewList(r.backend, conversations.WithPageSize(r.pageSize))
	if err := list.LoadFirstPage(ctx); err != nil {
		fmt.Fprintln(r.out, errorStyle.Render(r.printer.T(i18n.SidebarLoadFailed)))
		return nil
	}
	items := list.Items()
	if len(items) == 0 {
		fmt.Fprintln(r.out, infoStyle.Render(r.printer.T(i18n.SidebarEmpty)))
		return nil
	}

	r.known = r.known[:0]
	for _, c := range items {
		r.known = append(r.known, c.ID)
		marker := " "
		if c.ID == r.sess.ConversationID {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s %s  %s\n", marker, commandStyle.Render(c.ID), util.Preview(c.Title(), titleWidth))
	}
	return nil
}

// run reads lines until EOF, Ctrl+C or /quit.
func (r *repl) run(ctx context.Context, in lineReader) error {
	fmt.Fprintln(r.out, welcomeStyle.Render(r.printer.T(i18n.ChatWelcome)))
	fmt.Fprintln(r.out, infoStyle.Render("Type /help for commands, /quit to exit."))
	fmt.Fprintln(r.out)

	for {
		if ctx.Err() != nil {
			return nil
		}
		input, err := in.ReadInput(promptStyle.Render("> "))
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if commands.IsCommand(input) {
			if quit := r.command(ctx, input); quit {
				return nil
			}
			continue
		}
		r.send(ctx, input)
	}
}

// command runs a slash command and reports whether to exit.
func (r *repl) command(ctx context.Context, input string) bool {
	err := r.commands.Execute(ctx, input)
	if errors.Is(err, commands.ErrQuit) {
		return true
	}
	if err != nil {
		fmt.Fprintln(r.out, warningStyle.Render(err.Error()))
	}
	return false
}

// send posts text and prints the reply. A failed send prints the synthetic
// error message and leaves the session ready for the next line.
func (r *repl) send(ctx context.Context, text string) {
	fmt.Fprintln(r.out, infoStyle.Render(r.printer.T(i18n.ChatThinking)))
	reply, err := r.sess.Send(ctx, r.backend, text)
	if err != nil && !reply.Synthetic {
		fmt.Fprintln(r.out, errorStyle.Render(err.Error()))
		return
	}
	r.printMessage(reply)
}

func (r *repl) printHistory() {
	for _, msg := range r.sess.Messages {
		r.printMessage(msg)
	}
}

func (r *repl) printMessage(msg model.Message) {
	label := headerStyle.Render(msg.Role.DisplayName())
	var body string
	switch {
	case msg.Synthetic:
		body = errorStyle.Render("[X] " + msg.Content)
	case r.plain:
		body = r.renderer.RenderPlain(msg.Content, msg.References)
	default:
		body = strings.TrimRight(r.renderer.Render(msg.Content, msg.References), "\n")
	}
	fmt.Fprintf(r.out, "%s\n%s\n\n", label, body)
}

func (r *repl) printHelp() {
	for _, c := range r.commands.All() {
		name := c.Name
		if c.Usage != "" {
			name = c.Usage
		}
		fmt.Fprintf(r.out, "  %s  %s\n", commandStyle.Render(util.PadRight(name, 26)), c.Description)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, infoStyle.Render(r.printer.T(i18n.ChatSuggestions)))
	for _, s := range r.printer.Suggestions()[:3] {
		fmt.Fprintf(r.out, "  - %s\n", s)
	}
}

// =============================================================================
// COMMAND
// =============================================================================

func newChatCommand(opts *globalOptions) *cobra.Command {
	var conversationID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat in line mode, without the full-screen interface",
		Long: `Start an interactive chat in the current terminal.

Replies are rendered as markdown with document, event and person references
shown inline. Input history is kept in ~/.concierge/chat_history.`,
		Example: `  concierge chat
  concierge chat --conversation 6651f0c2e4b0a1d2c3f4e5a6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(opts, cmd.ErrOrStderr(), logToStderr)
			if err != nil {
				return err
			}
			defer e.Close()

			r := newREPL(cmd.OutOrStdout(), e.client, e.printer, e.cfg)
			if conversationID != "" {
				if err := r.open(cmd.Context(), conversationID); err != nil {
					return err
				}
			}

			line := NewChatCLI()
			defer line.Close()
			line.SetCompleter(r.commands.Complete)
			return r.run(cmd.Context(), line)
		},
	}
	cmd.Flags().StringVarP(&conversationID, "conversation", "c", "", "resume the conversation with this id")
	return cmd
}
