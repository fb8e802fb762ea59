// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether fd is a terminal. Replaced in tests.
var isTerminal = term.IsTerminal

// isTTY reports whether r or w is attached to a terminal.
func isTTY(f interface{}) bool {
	file, ok := f.(*os.File)
	return ok && isTerminal(int(file.Fd()))
}

// =============================================================================
// CONFIRMATION
// =============================================================================

// ErrConfirmationRequired is returned when a destructive command cannot prompt.
var ErrConfirmationRequired = errors.New("confirmation required")

// ConfirmationOptions controls how a destructive action is confirmed.
type ConfirmationOptions struct {
	// Yes indicates --yes was passed (skip the prompt)
	Yes bool
	// JSONMode indicates --json was passed; prompts would corrupt the output
	JSONMode bool
}

// RequireConfirmation asks before a destructive action.
//
// Confirmation flow:
//  1. If opts.Yes is true, return true immediately
//  2. If opts.JSONMode is true, return an error (JSON mode requires --yes)
//  3. If stdin is not a TTY, return an error (can't prompt)
//  4. Otherwise, prompt on out and read the answer from in
func RequireConfirmation(in io.Reader, out io.Writer, action string, opts ConfirmationOptions) (bool, error) {
	if opts.Yes {
		return true, nil
	}
	if opts.JSONMode {
		return false, fmt.Errorf("%w: pass --yes to %s in JSON mode", ErrConfirmationRequired, action)
	}
	if !isTTY(in) {
		return false, fmt.Errorf("%w: stdin is not a terminal, pass --yes to %s", ErrConfirmationRequired, action)
	}

	fmt.Fprintf(out, "%s %s? [y/N]: ", warningStyle.Render("!"), action)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
