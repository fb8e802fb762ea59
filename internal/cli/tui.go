// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jeranaias/concierge-tui/internal/config"
	gate "github.com/jeranaias/concierge-tui/internal/onboarding"
	"github.com/jeranaias/concierge-tui/internal/render"
	"github.com/jeranaias/concierge-tui/internal/ui/app"
	"github.com/jeranaias/concierge-tui/internal/ui/chat"
	"github.com/jeranaias/concierge-tui/internal/ui/styles"
)

// runTUI starts the full-screen interface. The log goes to a file because the
// program owns the terminal.
func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	e, err := newEnv(opts, cmd.ErrOrStderr(), logToFile)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	state, err := gate.Load(ctx, e.store)
	if err != nil {
		// RELIABILITY: unreadable state means onboarding again, not a crash.
		e.logger.Warn("failed to read onboarding state", "err", err)
	}

	cfg := e.cfg
	theme := styles.NewTheme(cfg.UI.Theme)

	reloads, stopWatch := watchConfig(ctx, e, opts.locale)
	defer stopWatch()

	return app.Run(app.Deps{
		Backend:   e.client,
		Gate:      gate.NewGate(e.client, e.store, e.printer, e.logger),
		Printer:   e.printer,
		Theme:     theme,
		Onboarded: state,
		PageSize:  cfg.API.PageSize,
		Chat: chat.Options{
			Timeout:            cfg.API.Timeout.Duration,
			TranscriptPageSize: cfg.API.TranscriptPageSize,
			StatusInterval:     cfg.UI.StatusInterval.Duration,
			ShowTimestamps:     cfg.UI.ShowTimestamps,
			WordWrap:           cfg.UI.WordWrap,
			Hyperlinks:         cfg.UI.Hyperlinks,
			ASCIIGlyphs:        cfg.UI.ASCIIGlyphs,
			MarkdownStyle:      render.StyleFor(theme.IsDark),
			UserName:           state.DisplayName,
			Logger:             e.logger,
		},
		Reloads: reloads,
		Logger:  e.logger,
	})
}

// watchConfig follows the config file while the interface runs. Reloads are
// dropped rather than queued when the program is busy; the next write
// delivers a fresh copy anyway.
func watchConfig(ctx context.Context, e *env, localeFlag string) (<-chan *config.Config, func()) {
	path := e.cfgPath
	reloads := make(chan *config.Config, 1)
	w, err := config.NewWatcher(path, config.DefaultDebounce, func(cfg *config.Config, err error) {
		if err != nil {
			e.logger.Warn("config reload failed", "path", path, "err", err)
			return
		}
		if localeFlag != "" {
			cfg.UI.Locale = localeFlag
		}
		select {
		case reloads <- cfg:
		default:
		}
	})
	if err != nil {
		e.logger.Warn("config watcher disabled", "path", path, "err", err)
		return nil, func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	go w.Run(ctx)
	return reloads, func() {
		cancel()
		w.Close()
	}
}
