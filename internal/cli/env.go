// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jeranaias/concierge-tui/internal/api"
	"github.com/jeranaias/concierge-tui/internal/config"
	"github.com/jeranaias/concierge-tui/internal/i18n"
	"github.com/jeranaias/concierge-tui/internal/logging"
	"github.com/jeranaias/concierge-tui/internal/storage"
)

// =============================================================================
// CONFIG RESOLUTION
// =============================================================================

// loadConfig resolves the config file and applies flag overrides. It returns
// the config and the path that `config set` writes back to.
func (o *globalOptions) loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path = o.configPath
		err  error
	)

	switch {
	case path != "":
		if _, statErr := os.Stat(path); statErr == nil {
			cfg, err = config.LoadFromPath(path)
		} else if errors.Is(statErr, os.ErrNotExist) {
			cfg, err = finalized(config.Default())
		} else {
			err = fmt.Errorf("stat config %s: %w", path, statErr)
		}
	default:
		path, err = defaultConfigPath()
		if err == nil {
			cfg, err = config.Load()
		}
	}
	if err != nil {
		return nil, "", err
	}

	if o.backend != "" {
		cfg.API.BaseURL = o.backend
	}
	if o.locale != "" {
		cfg.UI.Locale = o.locale
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, path, nil
}

// defaultConfigPath prefers an existing JSON file only when no TOML file exists.
func defaultConfigPath() (string, error) {
	tomlPath, err := config.ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := config.ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

func finalized(cfg *config.Config) (*config.Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// COMMAND ENVIRONMENT
// =============================================================================

// env is everything a networked command needs.
type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *log.Logger
	client  *api.Client
	store   storage.Store
	printer *i18n.Printer

	closers []io.Closer
}

// logTarget selects where an env writes its log.
type logTarget int

const (
	// logToStderr is used by line-oriented commands.
	logToStderr logTarget = iota
	// logToFile is used while the full-screen interface owns the terminal.
	logToFile
)

// newEnv builds the logger, client, store and printer for a command.
func newEnv(opts *globalOptions, stderr io.Writer, target logTarget) (*env, error) {
	cfg, path, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, cfgPath: path, printer: i18n.New(cfg.UI.Locale)}

	switch target {
	case logToFile:
		path, err := cfg.LogPath()
		if err != nil {
			return nil, err
		}
		logger, closer, err := logging.OpenFile(path, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		e.logger = logger
		e.closers = append(e.closers, closer)
	default:
		logger, err := logging.New(stderr, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		e.logger = logger
	}
	logging.Install(e.logger)

	e.client = newClient(cfg, e.logger)

	if opts.ephemeral {
		e.store = storage.NewMemory()
	} else {
		path, err := cfg.StatePath()
		if err != nil {
			e.Close()
			return nil, err
		}
		db, err := storage.Open(path)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.store = db
	}
	e.closers = append(e.closers, e.store)

	e.logger.Debug("environment ready", "backend", cfg.API.BaseURL, "locale", e.printer.Tag(), "ephemeral", opts.ephemeral)
	return e, nil
}

// newClient wires the API client, wrapping the transport in a RetryDoer when
// retries are enabled.
func newClient(cfg *config.Config, logger *log.Logger) *api.Client {
	base := []api.Option{
		api.WithLogger(logger),
		api.WithUserAgent("concierge/" + Version),
	}
	client := api.New(cfg.API.BaseURL, append(base, api.WithTimeout(cfg.API.Timeout.Duration))...)
	if !cfg.API.Retry.Enabled {
		return client
	}

	r := cfg.API.Retry
	policy := api.RetryPolicy{
		MaxAttempts:   r.MaxAttempts,
		BaseDelay:     r.BaseDelay.Duration,
		MaxDelay:      r.MaxDelay.Duration,
		RatePerSecond: r.RatePerSecond,
		RetryUnsafe:   r.RetryUnsafe,
	}
	return api.New(cfg.API.BaseURL, append(base, api.WithDoer(api.NewRetryDoer(client.Doer(), policy)))...)
}

// Close releases the store and log file, in reverse order of acquisition.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}
