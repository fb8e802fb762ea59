// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for concierge.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Backend address, timeouts, page sizes and retry policy
//   - UIConfig: Locale, theme and rendering switches
//   - Watcher: Reloads the file while the TUI runs
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CONCIERGE_*, VITE_BACKEND_URL)
//   - ~/.concierge/config.toml
//   - ~/.concierge/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := api.New(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout.Duration))
package config
