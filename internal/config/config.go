// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/concierge-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete concierge configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// API is the backend connection.
	API APIConfig `toml:"api" json:"api"`

	// UI holds presentation settings. These are applied live on reload.
	UI UIConfig `toml:"ui" json:"ui"`

	// Log controls the structured logger.
	Log LogConfig `toml:"log" json:"log"`

	// Storage locates the local state database.
	Storage StorageConfig `toml:"storage" json:"storage"`
}

// APIConfig contains backend connection settings.
type APIConfig struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000"
	BaseURL string `toml:"base_url" json:"base_url"`
	// Timeout bounds each HTTP request
	Timeout Duration `toml:"timeout" json:"timeout"`
	// PageSize is the number of conversations fetched per sidebar page
	PageSize int `toml:"page_size" json:"page_size"`
	// TranscriptPageSize is the page size used when loading a transcript (max 100)
	TranscriptPageSize int `toml:"transcript_page_size" json:"transcript_page_size"`

	Retry RetryConfig `toml:"retry" json:"retry"`
}

// RetryConfig configures the optional retry decorator. Disabled by default.
type RetryConfig struct {
	Enabled       bool     `toml:"enabled" json:"enabled"`
	MaxAttempts   int      `toml:"max_attempts" json:"max_attempts"`
	BaseDelay     Duration `toml:"base_delay" json:"base_delay"`
	MaxDelay      Duration `toml:"max_delay" json:"max_delay"`
	RatePerSecond float64  `toml:"rate_per_second" json:"rate_per_second"`
	// RetryUnsafe also retries POST and DELETE. Sends are not idempotent on
	// the backend, so this can duplicate messages.
	RetryUnsafe bool `toml:"retry_unsafe" json:"retry_unsafe"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Locale selects the message catalog: "en" or "fr"
	Locale string `toml:"locale" json:"locale"`
	// Theme is the UI theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`
	// ShowTimestamps shows relative times under each message
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// StatusInterval is how long each "thinking" phrase is shown
	StatusInterval Duration `toml:"status_interval" json:"status_interval"`
	// WordWrap is the markdown wrap width (0 = terminal width)
	WordWrap int `toml:"word_wrap" json:"word_wrap"`
	// Hyperlinks wraps reference glyphs in OSC 8 links
	Hyperlinks bool `toml:"hyperlinks" json:"hyperlinks"`
	// ASCIIGlyphs replaces emoji reference glyphs with [doc], [event], [person]
	ASCIIGlyphs bool `toml:"ascii_glyphs" json:"ascii_glyphs"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level" json:"level"`
	// File receives TUI logs (empty = ~/.concierge/concierge.log)
	File string `toml:"file" json:"file"`
}

// StorageConfig contains local state storage configuration.
type StorageConfig struct {
	// Path is the SQLite state database (empty = ~/.concierge/state.db)
	Path string `toml:"path" json:"path"`
}

// Duration is a time.Duration that reads and writes as "1m30s" in both
// TOML and JSON.
type Duration struct {
	time.Duration
}

// D wraps a time.Duration.
func D(d time.Duration) Duration {
	return Duration{d}
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Bare integers are
// read as seconds.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if secs, err := strconv.Atoi(s); err == nil {
		d.Duration = time.Duration(secs) * time.Second
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		API: APIConfig{
			BaseURL:            "http://localhost:8000",
			Timeout:            D(60 * time.Second),
			PageSize:           10,
			TranscriptPageSize: 100,
			Retry: RetryConfig{
				Enabled:       false,
				MaxAttempts:   3,
				BaseDelay:     D(500 * time.Millisecond),
				MaxDelay:      D(5 * time.Second),
				RatePerSecond: 2,
			},
		},

		UI: UIConfig{
			Locale:         "en",
			Theme:          "auto",
			ShowTimestamps: false,
			StatusInterval: D(2 * time.Second),
			WordWrap:       0,
			Hyperlinks:     true,
		},

		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the concierge configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".concierge"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// StatePath returns the state database path, resolving the default.
func (c *Config) StatePath() (string, error) {
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// LogPath returns the TUI log file path, resolving the default.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return expandHome(c.Log.File)
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "concierge.log"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ensureSecurePermissions narrows config files to 0600.
// SECURITY: the profile URL and backend address are personal data.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
//
// A file that exists but cannot be decoded is skipped; the returned error
// reports it alongside a usable config.
func Load() (*Config, error) {
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg := Default()
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return cfg, cfg.finalize()
			}
		}
	}

	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			cfg := Default()
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = errors.Join(loadErr, fmt.Errorf("failed to load JSON config: %w", err))
			} else {
				return cfg, cfg.finalize()
			}
		}
	}

	cfg := Default()
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg.
// SECURITY: Checks and fixes file permissions on load.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		fmt.Fprintf(os.Stderr, "Warning: unknown config keys in %s: %s\n", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
// SECURITY: Checks and fixes file permissions on load.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finalize applies env overrides and defaults, then validates.
func (c *Config) finalize() error {
	c.ApplyEnvOverrides()
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// SECURITY: Creates config files with 0600 permissions (owner read/write only).
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# concierge configuration file")
	fmt.Fprintln(&buf, "# Generated by concierge - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
// SECURITY: Creates config files with 0600 permissions (owner read/write only).
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Accepted enum values.
var (
	validLocales   = map[string]bool{"en": true, "fr": true}
	validThemes    = map[string]bool{"auto": true, "dark": true, "light": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// maxPageSize mirrors the backend's limit on ?limit=.
const maxPageSize = 100

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// API
	// ==========================================================================

	if u, err := url.Parse(c.API.BaseURL); err != nil {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("invalid URL: %v", err),
		})
	} else if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("'%s' must be an absolute http or https URL", c.API.BaseURL),
		})
	}

	if c.API.Timeout.Duration <= 0 {
		errs = append(errs, ValidationError{Field: "api.timeout", Message: "must be positive"})
	}
	if c.API.PageSize < 1 || c.API.PageSize > maxPageSize {
		errs = append(errs, ValidationError{
			Field:   "api.page_size",
			Message: fmt.Sprintf("%d out of range, must be 1-%d", c.API.PageSize, maxPageSize),
		})
	}
	if c.API.TranscriptPageSize < 1 || c.API.TranscriptPageSize > maxPageSize {
		errs = append(errs, ValidationError{
			Field:   "api.transcript_page_size",
			Message: fmt.Sprintf("%d out of range, must be 1-%d", c.API.TranscriptPageSize, maxPageSize),
		})
	}

	r := c.API.Retry
	if r.Enabled && r.MaxAttempts < 1 {
		errs = append(errs, ValidationError{Field: "api.retry.max_attempts", Message: "must be at least 1"})
	}
	if r.BaseDelay.Duration < 0 || r.MaxDelay.Duration < 0 {
		errs = append(errs, ValidationError{Field: "api.retry", Message: "delays cannot be negative"})
	}
	if r.MaxDelay.Duration > 0 && r.BaseDelay.Duration > r.MaxDelay.Duration {
		errs = append(errs, ValidationError{Field: "api.retry.base_delay", Message: "cannot exceed max_delay"})
	}
	if r.RatePerSecond < 0 {
		errs = append(errs, ValidationError{Field: "api.retry.rate_per_second", Message: "cannot be negative"})
	}

	// ==========================================================================
	// UI
	// ==========================================================================

	if !validLocales[strings.ToLower(c.UI.Locale)] {
		errs = append(errs, ValidationError{
			Field:   "ui.locale",
			Message: fmt.Sprintf("invalid locale '%s', must be one of: en, fr", c.UI.Locale),
		})
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}
	if c.UI.StatusInterval.Duration < 100*time.Millisecond {
		errs = append(errs, ValidationError{Field: "ui.status_interval", Message: "must be at least 100ms"})
	}
	if c.UI.WordWrap < 0 {
		errs = append(errs, ValidationError{Field: "ui.word_wrap", Message: "cannot be negative"})
	}

	// ==========================================================================
	// Log
	// ==========================================================================

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout.Duration == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = defaults.API.PageSize
	}
	if c.API.TranscriptPageSize == 0 {
		c.API.TranscriptPageSize = defaults.API.TranscriptPageSize
	}
	if c.API.Retry.MaxAttempts == 0 {
		c.API.Retry.MaxAttempts = defaults.API.Retry.MaxAttempts
	}
	if c.API.Retry.BaseDelay.Duration == 0 {
		c.API.Retry.BaseDelay = defaults.API.Retry.BaseDelay
	}
	if c.API.Retry.MaxDelay.Duration == 0 {
		c.API.Retry.MaxDelay = defaults.API.Retry.MaxDelay
	}

	// UI defaults
	if c.UI.Locale == "" {
		c.UI.Locale = defaults.UI.Locale
	}
	c.UI.Locale = strings.ToLower(c.UI.Locale)
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.StatusInterval.Duration == 0 {
		c.UI.StatusInterval = defaults.UI.StatusInterval
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - CONCIERGE_BACKEND_URL: overrides api.base_url
//   - VITE_BACKEND_URL: same, read when CONCIERGE_BACKEND_URL is unset
//   - CONCIERGE_LOCALE: overrides ui.locale
//   - CONCIERGE_THEME: overrides ui.theme
//   - CONCIERGE_LOG_LEVEL: overrides log.level
//   - CONCIERGE_STATE_DB: overrides storage.path
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("CONCIERGE_BACKEND_URL"); u != "" {
		c.API.BaseURL = u
	} else if u := os.Getenv("VITE_BACKEND_URL"); u != "" {
		c.API.BaseURL = u
	}

	if locale := os.Getenv("CONCIERGE_LOCALE"); locale != "" {
		c.UI.Locale = locale
	}

	if theme := os.Getenv("CONCIERGE_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if level := os.Getenv("CONCIERGE_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if path := os.Getenv("CONCIERGE_STATE_DB"); path != "" {
		c.Storage.Path = path
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "api.base_url").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	if d, ok := field.Interface().(Duration); ok {
		return d.String(), nil
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.locale").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks the struct tree for a dotted key. Only leaf fields are
// addressable through it.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(Duration{}) {
				return reflect.Value{}, fmt.Errorf("'%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct || field.Type() == reflect.TypeOf(Duration{}) {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		if field.CanAddr() {
			if tu, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
				return tu.UnmarshalText([]byte(strVal))
			}
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(lower == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	if d, ok := value.(time.Duration); ok && field.Type() == reflect.TypeOf(Duration{}) {
		field.Set(reflect.ValueOf(D(d)))
		return nil
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"api.base_url",
		"api.timeout",
		"api.page_size",
		"api.transcript_page_size",
		"api.retry.enabled",
		"api.retry.max_attempts",
		"api.retry.base_delay",
		"api.retry.max_delay",
		"api.retry.rate_per_second",
		"api.retry.retry_unsafe",
		"ui.locale",
		"ui.theme",
		"ui.show_timestamps",
		"ui.status_interval",
		"ui.word_wrap",
		"ui.hyperlinks",
		"ui.ascii_glyphs",
		"log.level",
		"log.file",
		"storage.path",
	}
}
