// Package config holds runtime settings for the stockctl CLI and the logic
// for layering them from defaults, an optional JSON file, and command-line
// flags (bound by the command layer). Later sources take precedence.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the stockctl CLI.
//
// Fields:
//   - BaseURL: origin plus /api prefix of the inventory server.
//   - RequestTimeout: per-request HTTP timeout. The browser client this tool
//     replaces had none; a bounded wait changes nothing for the common case.
//   - DatabasePath: SQLite file the session token is persisted in.
//   - CookieHeader: optional raw Cookie header to send verbatim, curl -b
//     style; the CSRF token is extracted from it instead of the cookie jar.
//   - Verbose: emit per-request debug logs.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	CookieHeader   string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = defaultDatabasePath()
}

// Load constructs a Config from defaults overlaid with values from a JSON
// file when one is given via -c/--config. Flag values are applied on top of
// the result by the command layer.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	return cfg
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stockctl.db"
	}
	return filepath.Join(dir, "stockctl", "stockctl.db")
}
