package config

import (
	"encoding/json"
	"os"

	"stockctl/internal/flagx"
	"stockctl/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "15s"
// or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	CookieHeader   string         `json:"cookie_header"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/--config flag. Fields absent from the file keep their current values.
// Read or unmarshal errors panic; there is no sane way to continue with a
// config the user explicitly pointed at but that cannot be used.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CookieHeader != "" {
		cfg.CookieHeader = jc.CookieHeader
	}
}
