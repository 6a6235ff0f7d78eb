// Package config handles configuration for the Plant Care client,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - BackendURL: base URL of the hosted backend project.
//   - APIKey: the project's public (anon) API key, sent with every request.
//   - DataDir: directory for the local preferences database and log file.
//   - RequestTimeout: upper bound for a single backend call.
type Config struct {
	BackendURL     string
	APIKey         string
	DataDir        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The API key has no
// default; it must come from the JSON config or a flag.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:54321"
	c.APIKey = ""
	c.DataDir = defaultDataDir()
	c.RequestTimeout = 10 * time.Second
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "plantcare")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
