package config

import (
	"log/slog"
	"time"
)

// Config holds runtime settings for the CoinKeeper CLI.
//
// Fields:
//   - BaseURL: base URL of the backend REST server.
//   - ClientDBPath: sqlite file holding the persisted credential token.
//   - RequestTimeout: per-request timeout for backend calls.
//   - TokenSecret: when non-empty, selects the HMAC-signed token codec.
//   - TokenTTL: validity window of signed tokens.
//   - LogLevel: minimum level for structured logging.
type Config struct {
	BaseURL        string
	ClientDBPath   string
	RequestTimeout time.Duration
	TokenSecret    string
	TokenTTL       time.Duration
	LogLevel       slog.Level
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3001"
	c.ClientDBPath = "coinkeeper.db"
	c.RequestTimeout = 10 * time.Second
	c.TokenSecret = ""
	c.TokenTTL = 24 * time.Hour
	c.LogLevel = slog.LevelInfo
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
