// Package config loads runtime configuration for the CoinKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST server
//	-d string   path of the local client database
//	-t int      per-request timeout (seconds)
//	-s string   token signing secret; empty selects the deterministic
//	            mock-token scheme the backend contract expects
//
// # JSON schema
//
//	{
//	  "base_url": "http://localhost:3001",
//	  "client_db_path": "coinkeeper.db",
//	  "request_timeout_seconds": 10,
//	  "token_secret": "",
//	  "token_ttl_seconds": 86400
//	}
//
// Primary API
//
//   - type Config                     — holds the settings listed above
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
