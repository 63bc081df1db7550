package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// integer seconds; values are copied into the runtime Config (which uses
// time.Duration). Omitted fields keep their earlier (default) values.
type JsonConfig struct {
	BaseURL               *string `json:"base_url"`
	ClientDBPath          *string `json:"client_db_path"`
	RequestTimeoutSeconds *int    `json:"request_timeout_seconds"`
	TokenSecret           *string `json:"token_secret"`
	TokenTTLSeconds       *int    `json:"token_ttl_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies present fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.ClientDBPath != nil {
		cfg.ClientDBPath = *jc.ClientDBPath
	}
	if jc.RequestTimeoutSeconds != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.TokenSecret != nil {
		cfg.TokenSecret = *jc.TokenSecret
	}
	if jc.TokenTTLSeconds != nil {
		cfg.TokenTTL = time.Duration(*jc.TokenTTLSeconds) * time.Second
	}
}
