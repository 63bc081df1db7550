package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST server (default from Config)
//	-d string   path of the local client database (default from Config)
//	-t int      per-request timeout in seconds (default from Config)
//	-s string   token signing secret (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend REST server")
	fs.StringVar(&cfg.ClientDBPath, "d", cfg.ClientDBPath, "path of the local client database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.TokenSecret, "s", cfg.TokenSecret, "token signing secret (empty for the mock token scheme)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
