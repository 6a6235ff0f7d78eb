package config

import (
	"flag"
	"os"
	"time"

	"github.com/plantcare-app/plantcare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the hosted backend (default from Config)
//	-k string   project API key
//	-d string   data directory for local state
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "base URL of the hosted backend")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "project API key")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for local state")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
