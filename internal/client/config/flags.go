package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-l string   log level
//	-f string   log format
//	-y          assume yes on confirmations
//
// Only these flags are parsed; see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-l", "-f"}, "-y")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the user directory backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")
	fs.BoolVar(&cfg.AssumeYes, "y", cfg.AssumeYes, "answer yes to confirmations")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if explicitlySet(fs, "t") {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
}

func explicitlySet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
