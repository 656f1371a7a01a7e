package config

import (
	"fmt"
	"strconv"
	"time"
)

// parseEnv overlays cfg with USERDIR_* variables. Malformed values panic.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("USERDIR_SERVER_URL"); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := lookup("USERDIR_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("USERDIR_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("USERDIR_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("USERDIR_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup("USERDIR_ASSUME_YES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("USERDIR_ASSUME_YES: %w", err))
		}
		cfg.AssumeYes = b
	}
}
