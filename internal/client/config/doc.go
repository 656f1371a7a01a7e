// Package config loads runtime configuration for the user-directory CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend, e.g. http://localhost:5050
//	-t int      per-request timeout in seconds, 0 disables it
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-y          answer yes to every confirmation
//
// Environment
//
//	USERDIR_SERVER_URL, USERDIR_REQUEST_TIMEOUT ("5s"), USERDIR_LOG_LEVEL,
//	USERDIR_LOG_FORMAT, USERDIR_ASSUME_YES ("true"/"false")
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Absent keys keep the earlier value.
//
//	{
//	  "server_url": "http://localhost:5050",
//	  "request_timeout": "5s",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "assume_yes": false
//	}
package config
