package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerURL: base URL of the REST backend.
//   - RequestTimeout: upper bound for a single request; 0 means none.
//   - LogLevel, LogFormat: logger settings (see logging.BuildZap).
//   - AssumeYes: skip delete confirmations.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	AssumeYes      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = common.DefaultServerURL
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.AssumeYes = false
}

// LoadConfig constructs a Config from defaults, the optional config file, the
// environment and the process arguments, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg, lookup)
	parseFlags(cfg, args)
	return cfg
}
