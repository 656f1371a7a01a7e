package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/flagx"
	"github.com/dmitrijs2005/userdir/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used only for decoding config files. Pointer fields
// distinguish "absent" from "zero".
type FileConfig struct {
	ServerURL      *string         `json:"server_url" yaml:"server_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
	AssumeYes      *bool           `json:"assume_yes" yaml:"assume_yes"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. Read and
// decode errors panic; a bad config file is a startup failure.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.AssumeYes != nil {
		cfg.AssumeYes = *fc.AssumeYes
	}
}
