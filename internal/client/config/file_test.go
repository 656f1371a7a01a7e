package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	base := Config{ServerURL: "http://defaults:1", LogLevel: "info", LogFormat: "text"}

	tests := []struct {
		name    string
		file    string
		content string
		want    Config
	}{
		{
			name:    "json full",
			file:    "cfg.json",
			content: `{"server_url":"http://api:9000","request_timeout":"10s","log_level":"debug","log_format":"json","assume_yes":true}`,
			want:    Config{ServerURL: "http://api:9000", RequestTimeout: 10 * time.Second, LogLevel: "debug", LogFormat: "json", AssumeYes: true},
		},
		{
			name:    "json partial keeps earlier values",
			file:    "cfg.json",
			content: `{"request_timeout":2000000000}`,
			want:    Config{ServerURL: "http://defaults:1", RequestTimeout: 2 * time.Second, LogLevel: "info", LogFormat: "text"},
		},
		{
			name:    "yaml",
			file:    "cfg.yaml",
			content: "server_url: http://yaml:8080\nrequest_timeout: 3s\nassume_yes: true\n",
			want:    Config{ServerURL: "http://yaml:8080", RequestTimeout: 3 * time.Second, LogLevel: "info", LogFormat: "text", AssumeYes: true},
		},
		{
			name:    "yml extension",
			file:    "cfg.YML",
			content: "log_level: error\n",
			want:    Config{ServerURL: "http://defaults:1", LogLevel: "error", LogFormat: "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.content)
			cfg := base

			parseFile(&cfg, []string{"-config", path})

			assert.Empty(t, cmp.Diff(tt.want, cfg))
		})
	}
}

func Test_parseFile_NoFlagNoChange(t *testing.T) {
	cfg := Config{ServerURL: "http://keep:1"}
	parseFile(&cfg, []string{"-a", "http://other"})
	assert.Equal(t, "http://keep:1", cfg.ServerURL)
}

func Test_parseFile_Panics(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{ this is not valid json`)
		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg, []string{"-c", path}) })
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeTemp(t, "bad.yaml", "request_timeout: soon\n")
		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg, []string{"-c", path}) })
	})
}
