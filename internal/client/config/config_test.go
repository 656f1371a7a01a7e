package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5050", c.ServerURL)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.AssumeYes)
}

func TestLoad_DefaultsWithoutSources(t *testing.T) {
	cfg := load(nil, noEnv)

	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:5050", cfg.ServerURL)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"server_url":"http://file:1","log_level":"warn","request_timeout":"7s"}`)
	env := map[string]string{
		"USERDIR_SERVER_URL": "http://env:2",
		"USERDIR_LOG_FORMAT": "json",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := load([]string{"-c", path, "-a", "http://flag:3"}, lookup)

	assert.Equal(t, "http://flag:3", cfg.ServerURL, "flag beats env and file")
	assert.Equal(t, "json", cfg.LogFormat, "env beats default")
	assert.Equal(t, "warn", cfg.LogLevel, "file beats default")
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout, "unset flag keeps file value")
}
