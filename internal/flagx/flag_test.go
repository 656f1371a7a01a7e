package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valueFlags []string
		boolFlags  []string
		want       []string
	}{
		{
			name:       "short flag with separate value",
			args:       []string{"-c", "conf.json", "-a", "http://localhost"},
			valueFlags: []string{"-c", "--config"},
			want:       []string{"-c", "conf.json"},
		},
		{
			name:       "long flag with equals",
			args:       []string{"--config=alt.yaml", "-a", "http://localhost"},
			valueFlags: []string{"-c", "--config"},
			want:       []string{"--config=alt.yaml"},
		},
		{
			name:       "unknown flags and positionals ignored",
			args:       []string{"-x", "1", "--y=2", "positional"},
			valueFlags: []string{"-c"},
			want:       []string{},
		},
		{
			name:       "flag followed by another flag keeps no value",
			args:       []string{"-c", "-notvalue"},
			valueFlags: []string{"-c"},
			want:       []string{"-c"},
		},
		{
			name:       "bool flag does not swallow the next argument",
			args:       []string{"-y", "conf.json", "-t", "5"},
			valueFlags: []string{"-t"},
			boolFlags:  []string{"-y"},
			want:       []string{"-y", "-t", "5"},
		},
		{
			name:       "bool flag with explicit value",
			args:       []string{"-y=false"},
			boolFlags:  []string{"-y"},
			want:       []string{"-y=false"},
		},
		{
			name:       "repeated flag preserved in order",
			args:       []string{"-a", "one", "-a", "two"},
			valueFlags: []string{"-a"},
			want:       []string{"-a", "one", "-a", "two"},
		},
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.valueFlags, tt.boolFlags...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	t.Run("short -c with value", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigFileFlag([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config with value", func(t *testing.T) {
		assert.Equal(t, "/path/long.yaml", ConfigFileFlag([]string{"-a", "http://x", "-config", "/path/long.yaml"}))
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		assert.Empty(t, ConfigFileFlag([]string{"-x", "1", "-y"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "/path/2.json", ConfigFileFlag([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	})
}
