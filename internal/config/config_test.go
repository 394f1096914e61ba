package config

import (
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "https://www.moedict.tw/a", cfg.Moedict.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Moedict.Timeout)
	assert.Equal(t, "https://words.hk/faiman/analysis/charlist.json", cfg.Jyutping.CharListURL)
	assert.Equal(t, 30*time.Second, cfg.Jyutping.Timeout)
	assert.Equal(t, "meowdict > ", cfg.Console.Prompt)
	assert.False(t, cfg.Console.NoColor)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MOEDICT_BASE_URL", "http://localhost:8080/a")
	t.Setenv("MOEDICT_TIMEOUT", "3s")
	t.Setenv("CONSOLE_NO_COLOR", "true")

	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "http://localhost:8080/a", cfg.Moedict.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Moedict.Timeout)
	assert.True(t, cfg.Console.NoColor)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		var cfg Config
		require.NoError(t, cleanenv.ReadEnv(&cfg))
		return &cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.Moedict.BaseURL = "" },
			wantErr: "moedict.base_url",
		},
		{
			name:    "non-http base url",
			mutate:  func(c *Config) { c.Moedict.BaseURL = "ftp://example.com" },
			wantErr: "moedict.base_url",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Moedict.Timeout = 0 },
			wantErr: "moedict.timeout",
		},
		{
			name:    "negative jyutping timeout",
			mutate:  func(c *Config) { c.Jyutping.Timeout = -time.Second },
			wantErr: "jyutping.timeout",
		},
		{
			name:    "empty prompt",
			mutate:  func(c *Config) { c.Console.Prompt = "" },
			wantErr: "console.prompt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
