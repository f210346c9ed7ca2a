package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, MimePolicyStrict, cfg.MimePolicy)
	assert.Equal(t, int64(50), cfg.BodyLimitMB)
	assert.Equal(t, int64(50<<20), cfg.BodyLimitBytes())
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", " key ")
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_PROVIDER", "GenerativeAI")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("MIME_POLICY", "permissive")
	t.Setenv("BODY_LIMIT_MB", "10")
	t.Setenv("REQUEST_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "generativeai", cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, MimePolicyPermissive, cfg.MimePolicy)
	assert.Equal(t, int64(10), cfg.BodyLimitMB)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		v := viper.New()
		setDefaults(v)
		v.Set("GEMINI_API_KEY", "k")
		return FromViper(v)
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "unknown mime policy", mutate: func(c *Config) { c.MimePolicy = "lenient" }, wantErr: true},
		{name: "zero body limit", mutate: func(c *Config) { c.BodyLimitMB = 0 }, wantErr: true},
		{name: "empty model", mutate: func(c *Config) { c.GeminiModel = "" }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "unknown gin mode", mutate: func(c *Config) { c.GinMode = "prod" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBot(t *testing.T) {
	c := &Config{}
	assert.ErrorIs(t, c.ValidateBot(), ErrMissingBotToken)

	c.TelegramBotToken = "123:abc"
	assert.NoError(t, c.ValidateBot())
}
