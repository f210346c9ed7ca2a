package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	MimePolicyStrict     = "strict"
	MimePolicyPermissive = "permissive"
)

var (
	ErrMissingAPIKey   = errors.New("missing required env GEMINI_API_KEY")
	ErrMissingBotToken = errors.New("missing required env TELEGRAM_BOT_TOKEN")
)

type Config struct {
	Port    string
	GinMode string

	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	MimePolicy      string
	BodyLimitMB     int64
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CORSOrigin      string

	LogLevel  string
	LogFormat string

	TelegramBotToken string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("MIME_POLICY", MimePolicyStrict)
	v.SetDefault("BODY_LIMIT_MB", 50)
	v.SetDefault("REQUEST_TIMEOUT", 120*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads an optional .env file, then the process environment.
// The returned Config is validated for the HTTP server; the bot binary
// additionally calls ValidateBot.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf(".env not loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Port:    strings.TrimSpace(v.GetString("PORT")),
		GinMode: strings.TrimSpace(v.GetString("GIN_MODE")),

		Provider:      strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		GeminiAPIKey:  strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:   strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		GeminiBaseURL: strings.TrimSpace(v.GetString("GEMINI_BASE_URL")),

		MimePolicy:      strings.ToLower(strings.TrimSpace(v.GetString("MIME_POLICY"))),
		BodyLimitMB:     v.GetInt64("BODY_LIMIT_MB"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		CORSOrigin:      v.GetString("CORS_ORIGIN"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),

		TelegramBotToken: strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
	}
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.GeminiModel == "" {
		return errors.New("GEMINI_MODEL is empty")
	}
	switch c.MimePolicy {
	case MimePolicyStrict, MimePolicyPermissive:
	default:
		return fmt.Errorf("unknown MIME_POLICY %q; use %q or %q", c.MimePolicy, MimePolicyStrict, MimePolicyPermissive)
	}
	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB must be positive, got %d", c.BodyLimitMB)
	}
	if c.Port == "" {
		return errors.New("PORT is empty")
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("unknown GIN_MODE %q", c.GinMode)
	}
	return nil
}

func (c *Config) ValidateBot() error {
	if c.TelegramBotToken == "" {
		return ErrMissingBotToken
	}
	return nil
}

func (c *Config) BodyLimitBytes() int64 {
	return c.BodyLimitMB << 20
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c *Config) SetupLogger() {
	if c.LogFormat == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(new(logrus.JSONFormatter))
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
