package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"summarygateway/internal/summarizer"
)

type Config struct {
	Addr string `env:"ADDR" envDefault:":8500"`

	BackendURL         string          `env:"VLLM_SERVER_URL,required,notEmpty"`
	BackendMode        summarizer.Mode `env:"BACKEND_MODE"                      envDefault:"chat"`
	BackendModel       string          `env:"BACKEND_MODEL"                     envDefault:"google/gemma-3-4b-it"`
	BackendTemperature float64         `env:"BACKEND_TEMPERATURE"               envDefault:"0.2"`
	BackendMaxTokens   int64           `env:"BACKEND_MAX_TOKENS"                envDefault:"0"`
	BackendTimeout     time.Duration   `env:"BACKEND_TIMEOUT"                   envDefault:"60s"`

	WarmupEnabled  bool          `env:"WARMUP_ENABLED"  envDefault:"true"`
	WarmupInterval time.Duration `env:"WARMUP_INTERVAL" envDefault:"300s"`
	WarmupTimeout  time.Duration `env:"WARMUP_TIMEOUT"  envDefault:"60s"`

	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"  envDefault:"http://localhost:3000" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment once. Nothing else in
// the service reads environment variables.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Backend() summarizer.BackendConfig {
	return summarizer.BackendConfig{
		URL:         c.BackendURL,
		Model:       c.BackendModel,
		Temperature: c.BackendTemperature,
		MaxTokens:   c.BackendMaxTokens,
		Timeout:     c.BackendTimeout,
	}
}

func (c Config) validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("parse VLLM_SERVER_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("VLLM_SERVER_URL must be http or https (scheme = %q)", u.Scheme)
	}

	var errs []error
	if c.BackendTimeout <= 0 {
		errs = append(errs, errors.New("BACKEND_TIMEOUT must be positive"))
	}
	if c.BackendMaxTokens < 0 {
		errs = append(errs, errors.New("BACKEND_MAX_TOKENS must not be negative"))
	}
	if c.WarmupEnabled && c.WarmupInterval <= 0 {
		errs = append(errs, errors.New("WARMUP_INTERVAL must be positive"))
	}
	if c.WarmupEnabled && c.WarmupTimeout <= 0 {
		errs = append(errs, errors.New("WARMUP_TIMEOUT must be positive"))
	}
	if c.WarmupEnabled && c.WarmupTimeout > c.WarmupInterval {
		errs = append(errs, fmt.Errorf(
			"WARMUP_TIMEOUT must not exceed WARMUP_INTERVAL (timeout = %s, interval = %s)",
			c.WarmupTimeout, c.WarmupInterval))
	}

	return errors.Join(errs...)
}
