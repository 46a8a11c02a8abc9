// Package config loads application settings from environment variables with
// an optional YAML file underneath.
package config

import (
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration
type Config struct {
	// Environment selects logger behavior (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the address and port the HTTP server listens on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out response writes
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"1m" yaml:"writeTimeout"`
		// IdleTimeout is the keep-alive idle limit
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MetricsPath is where Prometheus metrics are served
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// DataDir is the directory holding the content JSON files
	DataDir string `env:"DATA_DIR" env-default:"data" yaml:"dataDir"`

	// StaticDir is the directory served under /static
	StaticDir string `env:"STATIC_DIR" env-default:"static" yaml:"staticDir"`

	Newsletter struct {
		// ResetDelay is how long the submitted flag stays raised after a signup
		ResetDelay time.Duration `env:"NEWSLETTER_RESET_DELAY" env-default:"4s" yaml:"resetDelay"`
	} `yaml:"newsletter"`

	// GracefulShutdownTimeout bounds the wait for in-flight requests on shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

// Load fills a Config from the YAML file at configPath plus the environment.
// A missing file is not an error; the environment alone is enough.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, errors.Wrap(err, "could not read config")
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not read environment")
	}

	return &cfg, nil
}
