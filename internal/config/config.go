package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the configuration shared by the grader and web commands.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum level written by the logger
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// HTTP contains the page server settings
	HTTP struct {
		// Host is the interface the page server binds to; empty means all interfaces
		Host string `env:"HTTP_HOST" env-default:"" yaml:"host"`
		// Port is the TCP port the page server listens on
		Port int `env:"PORT" env-default:"8080" yaml:"port"`
		// HTMLFile is the file served at the root path, re-read on every request
		HTMLFile string `env:"HTML_FILE" env-default:"index.html" yaml:"htmlFile"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// AdminAddr is the address of the metrics and pprof listener; empty disables it
		AdminAddr string `env:"ADMIN_ADDR" env-default:"" yaml:"adminAddr"`
		// MetricsPath defines the URL path where metrics are exposed on the admin listener
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Fetch contains settings for retrieving remote HTML sources
	Fetch struct {
		// Timeout bounds a single fetch; 0 waits indefinitely
		Timeout time.Duration `env:"FETCH_TIMEOUT" env-default:"0s" yaml:"timeout"`
		// UserAgent is sent with every fetch
		UserAgent string `env:"FETCH_USER_AGENT" env-default:"grader/1.0" yaml:"userAgent"`
		// MaxBodyBytes caps the size of a fetched page; 0 means unlimited
		MaxBodyBytes int64 `env:"FETCH_MAX_BODY_BYTES" env-default:"0" yaml:"maxBodyBytes"`
	} `yaml:"fetch"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load returns the configuration read from the yaml (or toml/json/env) file at
// configPath overridden by environment variables. An empty configPath reads
// environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.HTTP.Port)
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("invalid fetch timeout %s", c.Fetch.Timeout)
	}

	return nil
}

// ListenAddr returns the host:port the page server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}
