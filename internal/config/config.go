package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Log   LogConfig
}

type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"Blog API"`
	Environment string `envconfig:"APP_ENV" default:"development"` // development, test, staging, production
	Port        string `envconfig:"APP_PORT" default:"8080"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`

	ReadTimeout     time.Duration `envconfig:"APP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
}

// MongoConfig takes either a full MONGODB_URI or the user/password/host
// triple of an Atlas-style SRV record.
type MongoConfig struct {
	URI      string `envconfig:"MONGODB_URI"`
	User     string `envconfig:"MONGODB_USER"`
	Password string `envconfig:"MONGODB_PASSWORD"`
	Host     string `envconfig:"MONGODB_HOST"`
	Database string `envconfig:"MONGODB_DATABASE" default:"blogData"`

	MaxPoolSize    uint64        `envconfig:"MONGODB_MAX_POOL_SIZE" default:"100"`
	MinPoolSize    uint64        `envconfig:"MONGODB_MIN_POOL_SIZE" default:"0"`
	MaxRetries     int           `envconfig:"MONGODB_MAX_RETRIES" default:"5"`
	RetryDelay     time.Duration `envconfig:"MONGODB_RETRY_DELAY" default:"1s"`
	ConnectTimeout time.Duration `envconfig:"MONGODB_CONNECT_TIMEOUT" default:"10s"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// ConnectionURI returns MONGODB_URI when set, otherwise composes an SRV
// uri from the credentials. It is empty when neither form is complete.
func (m MongoConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	if m.User == "" || m.Password == "" || m.Host == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(m.User, m.Password),
		Host:     m.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// IsDevelopment reports whether error stacks may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config

	// Sections are processed without a prefix so that each field reads
	// exactly the variable named in its tag.
	if err := envconfig.Process("", &cfg.App); err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Mongo); err != nil {
		return nil, fmt.Errorf("failed to load mongo config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "test", "staging", "production":
	default:
		return fmt.Errorf("APP_ENV %q is not one of development, test, staging, production", c.App.Environment)
	}

	if c.Mongo.ConnectionURI() == "" {
		return fmt.Errorf("MONGODB_URI or MONGODB_USER, MONGODB_PASSWORD and MONGODB_HOST must be set")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGODB_DATABASE must not be empty")
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}
