// Package config handles runtime configuration for the server:
// defaults, environment overlay and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/scholaredit/scholaredit/internal/auth"
)

// ErrNoJWTSecret indicates that the JWT signing secret is not configured.
// The server refuses to start without it.
var ErrNoJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds runtime settings for the ScholarEdit server.
type Config struct {
	Address      string        // bind address for the HTTP server
	DatabasePath string        // path to the SQLite database file
	JWTSecret    string        // HMAC secret for signing tokens (env-only)
	TokenTTL     time.Duration // bearer token lifetime
	LogLevel     string        // debug | info | warn | error
	ShowVersion  bool          // print version and exit
}

// loadDefaults populates Config with development defaults.
// JWTSecret has no default on purpose: it must come from the environment.
func (c *Config) loadDefaults() {
	c.Address = ":3000"
	c.DatabasePath = "scholaredit.db"
	c.TokenTTL = auth.DefaultTokenTTL
	c.LogLevel = "info"
}

// loadEnv накладывает значения из переменных окружения
func (c *Config) loadEnv() error {
	if v := os.Getenv("ADDRESS"); v != "" {
		c.Address = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		c.TokenTTL = ttl
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// parseFlags накладывает значения из флагов командной строки.
// Секрет подписи флагом не передается: аргументы процесса видны в ps.
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&c.Address, "a", c.Address, "address and port to run server")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to SQLite database file")
	fs.DurationVar(&c.TokenTTL, "t", c.TokenTTL, "bearer token lifetime")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.ShowVersion, "version", false, "show version information")

	return fs.Parse(args)
}

// Load builds a Config by applying defaults, then environment variables,
// then command-line flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.loadDefaults()
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on configuration the server must not run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrNoJWTSecret
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// SlogLevel converts the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
