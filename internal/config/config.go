// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/database"
)

// Config is the full runtime configuration for both binaries.
type Config struct {
	HTTP     HTTP
	Database database.Config
	Log      Log
	Uploads  Uploads
	Guests   Guests
}

// HTTP holds listener settings for the API server.
type HTTP struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Log selects logger level and output format.
type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Uploads configures where expense receipts are stored.
type Uploads struct {
	ExpenseDir string `env:"EXPENSE_UPLOAD_DIR" envDefault:"uploads/expenses"`
	MaxBytes   int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}

// Guests controls how guest contact details are stored.
type Guests struct {
	PhoneRegion string `env:"PHONE_REGION" envDefault:"US"`
}

// Load reads an optional .env file, then parses the environment into Config.
// Variables already present in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.HTTP.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got: %s", c.HTTP.Port))
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.IdleTimeout <= 0 {
		problems = append(problems, "HTTP timeouts must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("HTTP_SHUTDOWN_TIMEOUT must be positive, got: %s", c.HTTP.ShutdownTimeout))
	}
	if c.Database.Host == "" {
		problems = append(problems, "DB_HOST cannot be empty")
	}
	if c.Database.Name == "" {
		problems = append(problems, "DB_NAME cannot be empty")
	}
	if c.Database.MaxConns < 1 {
		problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be at least 1, got: %d", c.Database.MaxConns))
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		problems = append(problems, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS (%d), got: %d", c.Database.MaxConns, c.Database.MinConns))
	}
	if c.Database.ConnectAttempts < 1 {
		problems = append(problems, fmt.Sprintf("DB_CONNECT_ATTEMPTS must be at least 1, got: %d", c.Database.ConnectAttempts))
	}
	if c.Uploads.ExpenseDir == "" {
		problems = append(problems, "EXPENSE_UPLOAD_DIR cannot be empty")
	}
	if c.Uploads.MaxBytes <= 0 {
		problems = append(problems, fmt.Sprintf("MAX_UPLOAD_BYTES must be positive, got: %d", c.Uploads.MaxBytes))
	}
	if len(c.Guests.PhoneRegion) != 2 {
		problems = append(problems, fmt.Sprintf("PHONE_REGION must be a two-letter region code, got: %q", c.Guests.PhoneRegion))
	}

	if len(problems) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("configuration validation failed:")
	for i, p := range problems {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, p)
	}
	return errors.New(b.String())
}
