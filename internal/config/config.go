// Package config loads the board's settings from the environment.
//
// Variables carry the BOARD_ prefix and name a section and a key, e.g.
// BOARD_DATABASE_DSN maps to Config.Database.DSN. A .env file in the
// working directory is read first; variables already set take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BOARD_"

// Database drivers.
const (
	DriverSQLite       = "sqlite"
	DriverGormSQLite   = "gorm-sqlite"
	DriverGormPostgres = "gorm-postgres"
)

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config is the root configuration object.
type Config struct {
	Database DatabaseSettings `koanf:"database"`
	Server   ServerSettings   `koanf:"server"`
	Log      LoggerSettings   `koanf:"log"`
	Security SecuritySettings `koanf:"security"`
}

// DatabaseSettings selects the persistence backend.
type DatabaseSettings struct {
	Driver string `koanf:"driver" validate:"required,oneof=sqlite gorm-sqlite gorm-postgres"`
	DSN    string `koanf:"dsn" validate:"required"`
}

type ServerSettings struct {
	Port string `koanf:"port" validate:"required,numeric"`
}

// LoggerSettings configures slog output. When File is set, JSON logs are
// written there and rotated by size.
type LoggerSettings struct {
	Level      string `koanf:"level" validate:"required,oneof=debug info warn error"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size" validate:"min=1,max=100"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=10"`
	MaxAge     int    `koanf:"max_age" validate:"min=1,max=365"`
}

type SecuritySettings struct {
	BcryptCost int `koanf:"bcrypt_cost" validate:"min=4,max=14"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Database: DatabaseSettings{Driver: DriverSQLite, DSN: "board.db"},
		Server:   ServerSettings{Port: "8080"},
		Log: LoggerSettings{
			Level:      LogLevelInfo,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Security: SecuritySettings{BcryptCost: 12},
	}
}

// Load reads .env (if present) and the environment on top of Default and
// validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv is Load without the .env file.
func FromEnv() (*Config, error) {
	k := koanf.New(".")

	// BOARD_SECURITY_BCRYPT_COST -> security.bcrypt_cost
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	return nil
}
