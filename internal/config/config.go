// Package config reads application settings from the environment.
package config

import (
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds everything the app needs at startup. All fields come from
// JOT_* environment variables with sensible defaults for local use.
type Config struct {
	AuthDBPath  string
	NotesDBPath string
	LogLevel    string
	LogFile     string
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		AuthDBPath:  envOr("JOT_AUTH_DB_PATH", "auth.db"),
		NotesDBPath: envOr("JOT_NOTES_DB_PATH", "notes.db"),
		LogLevel:    envOr("JOT_LOG_LEVEL", "info"),
		LogFile:     envOr("JOT_LOG_FILE", "jot.log"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AuthDBPath, validation.Required),
		validation.Field(&c.NotesDBPath, validation.Required),
		validation.Field(&c.LogFile, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
