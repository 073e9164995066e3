// Package config loads invokectl settings from .env files and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	invoke "github.com/invokego/invoke-go"
)

// DefaultFiles are read, in order, when Load is called without arguments.
var DefaultFiles = []string{".env", ".env.local"}

type Config struct {
	AppEnv      string
	DatabaseURL string
	InvokeURL   string
	LogLevel    string
}

// Load reads the given env files (missing files are skipped) and then the environment.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		AppEnv:      getenv("APP_ENV", "production"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		InvokeURL:   getenv(invoke.BaseURLEnv, invoke.DefaultBaseURL),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}, nil
}

// Development reports whether APP_ENV is "development".
func (c Config) Development() bool {
	return c.AppEnv == "development"
}

// RequireDatabase fails when DATABASE_URL is unset.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
