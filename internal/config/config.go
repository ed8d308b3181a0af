// Package config reads service configuration from the environment,
// optionally primed from a .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the process configuration.
type Config struct {
	Port            string
	DBDriver        string // sqlite or postgres
	DBPath          string // SQLite file
	DatabaseURL     string // PostgreSQL DSN
	SeedPath        string
	SettingsBackend string // sqlite, postgres, redis or memory
	RedisURL        string
	RemoteAPIURL    string // when set, records are loaded from the remote API
	RemoteAPIKey    string
	LogLevel        string
}

// LoadDotEnv loads .env into the environment. It reports whether a file
// was found; a missing file is not an error.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	driver := Get("DB_DRIVER", "sqlite")
	return Config{
		Port:            Get("PORT", "8080"),
		DBDriver:        driver,
		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SeedPath:        os.Getenv("SEED_PATH"),
		SettingsBackend: Get("SETTINGS_BACKEND", driver),
		RedisURL:        Get("REDIS_URL", "redis://localhost:6379/0"),
		RemoteAPIURL:    os.Getenv("REMOTE_API_URL"),
		RemoteAPIKey:    os.Getenv("REMOTE_API_KEY"),
		LogLevel:        Get("LOG_LEVEL", "info"),
	}
}
