// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database clients.
const (
	ClientSQLite   = "sqlite"
	ClientPostgres = "pg"
)

const minProductionSecret = 16

// Config holds everything the server needs at startup. It is loaded once and
// passed by reference; nothing reads the environment after that.
type Config struct {
	Env            string
	DatabaseClient string
	DatabaseURL    string
	Port           int
	AuthSecret     string
	TokenTTL       time.Duration
}

// Load reads an optional .env file (.env.test when APP_ENV=test) and then the
// environment. Real environment variables win over the file.
func Load() (*Config, error) {
	envFile := ".env"
	if os.Getenv("APP_ENV") == "test" {
		envFile = ".env.test"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from the given lookup function.
// Every problem is reported, not just the first.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	cfg := &Config{
		Env:            get("APP_ENV", "development"),
		DatabaseClient: get("DATABASE_CLIENT", ClientSQLite),
		DatabaseURL:    get("DATABASE_URL", "./data/daily-diet.db"),
		AuthSecret:     getenv("AUTH_SECRET"),
	}

	var problems []string

	switch cfg.Env {
	case "development", "test", "production":
	default:
		problems = append(problems, fmt.Sprintf("APP_ENV must be one of development, test, production (got %q)", cfg.Env))
	}

	switch cfg.DatabaseClient {
	case ClientSQLite, ClientPostgres:
	default:
		problems = append(problems, fmt.Sprintf("DATABASE_CLIENT must be sqlite or pg (got %q)", cfg.DatabaseClient))
	}

	port, err := strconv.Atoi(get("PORT", "3333"))
	if err != nil || port <= 0 || port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be a valid port number (got %q)", getenv("PORT")))
	}
	cfg.Port = port

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "168h"))
	if err != nil || ttl <= 0 {
		problems = append(problems, fmt.Sprintf("TOKEN_TTL must be a positive duration (got %q)", getenv("TOKEN_TTL")))
	}
	cfg.TokenTTL = ttl

	switch {
	case cfg.AuthSecret == "":
		problems = append(problems, "AUTH_SECRET is required")
	case cfg.Env == "production" && len(cfg.AuthSecret) < minProductionSecret:
		problems = append(problems, fmt.Sprintf("AUTH_SECRET must be at least %d bytes in production", minProductionSecret))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid environment variables: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
