// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"
)

// TokenTTL is how long issued tokens, auth cookies and server-side
// sessions stay valid. Tokens are not renewable; a new login issues a
// fresh one.
const TokenTTL = 24 * time.Hour

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is unset.
// There is deliberately no fallback secret: a process without one must
// not start.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config carries every setting the binaries read at startup.
type Config struct {
	Port string

	// JWTSecret signs and verifies auth tokens.
	JWTSecret string

	DB    DB
	Redis Redis

	// PublicDir is the directory the static site pages are served from.
	PublicDir string

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool
}

// DB holds the relational store connection settings.
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Redis holds the session store connection settings.
type Redis struct {
	Addr     string
	Password string
}

// Load reads the configuration from the environment. It fails when
// JWT_SECRET is missing so a misconfigured deployment dies at startup
// instead of signing tokens with a known value.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		Port:      getenv("PORT", "3000"),
		JWTSecret: secret,
		DB: DB{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "ghanalingo"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Redis: Redis{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		PublicDir:     getenv("PUBLIC_DIR", "public"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
