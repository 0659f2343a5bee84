// Package config loads the service configuration from the environment.
// The resulting Config value is built once in main and handed to each
// module, so no module reaches for ambient process state on its own.
package config

import (
	"os"
	"strconv"
	"time"
)

// Deployment profiles. The profile only changes which cross-origin
// callers are allowed and where the SQLite file lives.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	defaultHTTPAddr   = ":3000"
	defaultDevDBPath  = "tasks.db"
	defaultProdDBPath = "/var/lib/task-tracker/tasks.db"
	defaultTokenTTL   = 15 * time.Minute
	defaultJWTIssuer  = "task-tracker"
	defaultDevSecret  = "dev-secret-change-in-production"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Env      string
	HTTPAddr string

	// DBPath is the SQLite file backing both the credential and task stores.
	DBPath string

	// AllowedOrigins is a comma-separated CORS allow list. Empty means
	// any origin (development profile).
	AllowedOrigins string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration
}

// Load reads configuration from environment variables, applying
// profile-dependent defaults.
func Load() Config {
	env := getenv("APP_ENV", EnvDevelopment)
	if env != EnvProduction {
		env = EnvDevelopment
	}

	dbPath := os.Getenv("TASKS_DB_PATH")
	if dbPath == "" {
		if env == EnvProduction {
			dbPath = defaultProdDBPath
		} else {
			dbPath = defaultDevDBPath
		}
	}

	origins := ""
	if env == EnvProduction {
		origins = os.Getenv("CORS_ALLOWED_ORIGINS")
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	return Config{
		Env:            env,
		HTTPAddr:       getenv("HTTP_ADDR", defaultHTTPAddr),
		DBPath:         dbPath,
		AllowedOrigins: origins,
		JWTSecret:      getenv("JWT_SECRET_KEY", defaultDevSecret),
		JWTIssuer:      getenv("JWT_ISSUER", defaultJWTIssuer),
		TokenTTL:       ttl,
	}
}

// IsProduction reports whether the production profile is active.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
