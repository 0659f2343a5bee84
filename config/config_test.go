package config

import (
	"testing"
	"time"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("TASKS_DB_PATH", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("TOKEN_TTL_MINUTES", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_SECRET_KEY", "")

	cfg := Load()

	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for development profile")
	}
	if cfg.DBPath != "tasks.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "tasks.db")
	}
	if cfg.AllowedOrigins != "" {
		t.Errorf("AllowedOrigins = %q, want empty (allow all)", cfg.AllowedOrigins)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("TokenTTL = %v, want %v", cfg.TokenTTL, 15*time.Minute)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":3000")
	}
}

func TestLoad_ProductionProfile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TASKS_DB_PATH", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://tasks.example.com")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false for production profile")
	}
	if cfg.DBPath != "/var/lib/task-tracker/tasks.db" {
		t.Errorf("DBPath = %q, want production default", cfg.DBPath)
	}
	if cfg.AllowedOrigins != "https://tasks.example.com" {
		t.Errorf("AllowedOrigins = %q, want configured origin", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("TASKS_DB_PATH", "/tmp/custom.db")
	t.Setenv("TOKEN_TTL_MINUTES", "60")
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	cfg := Load()

	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q, want override", cfg.DBPath)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q, want override", cfg.JWTSecret)
	}
}

func TestLoad_UnknownEnvFallsBackToDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("TASKS_DB_PATH", "")

	cfg := Load()

	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want fallback to %q", cfg.Env, EnvDevelopment)
	}
}

func TestLoad_InvalidTTLIgnored(t *testing.T) {
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")

	cfg := Load()

	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("TokenTTL = %v, want default for invalid input", cfg.TokenTTL)
	}
}
