package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// clearConfigEnv unsets every env var Load reads, so host environment
// leakage cannot flip test outcomes. t.Setenv registers the restore;
// the follow-up Unsetenv makes the var truly absent for LookupEnv.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "PORT",
		"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DATABASE_URL",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME",
		"REDIS_URL", "JWT_SECRET", "TOKEN_TTL", "MIGRATIONS_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Errorf("expected default token ttl 168h, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("expected a dev fallback secret")
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development env, got %s", cfg.Env)
	}
	if cfg.MigrationsPath != "./db/migrations" {
		t.Errorf("unexpected migrations path %s", cfg.MigrationsPath)
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for production without JWT_SECRET")
	}
}

func TestLoad_ProductionRejectsShortSecret(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for short JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "32") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("expected production mode")
	}
}

func TestLoad_TokenTTLOverride(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TOKEN_TTL", "24h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h, got %v", cfg.Auth.TokenTTL)
	}
}

func TestDSN_FromFields(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		User:     "geoguide",
		Password: "p@ss/word",
		Name:     "geoguide",
	}

	dsn := db.DSN()
	if !strings.Contains(dsn, "tcp(db.internal:3306)") {
		t.Errorf("expected default port appended, got %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("expected parseTime=true, got %s", dsn)
	}
}

func TestDSN_OverrideWins(t *testing.T) {
	db := DatabaseConfig{
		Host:        "ignored",
		dsnOverride: "user:pass@tcp(elsewhere:3306)/other",
	}
	if dsn := db.DSN(); dsn != "user:pass@tcp(elsewhere:3306)/other" {
		t.Errorf("expected override DSN, got %s", dsn)
	}
}

func TestEnsurePort(t *testing.T) {
	if got := ensurePort("localhost", "3306"); got != "localhost:3306" {
		t.Errorf("expected localhost:3306, got %s", got)
	}
	if got := ensurePort("localhost:3307", "3306"); got != "localhost:3307" {
		t.Errorf("expected localhost:3307, got %s", got)
	}
}
