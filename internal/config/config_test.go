package config

import "testing"

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when POSTGRES_DSN is missing")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/accounts")
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when AUTH_JWT_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/accounts")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 24*60 {
		t.Fatalf("token TTL = %d minutes, want 1440", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("bcrypt cost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("addr = %q, want 0.0.0.0:8080", cfg.App.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://db:5432/accounts")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "120")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 120 {
		t.Fatalf("token TTL = %d, want 120", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.App.Port)
	}
}
