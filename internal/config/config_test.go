package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != "3000" {
		t.Errorf("App.Port = %q, want 3000", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 60 {
		t.Errorf("AccessTokenTTLMinutes = %d, want 60", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Upload.Dir != "uploads" {
		t.Errorf("Upload.Dir = %q, want uploads", cfg.Upload.Dir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("AUTH_JWT_SECRET", "super-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "30")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != "8081" {
		t.Errorf("App.Port = %q, want 8081", cfg.App.Port)
	}
	if cfg.Auth.JWTSecret != "super-secret" {
		t.Errorf("JWTSecret = %q, want super-secret", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 30 {
		t.Errorf("AccessTokenTTLMinutes = %d, want 30", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Postgres.RunMigrations {
		t.Error("RunMigrations = true, want false")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want fallback 10", cfg.Auth.BcryptCost)
	}
}
