package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENCRYPTION_KEY", "test-passphrase")
	t.Setenv("JWT_SECRET", "test-signing-key")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected port %q got %q", defaultPort, cfg.Port)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("expected ttl %v got %v", defaultTokenTTL, cfg.TokenTTL)
	}
	if cfg.JWTIssuer != defaultJWTIssuer || cfg.JWTAudience != defaultJWTAudience {
		t.Fatalf("unexpected issuer/audience: %q/%q", cfg.JWTIssuer, cfg.JWTAudience)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("expected :8080 got %q", cfg.Address())
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when ENCRYPTION_KEY is missing")
	}

	t.Setenv("ENCRYPTION_KEY", "k")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadRequiresBackendsOutsideDev(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing in production")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/easypass")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when REDIS_URL is missing in production")
	}
}

func TestLoadTokenTTLOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m got %v", cfg.TokenTTL)
	}

	t.Setenv("TOKEN_TTL_MINUTES", "")
	t.Setenv("TOKEN_TTL", "90s")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != 90*time.Second {
		t.Fatalf("expected 90s got %v", cfg.TokenTTL)
	}

	t.Setenv("TOKEN_TTL", "bogus")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid TOKEN_TTL")
	}
}
