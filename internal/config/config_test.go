package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Service.Name != "patentwire" {
		t.Errorf("service name = %q", cfg.Service.Name)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("address = %q", cfg.Address())
	}
	if cfg.Content.BaseURL != "https://api.notion.com" {
		t.Errorf("content base url = %q", cfg.Content.BaseURL)
	}
	if cfg.Content.Version != "2022-06-28" {
		t.Errorf("content version = %q", cfg.Content.Version)
	}
	if cfg.Session.CookieName != "pw_session" || cfg.Session.VisitorCookieName != "pw_visitor" {
		t.Errorf("cookie names = %q, %q", cfg.Session.CookieName, cfg.Session.VisitorCookieName)
	}
	if len(cfg.Guard.ProtectedPrefixes) != 1 || cfg.Guard.ProtectedPrefixes[0] != "/profile" {
		t.Errorf("protected prefixes = %v", cfg.Guard.ProtectedPrefixes)
	}
	if cfg.Guard.HomePath != "/" || cfg.Guard.LoginPath != "/login" || cfg.Guard.SignupPath != "/signup" {
		t.Errorf("guard paths = %+v", cfg.Guard)
	}
	if cfg.Session.CacheTTL != 15*time.Minute {
		t.Errorf("session cache ttl = %v", cfg.Session.CacheTTL)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
service:
  host: 127.0.0.1
  port: 9090
  debug: true
content:
  token: secret-token
  database_id: db-123
guard:
  protected_prefixes:
    - /profile
    - /account
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Address() != "127.0.0.1:9090" {
		t.Errorf("address = %q", cfg.Address())
	}
	if !cfg.Service.Debug {
		t.Error("debug should be true")
	}
	if cfg.Content.Token != "secret-token" || cfg.Content.DatabaseID != "db-123" {
		t.Errorf("content = %+v", cfg.Content)
	}
	if len(cfg.Guard.ProtectedPrefixes) != 2 {
		t.Errorf("protected prefixes = %v", cfg.Guard.ProtectedPrefixes)
	}
	// File values never disable defaults for the fields it omits.
	if cfg.Session.CookieName != "pw_session" {
		t.Errorf("cookie name = %q", cfg.Session.CookieName)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("service: [not a map"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PATENTWIRE_HOST", "10.0.0.5")
	t.Setenv("PATENTWIRE_PORT", "3000")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("NOTION_TOKEN", "env-token")
	t.Setenv("IDENTITY_BASE_URL", "https://auth.example.com")
	t.Setenv("IDENTITY_JWT_SECRET", "env-secret")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Address() != "10.0.0.5:3000" {
		t.Errorf("address = %q", cfg.Address())
	}
	if !cfg.Service.Debug {
		t.Error("debug should be true")
	}
	if cfg.Content.Token != "env-token" {
		t.Errorf("content token = %q", cfg.Content.Token)
	}
	if cfg.Identity.BaseURL != "https://auth.example.com" {
		t.Errorf("identity base url = %q", cfg.Identity.BaseURL)
	}
	if cfg.Redis.Address != "localhost:6379" {
		t.Errorf("redis address = %q", cfg.Redis.Address)
	}
}

func TestValidateRequiresJWTSecretWithIdentity(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "https://auth.example.com")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected validation error when identity has no jwt secret")
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", " TRUE "} {
		if !parseBool(v) {
			t.Errorf("parseBool(%q) = false", v)
		}
	}
	for _, v := range []string{"", "false", "0", "no", "enabled"} {
		if parseBool(v) {
			t.Errorf("parseBool(%q) = true", v)
		}
	}
}
