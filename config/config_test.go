package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.SMTPPort != 587 {
		t.Fatalf("expected default smtp port 587, got %d", cfg.SMTPPort)
	}
	if cfg.StaticDir != "./frontend" {
		t.Fatalf("expected default static dir, got %q", cfg.StaticDir)
	}
	if cfg.AdminCode != "" {
		t.Fatalf("admin code must default to empty, got %q", cfg.AdminCode)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_CODE", "mastercode")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Fatalf("expected jwt secret override, got %q", cfg.JWTSecret)
	}
	if cfg.AdminCode != "mastercode" {
		t.Fatalf("expected admin code override, got %q", cfg.AdminCode)
	}
	if cfg.SMTPPort != 2525 {
		t.Fatalf("expected smtp port override, got %d", cfg.SMTPPort)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()
	if cfg.SMTPPort != 587 {
		t.Fatalf("expected fallback smtp port 587, got %d", cfg.SMTPPort)
	}
}
