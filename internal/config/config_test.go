package config

import (
	"testing"
)

// TestLoad_Defaults verifies defaults apply when nothing is configured.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputFormat != "{{.Artist.Name}} - {{.Name}}" {
		t.Errorf("unexpected default output format %q", cfg.OutputFormat)
	}
	if cfg.RequestTimeout != 15 {
		t.Errorf("unexpected default request timeout %d", cfg.RequestTimeout)
	}
	if cfg.OutputWidth != 0 {
		t.Errorf("unexpected default output width %d", cfg.OutputWidth)
	}
}

// TestLoad_Environment verifies LASTFM_* environment overrides.
func TestLoad_Environment(t *testing.T) {
	t.Setenv("LASTFM_API_KEY", "env-api-key")
	t.Setenv("LASTFM_USER", "alice")
	t.Setenv("LASTFM_REQUEST_TIMEOUT", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "env-api-key" {
		t.Errorf("expected API key from environment, got %q", cfg.APIKey)
	}
	if cfg.User != "alice" {
		t.Errorf("expected user from environment, got %q", cfg.User)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("expected timeout from environment, got %d", cfg.RequestTimeout)
	}
}
