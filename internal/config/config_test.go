package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	if got := cfg.GetStringOrDef("web.addr", ""); got != ":8080" {
		t.Errorf("web.addr = %q, want :8080", got)
	}
	if got := cfg.GetIntOrDef("reports.low_stock", 0); got != 5 {
		t.Errorf("reports.low_stock = %d, want 5", got)
	}
	if cfg.GetBool("telemetry.enabled") {
		t.Error("telemetry.enabled must default to false")
	}
	if d, ok := cfg.GetDuration("queries.cache.ttl"); !ok || d != 30*time.Second {
		t.Errorf("queries.cache.ttl = %v (%v), want 30s", d, ok)
	}
}

func TestGetOrDefFallbacks(t *testing.T) {
	cfg := New()

	if got := cfg.GetStringOrDef("does.not.exist", "fallback"); got != "fallback" {
		t.Errorf("missing string = %q, want fallback", got)
	}
	if got := cfg.GetIntOrDef("does.not.exist", 7); got != 7 {
		t.Errorf("missing int = %d, want 7", got)
	}
	// An empty configured string also falls back.
	if got := cfg.GetStringOrDef("redis.url", "redis://fallback"); got != "redis://fallback" {
		t.Errorf("empty string = %q, want fallback", got)
	}
}

func TestSetOverrides(t *testing.T) {
	cfg := New()
	if err := cfg.Set("reports.low_stock", 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.GetIntOrDef("reports.low_stock", 0); got != 9 {
		t.Errorf("reports.low_stock = %d, want 9", got)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHOESTACKTEST_WEB_ADDR", ":9090")

	cfg, err := Load("SHOESTACKTEST", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.GetStringOrDef("web.addr", ""); got != ":9090" {
		t.Errorf("web.addr = %q, want :9090", got)
	}
	// Untouched keys keep their defaults.
	if got := cfg.GetStringOrDef("db.mongo.name", ""); got != "shoestack" {
		t.Errorf("db.mongo.name = %q, want shoestack", got)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "web:\n  addr: \":7070\"\nreports:\n  low_stock: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write config file: %v", err)
	}

	cfg, err := Load("SHOESTACKTEST", []string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.GetStringOrDef("web.addr", ""); got != ":7070" {
		t.Errorf("web.addr = %q, want :7070", got)
	}
	if got := cfg.GetIntOrDef("reports.low_stock", 0); got != 3 {
		t.Errorf("reports.low_stock = %d, want 3", got)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load("SHOESTACKTEST", []string{"--config", "/does/not/exist.yaml"}); err == nil {
		t.Error("expected an error for a missing requested file")
	}
}
