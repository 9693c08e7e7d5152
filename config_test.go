package locfetch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locfetch.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
service_url: https://translations.example.com
default_platform: web
default_language: da
cache_minutes: 30
suppress_seconds: 60
redis:
  url: redis://localhost:6379
  key_prefix: "trans:"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ServiceURL != "https://translations.example.com" {
		t.Errorf("ServiceURL = %q", cfg.ServiceURL)
	}
	if cfg.DefaultPlatform != "web" || cfg.DefaultLanguage != "da" {
		t.Errorf("Defaults = %s/%s", cfg.DefaultPlatform, cfg.DefaultLanguage)
	}
	if cfg.TTL() != 30*time.Minute {
		t.Errorf("TTL = %v", cfg.TTL())
	}
	if cfg.SuppressionWindow() != 60*time.Second {
		t.Errorf("SuppressionWindow = %v", cfg.SuppressionWindow())
	}
	if cfg.Redis.URL != "redis://localhost:6379" || cfg.Redis.KeyPrefix != "trans:" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "service_url: https://translations.example.com\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DefaultPlatform != "api" {
		t.Errorf("DefaultPlatform = %q", cfg.DefaultPlatform)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q", cfg.DefaultLanguage)
	}
	if cfg.TTL() != 60*time.Minute {
		t.Errorf("TTL = %v", cfg.TTL())
	}
	if cfg.SuppressionWindow() != 30*time.Second {
		t.Errorf("SuppressionWindow = %v", cfg.SuppressionWindow())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout())
	}
}

func TestLoadConfig_MissingServiceURL(t *testing.T) {
	path := writeConfig(t, "default_language: en\n")

	_, err := LoadConfig(path)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigError, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "service_url: [unclosed\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
