package config_test

import (
	"testing"
	"time"

	"nl-task-parser/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Parser.DefaultLanguage != "en" {
		t.Errorf("default language = %q, want en", cfg.Parser.DefaultLanguage)
	}
	if cfg.Parser.PlaceholderTitle != "Untitled task" {
		t.Errorf("placeholder = %q", cfg.Parser.PlaceholderTitle)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("cache ttl = %v, want 10m", cfg.Cache.TTL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PARSER_DEFAULT_LANGUAGE", "de")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "30")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Parser.DefaultLanguage != "de" {
		t.Errorf("default language = %q, want de", cfg.Parser.DefaultLanguage)
	}
	if cfg.RateLimit.RequestsPerMin != 30 {
		t.Errorf("requests per min = %d, want 30", cfg.RateLimit.RequestsPerMin)
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("PARSER_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := config.Load(); err == nil {
		t.Fatal("Load() expected an error for an unknown timezone")
	}
}
