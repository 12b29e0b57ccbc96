package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %q, but got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 15 {
		t.Errorf("Expected default timeout of 15 seconds, but got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EDUSYNC_BASE_URL", "http://env.example.com/api")
	t.Setenv("EDUSYNC_TIMEOUT_SECONDS", "30")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://env.example.com/api" {
		t.Errorf("Expected the environment base URL, but got %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("Expected timeout 30, but got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: http://file.example.com/api\ntimeout_seconds: 20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://file.example.com/api" {
		t.Errorf("Expected the file base URL, but got %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 20 {
		t.Errorf("Expected timeout 20, but got %d", cfg.TimeoutSeconds)
	}
}

func TestFlagsTakePrecedence(t *testing.T) {
	t.Setenv("EDUSYNC_BASE_URL", "http://env.example.com/api")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-url", "", "")
	flags.Int("timeout-seconds", 0, "")
	if err := flags.Parse([]string{"--base-url", "http://flag.example.com/api"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://flag.example.com/api" {
		t.Errorf("Expected the flag base URL to win, but got %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 15 {
		t.Errorf("Expected the unchanged timeout flag to leave the default, but got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("EDUSYNC_BASE_URL", "not a url")

	if _, err := Load("", nil); err == nil {
		t.Fatal("Expected an error for an invalid base URL")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
}
