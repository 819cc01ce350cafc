package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/swatch/internal/config"
)

func TestGet_Output_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "output")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_Output_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Output: "json"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "output")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "json" {
		t.Errorf("expected 'json', got: %s", stdout)
	}
}

func TestGet_All(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{Output: "table"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get")

	if !strings.Contains(stdout, "palette: (not set)") {
		t.Errorf("expected unset palette line, got: %s", stdout)
	}
	if !strings.Contains(stdout, "output: table") {
		t.Errorf("expected output line, got: %s", stdout)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
