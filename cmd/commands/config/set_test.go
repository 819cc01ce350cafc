package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/swatch/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	stdout, stderr, _ = execConfigErr(t, args...)
	return stdout, stderr
}

// execConfigErr is execConfig that also returns the error from Execute.
func execConfigErr(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writePalette(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brand.json")
	content := `{"categories": [{"name": "backgrounds", "swatches": [{"name": "page", "light": "#ffffff", "dark": "#000000"}]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write palette: %v", err)
	}
	return path
}

func TestSet_Output(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "output", "TABLE")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"table"`) {
		t.Errorf("expected normalized confirmation, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Output != "table" {
		t.Errorf("expected Output %q, got %q", "table", cfg.Output)
	}
}

func TestSet_Output_Unknown(t *testing.T) {
	setupTestConfig(t)

	_, stderr, err := execConfigErr(t, "set", "output", "yaml")

	if err == nil {
		t.Fatal("expected Execute to return an error")
	}
	if !strings.Contains(stderr, "unknown output format") {
		t.Errorf("expected 'unknown output format' error, got: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Output != "" {
		t.Errorf("expected Output unchanged, got %q", cfg.Output)
	}
}

func TestSet_Palette(t *testing.T) {
	setupTestConfig(t)
	path := writePalette(t)

	stdout, stderr := execConfig(t, "set", "palette", path)

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("expected path in confirmation, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Palette != path {
		t.Errorf("expected Palette %q, got %q", path, cfg.Palette)
	}
}

func TestSet_Palette_Missing(t *testing.T) {
	setupTestConfig(t)

	_, stderr, err := execConfigErr(t, "set", "palette", filepath.Join(t.TempDir(), "nope.yaml"))

	if err == nil {
		t.Fatal("expected Execute to return an error")
	}
	if !strings.Contains(stderr, "failed to read") {
		t.Errorf("expected read error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr, err := execConfigErr(t, "set", "bogus-key", "value")

	if err == nil {
		t.Fatal("expected Execute to return an error")
	}
	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestUnset(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{Output: "json"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "unset", "output")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "output cleared") {
		t.Errorf("expected confirmation, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Output != "" {
		t.Errorf("expected Output cleared, got %q", cfg.Output)
	}
}
