package palette

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/swatch/internal/config"
	"nathanbeddoewebdev/swatch/internal/cssvars"
	pal "nathanbeddoewebdev/swatch/internal/palette"

	"github.com/google/go-cmp/cmp"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execPalette creates the palette command, wires up output buffers, runs with
// the given args, and returns what was written to stdout and stderr.
func execPalette(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestShow_Table(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execPalette(t, "show")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{"CATEGORY", "backgrounds", "accents", "yellow", "#ffd60a", "rgba(0, 0, 0, 0.1)", "6 pairs defined"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
}

func TestShow_JSON(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execPalette(t, "show", "-o", "json")

	var got pal.Palette
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if diff := cmp.Diff(pal.Default(), got); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestCSS_Stdout(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execPalette(t, "css")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if stdout != cssvars.Generate(pal.Default()) {
		t.Errorf("expected generated CSS on stdout, got:\n%s", stdout)
	}
}

func TestCSS_OutFile(t *testing.T) {
	setupTestConfig(t)
	out := filepath.Join(t.TempDir(), "css", "color-variables.css")

	stdout, stderr := execPalette(t, "css", "--out", out)

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Generated "+out) {
		t.Errorf("expected confirmation, got: %s", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected css file: %v", err)
	}
	if !strings.Contains(string(data), "--accent-blue: #0071e3;") {
		t.Errorf("unexpected css content:\n%s", data)
	}
}

func TestInit_ThenUseAsPalette(t *testing.T) {
	setupTestConfig(t)
	path := filepath.Join(t.TempDir(), "brand.yaml")

	stdout, stderr := execPalette(t, "init", path)
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Wrote palette to") {
		t.Errorf("expected confirmation, got: %s", stdout)
	}

	loaded, err := pal.Load(path)
	if err != nil {
		t.Fatalf("written palette does not load: %v", err)
	}
	if diff := cmp.Diff(pal.Default(), loaded); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	stdout, _ = execPalette(t, "css", "--palette", path)
	if !strings.Contains(stdout, "--background-primary: #ffffff;") {
		t.Errorf("expected css from written palette, got:\n%s", stdout)
	}
}

func TestInit_RefusesOverwrite(t *testing.T) {
	setupTestConfig(t)
	path := filepath.Join(t.TempDir(), "brand.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, stderr := execPalette(t, "init", path)
	if !strings.Contains(stderr, "already exists") {
		t.Errorf("expected overwrite refusal, got: %s", stderr)
	}

	_, stderr = execPalette(t, "init", path, "--force")
	if stderr != "" {
		t.Errorf("unexpected stderr with --force: %s", stderr)
	}
	if _, err := pal.Load(path); err != nil {
		t.Errorf("forced palette does not load: %v", err)
	}
}

func TestInit_UnsupportedExtension(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execPalette(t, "init", filepath.Join(t.TempDir(), "brand.toml"))

	if !strings.Contains(stderr, "unsupported file extension") {
		t.Errorf("expected extension error, got: %s", stderr)
	}
}
