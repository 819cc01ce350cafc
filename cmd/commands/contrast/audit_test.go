package contrast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAudit_DefaultTable(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execContrast(t, "audit")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "STATUS") {
		t.Errorf("expected table header, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "60 combinations:") {
		t.Errorf("expected tally footer, got:\n%s", stdout)
	}

	// Worst first: the first data row is a failure.
	lines := strings.Split(stdout, "\n")
	if !strings.HasPrefix(lines[2], "fail") {
		t.Errorf("expected first row to fail, got %q", lines[2])
	}
}

func TestAudit_DarkOnly(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execContrast(t, "audit", "--mode", "dark")

	if !strings.Contains(stdout, "30 combinations:") {
		t.Errorf("expected 30 dark combinations, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "(light)") {
		t.Errorf("did not expect light pairs")
	}
}

func TestAudit_InvalidMode(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execContrast(t, "audit", "--mode", "sepia")

	if !strings.Contains(stderr, "unknown mode") {
		t.Errorf("expected mode error, got: %s", stderr)
	}
}

func TestAudit_JSON(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execContrast(t, "audit", "--mode", "light", "-o", "json")

	var got struct {
		Results []json.RawMessage `json:"results"`
		Counts  map[string]int    `json:"counts"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(got.Results) != 30 {
		t.Errorf("expected 30 results, got %d", len(got.Results))
	}
	total := 0
	for _, n := range got.Counts {
		total += n
	}
	if total != 30 {
		t.Errorf("expected counts to sum to 30, got %v", got.Counts)
	}
}

func TestAudit_NoBackgrounds(t *testing.T) {
	setupTestConfig(t)
	path := writePalette(t, "text-only.yaml", "categories:\n  - name: text\n    swatches:\n      - {name: body, light: \"#000000\", dark: \"#ffffff\"}\n")

	_, stderr := execContrast(t, "audit", "--palette", path)

	if !strings.Contains(stderr, `no "backgrounds" category`) {
		t.Errorf("expected missing backgrounds error, got: %s", stderr)
	}
}
