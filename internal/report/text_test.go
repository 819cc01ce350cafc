package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func renderDefault(t *testing.T, opts TextOptions) string {
	t.Helper()
	results, err := Evaluate(context.Background(), defaultPairs(t))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, results, opts); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	return buf.String()
}

func TestWriteText_Blocks(t *testing.T) {
	out := renderDefault(t, TextOptions{})

	for _, want := range []string{
		DefaultTitle,
		strings.Repeat("=", 80),
		"✅ Text Primary on BG Primary (Light)\n" +
			"   Foreground: #1d1d1f\n" +
			"   Background: #ffffff\n" +
			"   Ratio: 16.83:1\n" +
			"   WCAG: AAA (normal), AAA (large)\n",
		"⚠️ Text Secondary on BG Primary (Light)\n",
		"   WCAG: AA (large)\n",
		"✓ Blue on White\n",
		"   Ratio: 4.70:1\n",
		"   WCAG: AA (normal), AAA (large)\n",
		"Blue (Dark) on Black",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n---\n%s", want, out)
		}
	}
}

func TestWriteText_Legend(t *testing.T) {
	out := renderDefault(t, TextOptions{})

	for _, want := range []string{
		"Legend:",
		"= Passes AAA (normal text)",
		"= Passes AA (normal text)",
		"= Passes only for large text",
		"❌ = Fails all standards",
		"Normal text: < 24px or < 18px bold",
		"Large text: ≥ 24px or ≥ 18px bold",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected legend to contain %q", want)
		}
	}
}

func TestWriteText_ColorStripsToPlain(t *testing.T) {
	plain := renderDefault(t, TextOptions{})
	colored := renderDefault(t, TextOptions{Color: true})

	if got := ansi.Strip(colored); got != plain {
		t.Errorf("styled output differs from plain after stripping:\n--- plain\n%s\n--- stripped\n%s", plain, got)
	}
}

func TestWriteText_CustomTitle(t *testing.T) {
	out := renderDefault(t, TextOptions{Title: "Brand audit"})
	if !strings.Contains(out, "Brand audit") || strings.Contains(out, DefaultTitle) {
		t.Errorf("expected custom title only, got:\n%s", out)
	}
}

func TestPadSymbol(t *testing.T) {
	if got := padSymbol("✓"); got != "✓ " {
		t.Errorf("padSymbol(✓) = %q", got)
	}
	if got := padSymbol("✅"); got != "✅" {
		t.Errorf("padSymbol(✅) = %q", got)
	}
}

func TestWriteTable(t *testing.T) {
	results, err := Evaluate(context.Background(), defaultPairs(t))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, results); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2+len(results) {
		t.Fatalf("expected %d lines, got %d:\n%s", 2+len(results), len(lines), buf.String())
	}
	for _, h := range []string{"STATUS", "NAME", "FOREGROUND", "BACKGROUND", "RATIO", "BEST"} {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header missing %q: %s", h, lines[0])
		}
	}
	if !strings.Contains(lines[3], "large-only") || !strings.Contains(lines[3], "3.62:1") {
		t.Errorf("unexpected row for secondary text: %s", lines[3])
	}
}
