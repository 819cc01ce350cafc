package report

import (
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/swatch/internal/tui/styles"
	"nathanbeddoewebdev/swatch/internal/wcag"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ruleWidth = 80

// DefaultTitle is the report heading.
const DefaultTitle = "🎨 Color Contrast Checker"

// TextOptions controls WriteText.
type TextOptions struct {
	// Title replaces DefaultTitle when non-empty.
	Title string

	// Color enables lipgloss styling of headings and status lines.
	Color bool

	// Swatches prints a filled color block after each hex value. Only
	// meaningful with Color.
	Swatches bool
}

// WriteText renders results as one block per pair followed by a legend.
func WriteText(w io.Writer, results []Result, opts TextOptions) error {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	render := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	rule := render(styles.MutedText, strings.Repeat("=", ruleWidth))

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", render(styles.Title, title))
	fmt.Fprintf(&b, "%s\n\n", rule)

	for _, r := range results {
		status := r.Status()
		style := styles.StatusStyle(status)

		fg, bg := r.Pair.ForegroundHex(), r.Pair.BackgroundHex()
		if opts.Color && opts.Swatches {
			fg += " " + styles.Swatch(r.Pair.Foreground().Hex())
			bg += " " + styles.Swatch(r.Pair.Background().Hex())
		}

		fmt.Fprintf(&b, "%s %s\n", status.Symbol(), render(style, r.Pair.Name()))
		fmt.Fprintf(&b, "   %s %s\n", render(styles.Label, "Foreground:"), fg)
		fmt.Fprintf(&b, "   %s %s\n", render(styles.Label, "Background:"), bg)
		fmt.Fprintf(&b, "   %s %s\n", render(styles.Label, "Ratio:"), render(styles.Value, FormatRatio(r.Ratio)))
		fmt.Fprintf(&b, "   %s %s\n\n", render(styles.Label, "WCAG:"), render(style, r.Compliance.Levels()))
	}

	fmt.Fprintf(&b, "%s\n", rule)
	writeLegend(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLegend(b *strings.Builder) {
	b.WriteString("\nLegend:\n")
	for _, entry := range wcag.Legend {
		fmt.Fprintf(b, "%s = %s\n", padSymbol(entry.Status.Symbol()), entry.Description)
	}
	fmt.Fprintf(b, "\n%s\n%s\n\n", wcag.NormalTextDefinition, wcag.LargeTextDefinition)
}

// padSymbol pads narrow status markers to two cells so the legend lines up.
func padSymbol(sym string) string {
	if n := ansi.StringWidth(sym); n < 2 {
		return sym + strings.Repeat(" ", 2-n)
	}
	return sym
}
