// Package cssvars renders a palette as CSS custom properties: a light
// :root block followed by a prefers-color-scheme dark override.
package cssvars

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"nathanbeddoewebdev/swatch/internal/atomicfile"
	"nathanbeddoewebdev/swatch/internal/palette"
)

const banner = "========================================"

// VarName returns the custom property name for a swatch in a category,
// e.g. ("backgrounds", "primary") -> "--background-primary".
func VarName(category, swatch string) string {
	return "--" + singular(category) + "-" + swatch
}

func singular(s string) string {
	if len(s) > 1 && strings.HasSuffix(s, "s") {
		return s[:len(s)-1]
	}
	return s
}

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Generate renders p as CSS.
func Generate(p palette.Palette) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	writeBlock(&b, p, palette.ModeLight, "  ")
	b.WriteString("}\n\n")

	b.WriteString("@media (prefers-color-scheme: dark) {\n")
	b.WriteString("  :root {\n")
	writeBlock(&b, p, palette.ModeDark, "    ")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

func writeBlock(b *strings.Builder, p palette.Palette, mode palette.Mode, indent string) {
	heading := "Light Mode Colors"
	if mode == palette.ModeDark {
		heading = "Dark Mode Colors"
	}

	fmt.Fprintf(b, "%s/* %s\n", indent, banner)
	fmt.Fprintf(b, "%s   %s\n", indent, heading)
	fmt.Fprintf(b, "%s   %s */\n\n", indent, banner)

	for _, cat := range p.Categories {
		fmt.Fprintf(b, "%s/* %s */\n", indent, title(cat.Name))
		for _, s := range cat.Swatches {
			fmt.Fprintf(b, "%s%s: %s;\n", indent, VarName(cat.Name, s.Name), s.Value(mode))
		}
		b.WriteString("\n")
	}
}

// WriteFile renders p and writes it to path, creating parent directories.
// An existing file is replaced only once the new content is fully written.
func WriteFile(path string, p palette.Palette) error {
	if err := atomicfile.WriteFile(path, []byte(Generate(p)), 0o644); err != nil {
		return fmt.Errorf("cssvars: %w", err)
	}
	return nil
}
