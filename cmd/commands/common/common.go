// Package common holds flag handling shared by the swatch subcommands.
package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"nathanbeddoewebdev/swatch/internal/config"
	"nathanbeddoewebdev/swatch/internal/palette"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AddPaletteFlag registers the persistent --palette flag on cmd.
func AddPaletteFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("palette", "", "Palette file (.yaml, .yml or .json); defaults to the configured or built-in palette")
}

// AddOutputFlag registers --output/-o listing the accepted formats.
func AddOutputFlag(cmd *cobra.Command, formats string) {
	cmd.Flags().StringP("output", "o", "", "Output format: "+formats)
}

// LoadPalette resolves the palette from --palette, then the configured
// palette, then the built-in default.
func LoadPalette(cmd *cobra.Command) (palette.Palette, error) {
	cfg, err := config.Load()
	if err != nil {
		return palette.Palette{}, fmt.Errorf("failed to load config: %w", err)
	}

	flagValue, _ := cmd.Flags().GetString("palette")
	path := cfg.PaletteOr(flagValue)

	p, err := palette.Resolve(path)
	if err != nil {
		return palette.Palette{}, err
	}

	source := path
	if source == "" {
		source = "built-in"
	}
	slog.Debug("loaded palette",
		slog.String("source", source),
		slog.Int("categories", len(p.Categories)),
		slog.Int("pairs", len(p.Pairs)),
	)
	return p, nil
}

// OutputFormat resolves --output, then the configured default, then the
// first of allowed, and checks the result is one of allowed.
func OutputFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	fallback := ""
	if len(allowed) > 0 {
		fallback = allowed[0]
	}

	flagValue, _ := cmd.Flags().GetString("output")
	format := cfg.OutputOr(flagValue, fallback)
	if slices.Contains(allowed, format) {
		return format, nil
	}

	// A configured default this command cannot render is not an error.
	if !cmd.Flags().Changed("output") {
		slog.Debug("configured output not supported here", slog.String("output", format), slog.String("using", fallback))
		return fallback, nil
	}
	return "", fmt.Errorf("unsupported output format %q (valid: %s)", format, strings.Join(allowed, ", "))
}

// UseColor reports whether w is a terminal that should receive styled
// output. NO_COLOR disables styling.
func UseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// StdinIsTerminal reports whether interactive prompts can be shown.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
