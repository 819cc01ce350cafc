package palette

import (
	"fmt"
	"log/slog"
	"strings"

	"nathanbeddoewebdev/swatch/cmd/commands/common"
	"nathanbeddoewebdev/swatch/internal/cssvars"

	"github.com/spf13/cobra"
)

// CSSCommand returns the "palette css" command.
func CSSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Generate CSS custom properties from the palette",
		Long: `Emit one CSS custom property per swatch: light values in :root and dark
values in a prefers-color-scheme: dark media query.

Variables are named --<category>-<swatch>, with a trailing 's' dropped from
the category (backgrounds.primary becomes --background-primary).

Examples:
  swatch palette css
  swatch palette css --out src/styles/color-variables.css`,
		Args:         cobra.NoArgs,
		RunE:         runCSS,
		SilenceUsage: true,
	}

	cmd.Flags().String("out", "", "Write to this file instead of stdout")

	return cmd
}

func runCSS(cmd *cobra.Command, args []string) error {
	p, err := common.LoadPalette(cmd)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	out = strings.TrimSpace(out)

	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), cssvars.Generate(p))
		return nil
	}

	if err := cssvars.WriteFile(out, p); err != nil {
		return err
	}
	slog.Debug("wrote css variables", slog.String("path", out))
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Generated %s\n", out)
	return nil
}
