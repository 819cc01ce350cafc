package palette

import (
	"nathanbeddoewebdev/swatch/cmd/commands/common"

	"github.com/spf13/cobra"
)

// NewCommand returns the "palette" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect and export the color palette",
		Long: `Inspect the active palette, export it as CSS custom properties, or write
the built-in palette to a file as a starting point for your own.

The active palette is the --palette file, else the configured palette
(swatch config set palette <file>), else the built-in palette.`,
	}

	common.AddPaletteFlag(cmd)

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(CSSCommand())
	cmd.AddCommand(InitCommand())

	return cmd
}
