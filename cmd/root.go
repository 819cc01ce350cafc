package cmd

import (
	"os"

	cfgcmd "nathanbeddoewebdev/swatch/cmd/commands/config"
	"nathanbeddoewebdev/swatch/cmd/commands/contrast"
	"nathanbeddoewebdev/swatch/cmd/commands/palette"
	"nathanbeddoewebdev/swatch/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "swatch",
		Short: "Check WCAG contrast and export CSS variables for a color palette",
		Long: `swatch checks the colors of a design-system palette against the WCAG 2.0
contrast requirements and generates CSS custom properties from it.

Contrast ratios use the WCAG relative luminance formula. Pairs are graded
against AA (4.5:1) and AAA (7:1) for normal text and AA (3:1) and AAA
(4.5:1) for large text.

Quick start:
  swatch contrast report                      # Check the palette's pairs
  swatch contrast check '#86868b' '#ffffff'   # Check a single pair
  swatch contrast audit --mode dark           # Every color on every background
  swatch palette css --out colors.css         # Export CSS variables`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.Setup(cmd.ErrOrStderr(), verbose)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(contrast.NewCommand())
	cmd.AddCommand(palette.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
