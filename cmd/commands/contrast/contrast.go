package contrast

import (
	"nathanbeddoewebdev/swatch/cmd/commands/common"

	"github.com/spf13/cobra"
)

// NewCommand returns the "contrast" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check WCAG contrast ratios",
		Long: `Compute WCAG 2.0 contrast ratios for color pairs and classify them
against the AA and AAA thresholds for normal and large text.

Reports always exit successfully; they describe compliance, they do not
enforce it.`,
	}

	common.AddPaletteFlag(cmd)

	cmd.AddCommand(ReportCommand())
	cmd.AddCommand(CheckCommand())
	cmd.AddCommand(AuditCommand())

	return cmd
}
