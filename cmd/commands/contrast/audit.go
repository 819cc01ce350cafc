package contrast

import (
	"fmt"
	"log/slog"

	"nathanbeddoewebdev/swatch/cmd/commands/common"
	"nathanbeddoewebdev/swatch/internal/palette"
	"nathanbeddoewebdev/swatch/internal/report"

	"github.com/spf13/cobra"
)

// AuditCommand returns the "contrast audit" command.
func AuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check every palette color against every background",
		Long: `Evaluate each text and accent swatch against each background swatch,
in light mode, dark mode, or both. Results are sorted worst first.

Swatches whose value is not a 6-digit hex color (for example rgba borders)
are skipped.

Examples:
  swatch contrast audit
  swatch contrast audit --mode dark
  swatch contrast audit --palette brand.yaml -o json`,
		Args:         cobra.NoArgs,
		RunE:         runAudit,
		SilenceUsage: true,
	}

	cmd.Flags().String("mode", "all", "Palette mode to audit: light, dark or all")
	common.AddOutputFlag(cmd, "table, text or json")

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	modes, err := palette.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	p, err := common.LoadPalette(cmd)
	if err != nil {
		return err
	}

	output, err := common.OutputFormat(cmd, "table", "text", "json")
	if err != nil {
		return err
	}

	results, err := report.Audit(cmd.Context(), p, modes)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No hex colors to audit.")
		return nil
	}

	counts := report.Tally(results)
	slog.Debug("audit complete", slog.Int("pairs", len(results)), slog.String("counts", counts.String()))

	if output == "json" {
		return report.WriteJSON(cmd.OutOrStdout(), struct {
			Results []report.Result `json:"results"`
			Counts  report.Counts   `json:"counts"`
		}{results, counts})
	}

	if err := writeResults(cmd, results, output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d combinations: %s\n", len(results), counts)
	return nil
}
