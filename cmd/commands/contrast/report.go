package contrast

import (
	"fmt"
	"log/slog"

	"nathanbeddoewebdev/swatch/cmd/commands/common"
	"nathanbeddoewebdev/swatch/internal/report"

	"github.com/spf13/cobra"
)

// ReportCommand returns the "contrast report" command.
func ReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report contrast for every pair in the palette",
		Long: `Evaluate every foreground/background pair defined in the palette and
print one block per pair followed by a legend.

Examples:
  # Built-in palette
  swatch contrast report

  # Custom palette as a table
  swatch contrast report --palette brand.yaml -o table

  # JSON for scripting
  swatch contrast report -o json`,
		Args:         cobra.NoArgs,
		RunE:         runReport,
		SilenceUsage: true,
	}

	common.AddOutputFlag(cmd, "text, table or json")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	p, err := common.LoadPalette(cmd)
	if err != nil {
		return err
	}

	pairs, err := p.ColorPairs()
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No pairs defined in palette.")
		return nil
	}

	output, err := common.OutputFormat(cmd, "text", "table", "json")
	if err != nil {
		return err
	}

	results, err := report.Evaluate(cmd.Context(), pairs)
	if err != nil {
		return fmt.Errorf("failed to evaluate pairs: %w", err)
	}
	slog.Debug("evaluated pairs", slog.Int("count", len(results)))

	return writeResults(cmd, results, output)
}

// writeResults renders results in the chosen format to stdout.
func writeResults(cmd *cobra.Command, results []report.Result, output string) error {
	w := cmd.OutOrStdout()
	switch output {
	case "json":
		return report.WriteJSON(w, results)
	case "table":
		return report.WriteTable(w, results)
	default:
		color := common.UseColor(w)
		return report.WriteText(w, results, report.TextOptions{Color: color, Swatches: color})
	}
}
