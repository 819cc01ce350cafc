package palette

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/swatch/cmd/commands/common"
	"nathanbeddoewebdev/swatch/internal/color"
	pal "nathanbeddoewebdev/swatch/internal/palette"
	"nathanbeddoewebdev/swatch/internal/report"
	"nathanbeddoewebdev/swatch/internal/tui/styles"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "palette show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List palette swatches",
		Long: `List every swatch in the active palette with its light and dark value.

Examples:
  swatch palette show
  swatch palette show --palette brand.yaml -o json`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	common.AddOutputFlag(cmd, "table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := common.LoadPalette(cmd)
	if err != nil {
		return err
	}

	output, err := common.OutputFormat(cmd, "table", "json")
	if err != nil {
		return err
	}

	if output == "json" {
		return report.WriteJSON(cmd.OutOrStdout(), p)
	}

	preview := common.UseColor(cmd.OutOrStdout())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME\tLIGHT\tDARK")
	fmt.Fprintln(w, "--------\t----\t-----\t----")
	for _, cat := range p.Categories {
		for _, s := range cat.Swatches {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cat.Name,
				s.Name,
				previewValue(s.Value(pal.ModeLight), preview),
				previewValue(s.Value(pal.ModeDark), preview),
			)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(p.Pairs) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d pairs defined; run 'swatch contrast report' to check them.\n", len(p.Pairs))
	}
	return nil
}

// previewValue appends a filled block to hex values when styling is on.
func previewValue(v string, preview bool) string {
	if !preview || !color.IsHex(v) {
		return v
	}
	return v + " " + styles.Swatch(color.MustParse(v).Hex())
}
