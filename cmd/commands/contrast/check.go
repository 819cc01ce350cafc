package contrast

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/swatch/cmd/commands/common"
	"nathanbeddoewebdev/swatch/internal/palette"
	"nathanbeddoewebdev/swatch/internal/report"
	"nathanbeddoewebdev/swatch/internal/tui"

	"github.com/spf13/cobra"
)

// CheckCommand returns the "contrast check" command.
func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [foreground] [background]",
		Short: "Check a single color pair",
		Long: `Check the contrast of one foreground/background pair.

Colors are 6-digit hex codes with or without a leading '#'. When no colors
are given and stdin is a terminal, you will be prompted for them.

Examples:
  swatch contrast check '#1d1d1f' '#ffffff'
  swatch contrast check 0071e3 ffffff --name "Link on page"
  swatch contrast check '#86868b' '#ffffff' -o json`,
		Args:         cobra.RangeArgs(0, 2),
		RunE:         runCheck,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Label for the pair in the output")
	common.AddOutputFlag(cmd, "text, table or json")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	name = strings.TrimSpace(name)

	var fg, bg string
	switch len(args) {
	case 2:
		fg, bg = args[0], args[1]
	case 0:
		if !common.StdinIsTerminal() {
			return errors.New("provide a foreground and background color, e.g. swatch contrast check '#1d1d1f' '#ffffff'")
		}
		in, err := tui.RunPairPrompt(tui.PairInput{Name: name}, os.Getenv("ACCESSIBLE") != "")
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Contrast check cancelled.")
				return nil
			}
			return err
		}
		fg, bg, name = in.Foreground, in.Background, in.Name
	default:
		return errors.New("provide both a foreground and a background color")
	}

	output, err := common.OutputFormat(cmd, "text", "table", "json")
	if err != nil {
		return err
	}

	if output == "text" {
		pair, err := palette.NewPair(name, fg, bg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Summarize(pair))
		return nil
	}

	// Table and JSON rows need a label.
	if name == "" {
		name = fg + " on " + bg
	}
	pair, err := palette.NewPair(name, fg, bg)
	if err != nil {
		return err
	}

	result := report.EvaluatePair(pair)
	if output == "json" {
		return report.WriteJSON(cmd.OutOrStdout(), result)
	}
	return writeResults(cmd, []report.Result{result}, output)
}
