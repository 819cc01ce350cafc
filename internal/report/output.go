package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable renders results as an aligned table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "STATUS\tNAME\tFOREGROUND\tBACKGROUND\tRATIO\tBEST")
	fmt.Fprintln(tw, "------\t----\t----------\t----------\t-----\t----")

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Status(),
			r.Pair.Name(),
			r.Pair.ForegroundHex(),
			r.Pair.BackgroundHex(),
			FormatRatio(r.Ratio),
			r.Compliance.Label(),
		)
	}

	return tw.Flush()
}

// WriteJSON encodes results as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
