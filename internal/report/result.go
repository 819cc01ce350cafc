// Package report evaluates color pairs and renders the results as a text
// report, a table, or JSON.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"runtime"

	"nathanbeddoewebdev/swatch/internal/color"
	"nathanbeddoewebdev/swatch/internal/palette"
	"nathanbeddoewebdev/swatch/internal/wcag"

	"golang.org/x/sync/errgroup"
)

// Result is an evaluated pair.
type Result struct {
	Pair       palette.Pair
	Ratio      float64
	Compliance wcag.ComplianceResult
}

// Status returns the coarse outcome of r.
func (r Result) Status() wcag.Status { return r.Compliance.Status() }

type resultJSON struct {
	Name       string                `json:"name"`
	Foreground string                `json:"foreground"`
	Background string                `json:"background"`
	Ratio      float64               `json:"ratio"`
	Compliance wcag.ComplianceResult `json:"compliance"`
	Best       string                `json:"best"`
	Levels     string                `json:"levels"`
	Status     wcag.Status           `json:"status"`
}

// MarshalJSON encodes r with the ratio rounded to two decimals.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Name:       r.Pair.Name(),
		Foreground: r.Pair.ForegroundHex(),
		Background: r.Pair.BackgroundHex(),
		Ratio:      math.Round(r.Ratio*100) / 100,
		Compliance: r.Compliance,
		Best:       r.Compliance.Label(),
		Levels:     r.Compliance.Levels(),
		Status:     r.Status(),
	})
}

// EvaluatePair computes the contrast ratio and compliance of p.
func EvaluatePair(p palette.Pair) Result {
	ratio := color.ContrastRatio(p.Foreground(), p.Background())
	return Result{
		Pair:       p,
		Ratio:      ratio,
		Compliance: wcag.Classify(ratio),
	}
}

// Evaluate computes results for pairs concurrently. Results keep the input
// order.
func Evaluate(ctx context.Context, pairs []palette.Pair) ([]Result, error) {
	results := make([]Result, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = EvaluatePair(p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FormatRatio renders a ratio as "x.xx:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// Summarize returns a one-line description of p: name, both colors, the
// ratio, and the best passing standard. An unnamed pair has no name prefix.
func Summarize(p palette.Pair) string {
	r := EvaluatePair(p)
	line := fmt.Sprintf("%s on %s, %s, %s",
		p.ForegroundHex(),
		p.BackgroundHex(),
		FormatRatio(r.Ratio),
		r.Compliance.Label(),
	)
	if p.Name() == "" {
		return line
	}
	return p.Name() + ": " + line
}

// Counts tallies results by status.
type Counts struct {
	AAA       int `json:"aaa"`
	AA        int `json:"aa"`
	LargeOnly int `json:"large_only"`
	Fail      int `json:"fail"`
}

// Tally counts results by status.
func Tally(results []Result) Counts {
	var c Counts
	for _, r := range results {
		switch r.Status() {
		case wcag.StatusAAA:
			c.AAA++
		case wcag.StatusAA:
			c.AA++
		case wcag.StatusLargeOnly:
			c.LargeOnly++
		default:
			c.Fail++
		}
	}
	return c
}

func (c Counts) String() string {
	return fmt.Sprintf("%d AAA, %d AA, %d large-only, %d fail", c.AAA, c.AA, c.LargeOnly, c.Fail)
}
