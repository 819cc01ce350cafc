// Package wcag classifies contrast ratios against the WCAG 2.0 AA and AAA
// conformance thresholds for normal and large text.
package wcag

import "strings"

// Minimum contrast ratios per conformance level and text size.
const (
	NormalAAA = 7.0
	NormalAA  = 4.5
	LargeAAA  = 4.5
	LargeAA   = 3.0
)

// Labels reported for the best passing standard.
const (
	LabelNormalAAA = "AAA (normal)"
	LabelNormalAA  = "AA (normal)"
	LabelLargeAAA  = "AAA (large)"
	LabelLargeAA   = "AA (large)"
	LabelFail      = "FAIL"
)

// ComplianceResult holds the four independent pass flags for one ratio.
type ComplianceResult struct {
	NormalAAA bool `json:"normal_aaa"`
	NormalAA  bool `json:"normal_aa"`
	LargeAAA  bool `json:"large_aaa"`
	LargeAA   bool `json:"large_aa"`
}

// Classify evaluates ratio against each threshold independently.
func Classify(ratio float64) ComplianceResult {
	return ComplianceResult{
		NormalAAA: ratio >= NormalAAA,
		NormalAA:  ratio >= NormalAA,
		LargeAAA:  ratio >= LargeAAA,
		LargeAA:   ratio >= LargeAA,
	}
}

// Label returns the single best passing standard. Precedence is fixed:
// AAA (normal), AA (normal), AAA (large), AA (large), then FAIL.
func (c ComplianceResult) Label() string {
	switch {
	case c.NormalAAA:
		return LabelNormalAAA
	case c.NormalAA:
		return LabelNormalAA
	case c.LargeAAA:
		return LabelLargeAAA
	case c.LargeAA:
		return LabelLargeAA
	default:
		return LabelFail
	}
}

// Levels returns the best level for each text size, normal first, joined
// with ", " (e.g. "AA (normal), AAA (large)"). FAIL when nothing passes.
func (c ComplianceResult) Levels() string {
	var levels []string

	if c.NormalAAA {
		levels = append(levels, LabelNormalAAA)
	} else if c.NormalAA {
		levels = append(levels, LabelNormalAA)
	}

	if c.LargeAAA {
		levels = append(levels, LabelLargeAAA)
	} else if c.LargeAA {
		levels = append(levels, LabelLargeAA)
	}

	if len(levels) == 0 {
		return LabelFail
	}
	return strings.Join(levels, ", ")
}

// Passes reports whether any standard is met.
func (c ComplianceResult) Passes() bool {
	return c.NormalAAA || c.NormalAA || c.LargeAAA || c.LargeAA
}
