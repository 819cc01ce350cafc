package wcag

import (
	"fmt"
	"strings"
)

// Status is the coarse outcome shown next to each pair in a report.
type Status int

const (
	StatusFail Status = iota
	StatusLargeOnly
	StatusAA
	StatusAAA
)

// Status returns the coarse outcome for c.
func (c ComplianceResult) Status() Status {
	switch {
	case c.NormalAAA:
		return StatusAAA
	case c.NormalAA:
		return StatusAA
	case c.LargeAA:
		return StatusLargeOnly
	default:
		return StatusFail
	}
}

// Symbol returns the report marker for s.
func (s Status) Symbol() string {
	switch s {
	case StatusAAA:
		return "✅"
	case StatusAA:
		return "✓"
	case StatusLargeOnly:
		return "⚠️"
	default:
		return "❌"
	}
}

// String returns a short lowercase name, used in JSON output.
func (s Status) String() string {
	switch s {
	case StatusAAA:
		return "aaa"
	case StatusAA:
		return "aa"
	case StatusLargeOnly:
		return "large-only"
	default:
		return "fail"
	}
}

// MarshalText encodes s by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "aaa":
		*s = StatusAAA
	case "aa":
		*s = StatusAA
	case "large-only":
		*s = StatusLargeOnly
	case "fail":
		*s = StatusFail
	default:
		return fmt.Errorf("wcag: unknown status %q", b)
	}
	return nil
}

// LegendEntry pairs a status with its description.
type LegendEntry struct {
	Status      Status
	Description string
}

// Legend lists the report markers from best to worst.
var Legend = []LegendEntry{
	{StatusAAA, "Passes AAA (normal text)"},
	{StatusAA, "Passes AA (normal text)"},
	{StatusLargeOnly, "Passes only for large text"},
	{StatusFail, "Fails all standards"},
}

// Text size definitions. Documentation only; nothing here measures text.
const (
	NormalTextDefinition = "Normal text: < 24px or < 18px bold"
	LargeTextDefinition  = "Large text: ≥ 24px or ≥ 18px bold"
)
