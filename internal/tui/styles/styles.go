package styles

import (
	"nathanbeddoewebdev/swatch/internal/wcag"

	"github.com/charmbracelet/lipgloss"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Label is used for field names in report blocks.
	Label = lipgloss.NewStyle().
		Foreground(Gray)

	// Value is used for field values in report blocks.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for rules, legends, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted values.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Status badges ---

// StatusStyle returns the style for a compliance status.
func StatusStyle(status wcag.Status) lipgloss.Style {
	switch status {
	case wcag.StatusAAA:
		return SuccessText
	case wcag.StatusAA:
		return lipgloss.NewStyle().Foreground(Green)
	case wcag.StatusLargeOnly:
		return WarningText
	default:
		return ErrorText
	}
}

// Swatch renders a small block filled with the given hex color, for
// previewing palette entries in a terminal.
func Swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("    ")
}
