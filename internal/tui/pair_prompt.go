// Package tui holds the interactive prompts used when a command is run in a
// terminal without its required arguments.
package tui

import (
	"errors"
	"strings"

	"nathanbeddoewebdev/swatch/internal/color"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive prompt.
var ErrAborted = errors.New("aborted by user")

// PairInput holds the values collected by RunPairPrompt.
type PairInput struct {
	Name       string
	Foreground string
	Background string
}

// RunPairPrompt asks for a foreground and background color, starting from
// prefill. Colors are validated as they are typed.
func RunPairPrompt(prefill PairInput, accessible bool) (*PairInput, error) {
	in := prefill

	err := runForm(accessible,
		huh.NewGroup(
			huh.NewInput().
				Title("Foreground").
				Description("Text color as 6-digit hex").
				Placeholder("#1d1d1f").
				Value(&in.Foreground).
				Validate(ValidateHex),
			huh.NewInput().
				Title("Background").
				Description("Surface color as 6-digit hex").
				Placeholder("#ffffff").
				Value(&in.Background).
				Validate(ValidateHex),
			huh.NewInput().
				Title("Name").
				Description("Optional label shown in the report").
				Value(&in.Name),
		),
	)
	if err != nil {
		return nil, err
	}

	in.Foreground = strings.TrimSpace(in.Foreground)
	in.Background = strings.TrimSpace(in.Background)
	in.Name = strings.TrimSpace(in.Name)
	return &in, nil
}

// ValidateHex accepts a 6-digit hex color, ignoring surrounding space.
func ValidateHex(s string) error {
	_, err := color.Parse(strings.TrimSpace(s))
	return err
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
