package palette

import (
	"fmt"

	"nathanbeddoewebdev/swatch/internal/color"
)

// Pair is a named foreground/background combination. It is immutable once
// constructed; use NewPair.
type Pair struct {
	name  string
	fgHex string
	bgHex string
	fg    color.Color
	bg    color.Color
}

// NewPair parses fg and bg and returns the pair. Errors wrap
// color.ErrInvalidFormat.
func NewPair(name, fg, bg string) (Pair, error) {
	fgColor, err := color.Parse(fg)
	if err != nil {
		return Pair{}, fmt.Errorf("pair %q foreground: %w", name, err)
	}
	bgColor, err := color.Parse(bg)
	if err != nil {
		return Pair{}, fmt.Errorf("pair %q background: %w", name, err)
	}
	return Pair{name: name, fgHex: fg, bgHex: bg, fg: fgColor, bg: bgColor}, nil
}

// Name returns the display name of the pair.
func (p Pair) Name() string { return p.name }

// Foreground returns the parsed foreground color.
func (p Pair) Foreground() color.Color { return p.fg }

// Background returns the parsed background color.
func (p Pair) Background() color.Color { return p.bg }

// ForegroundHex returns the foreground as the caller spelled it.
func (p Pair) ForegroundHex() string { return p.fgHex }

// BackgroundHex returns the background as the caller spelled it.
func (p Pair) BackgroundHex() string { return p.bgHex }
