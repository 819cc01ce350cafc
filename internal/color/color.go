// Package color models sRGB colors and the WCAG 2.0 luminance and contrast
// formulas computed from them.
//
// See https://www.w3.org/TR/WCAG20/#relativeluminancedef and
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
package color

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexPattern matches a 6-digit hex color with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// Color is an sRGB color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	// Black is #000000.
	Black = Color{0, 0, 0}
	// White is #ffffff.
	White = Color{255, 255, 255}
)

// Parse reads a color from a 6-digit hex string such as "#1d1d1f" or
// "1D1D1F". Shorthand forms ("#fff") are rejected.
func Parse(s string) (Color, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level palette literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsHex reports whether s is a well-formed 6-digit hex color.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Hex returns the lowercase "#rrggbb" form of c.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }
