package color

import "errors"

// ErrInvalidFormat indicates a color string is not a 6-digit hex code.
// Parse wraps it with the offending input:
//
//	if errors.Is(err, color.ErrInvalidFormat) { ... }
var ErrInvalidFormat = errors.New("invalid color format: expected 6-digit hex such as #1d1d1f")
