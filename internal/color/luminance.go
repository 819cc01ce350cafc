package color

import "math"

// Relative luminance coefficients and the sRGB linearization breakpoint as
// published in WCAG 2.0. Do not substitute the IEC 0.04045 breakpoint.
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722

	linearBreakpoint = 0.03928
)

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c Color) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return redWeight*r + greenWeight*g + blueWeight*b
}

func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= linearBreakpoint {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b. The result
// is in [1, 21] and does not depend on argument order.
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
