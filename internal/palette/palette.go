// Package palette describes a design-system color palette: categories of
// light/dark swatches plus the foreground/background pairs to check.
//
// A Palette is plain configuration. It is built once (Default or Load) and
// passed by value into the report and CSS generators.
package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"nathanbeddoewebdev/swatch/internal/color"
)

// Mode selects the light or dark variant of a swatch.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeLight, ModeDark}

// ParseMode resolves a user-supplied mode name. "all" and "" return both.
func ParseMode(s string) ([]Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "both":
		return Modes, nil
	case string(ModeLight):
		return []Mode{ModeLight}, nil
	case string(ModeDark):
		return []Mode{ModeDark}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (valid: light, dark, all)", s)
	}
}

// Well-known category names. Backgrounds are audited against every other
// category except borders.
const (
	CategoryBackgrounds = "backgrounds"
	CategoryText        = "text"
	CategoryAccents     = "accents"
	CategoryBorders     = "borders"
)

// namePattern matches category and swatch names. Both end up in CSS custom
// property names.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Swatch is a named color with a value per mode. Values are CSS color
// expressions; only 6-digit hex values take part in contrast checks.
type Swatch struct {
	Name  string `yaml:"name" json:"name"`
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

// Value returns the swatch value for m.
func (s Swatch) Value(m Mode) string {
	if m == ModeDark {
		return s.Dark
	}
	return s.Light
}

// Category is an ordered group of swatches.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Swatches []Swatch `yaml:"swatches" json:"swatches"`
}

// NamedColor is a swatch value that parsed as a hex color.
type NamedColor struct {
	Name  string
	Hex   string
	Color color.Color
}

// Colors returns the hex-valued swatches of c for mode m, skipping values
// such as rgba(...) that cannot be evaluated.
func (c Category) Colors(m Mode) []NamedColor {
	var out []NamedColor
	for _, s := range c.Swatches {
		v := s.Value(m)
		parsed, err := color.Parse(v)
		if err != nil {
			continue
		}
		out = append(out, NamedColor{Name: s.Name, Hex: v, Color: parsed})
	}
	return out
}

// PairSpec is the unparsed form of a Pair as it appears in palette files.
type PairSpec struct {
	Name string `yaml:"name" json:"name"`
	FG   string `yaml:"fg" json:"fg"`
	BG   string `yaml:"bg" json:"bg"`
}

// Palette is a complete color configuration.
type Palette struct {
	Categories []Category `yaml:"categories" json:"categories"`
	Pairs      []PairSpec `yaml:"pairs,omitempty" json:"pairs,omitempty"`
}

// Category returns the category with the given name.
func (p Palette) Category(name string) (Category, bool) {
	for _, c := range p.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// ColorPairs parses every pair definition in order.
func (p Palette) ColorPairs() ([]Pair, error) {
	pairs := make([]Pair, 0, len(p.Pairs))
	for _, spec := range p.Pairs {
		pair, err := NewPair(spec.Name, spec.FG, spec.BG)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// Validate checks names are present, unique and usable in CSS, that every
// swatch has a light and a dark value, and that every pair parses.
func (p Palette) Validate() error {
	var errs []error

	seenCategories := make(map[string]bool, len(p.Categories))
	for i, c := range p.Categories {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("category %d has no name", i))
			continue
		}
		if !namePattern.MatchString(c.Name) {
			errs = append(errs, fmt.Errorf("category %q: name may only contain letters, digits, '-' and '_'", c.Name))
		}
		if seenCategories[c.Name] {
			errs = append(errs, fmt.Errorf("duplicate category %q", c.Name))
		}
		seenCategories[c.Name] = true

		seenSwatches := make(map[string]bool, len(c.Swatches))
		for j, s := range c.Swatches {
			if strings.TrimSpace(s.Name) == "" {
				errs = append(errs, fmt.Errorf("category %q: swatch %d has no name", c.Name, j))
				continue
			}
			if !namePattern.MatchString(s.Name) {
				errs = append(errs, fmt.Errorf("category %q: swatch %q: name may only contain letters, digits, '-' and '_'", c.Name, s.Name))
			}
			if seenSwatches[s.Name] {
				errs = append(errs, fmt.Errorf("category %q: duplicate swatch %q", c.Name, s.Name))
			}
			seenSwatches[s.Name] = true

			for _, m := range Modes {
				if strings.TrimSpace(s.Value(m)) == "" {
					errs = append(errs, fmt.Errorf("category %q: swatch %q has no %s value", c.Name, s.Name, m))
				}
			}
		}
	}

	for i, spec := range p.Pairs {
		if strings.TrimSpace(spec.Name) == "" {
			errs = append(errs, fmt.Errorf("pair %d has no name", i))
			continue
		}
		if _, err := NewPair(spec.Name, spec.FG, spec.BG); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
