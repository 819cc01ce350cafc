package report

import (
	"context"
	"fmt"
	"sort"

	"nathanbeddoewebdev/swatch/internal/palette"
)

// AuditPairs builds every foreground/background combination of p for the
// given modes. Foregrounds are all hex swatches outside the backgrounds and
// borders categories.
func AuditPairs(p palette.Palette, modes []palette.Mode) ([]palette.Pair, error) {
	backgrounds, ok := p.Category(palette.CategoryBackgrounds)
	if !ok {
		return nil, fmt.Errorf("palette has no %q category to audit against", palette.CategoryBackgrounds)
	}

	var pairs []palette.Pair
	for _, mode := range modes {
		bgs := backgrounds.Colors(mode)
		for _, cat := range p.Categories {
			if cat.Name == palette.CategoryBackgrounds || cat.Name == palette.CategoryBorders {
				continue
			}
			for _, fg := range cat.Colors(mode) {
				for _, bg := range bgs {
					name := fmt.Sprintf("%s.%s on %s.%s (%s)", cat.Name, fg.Name, backgrounds.Name, bg.Name, mode)
					pair, err := palette.NewPair(name, fg.Hex, bg.Hex)
					if err != nil {
						return nil, err
					}
					pairs = append(pairs, pair)
				}
			}
		}
	}
	return pairs, nil
}

// Audit evaluates every combination from AuditPairs and returns the results
// sorted worst first.
func Audit(ctx context.Context, p palette.Palette, modes []palette.Mode) ([]Result, error) {
	pairs, err := AuditPairs(p, modes)
	if err != nil {
		return nil, err
	}

	results, err := Evaluate(ctx, pairs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Ratio < results[j].Ratio
	})
	return results, nil
}
