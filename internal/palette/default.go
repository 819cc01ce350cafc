package palette

// Default returns the built-in palette. Each call returns a fresh copy.
func Default() Palette {
	return Palette{
		Categories: []Category{
			{
				Name: CategoryBackgrounds,
				Swatches: []Swatch{
					{Name: "primary", Light: "#ffffff", Dark: "#000000"},
					{Name: "secondary", Light: "#f5f5f7", Dark: "#1d1d1f"},
					{Name: "tertiary", Light: "#e8e8ed", Dark: "#2c2c2e"},
				},
			},
			{
				Name: CategoryText,
				Swatches: []Swatch{
					{Name: "primary", Light: "#1d1d1f", Dark: "#f5f5f7"},
					{Name: "secondary", Light: "#86868b", Dark: "#a1a1a6"},
					{Name: "tertiary", Light: "#6e6e73", Dark: "#6e6e73"},
				},
			},
			{
				Name: CategoryAccents,
				Swatches: []Swatch{
					{Name: "blue", Light: "#0071e3", Dark: "#0a84ff"},
					{Name: "green", Light: "#30d158", Dark: "#32d74b"},
					{Name: "orange", Light: "#ff9500", Dark: "#ff9f0a"},
					{Name: "red", Light: "#ff3b30", Dark: "#ff453a"},
					{Name: "purple", Light: "#bf5af2", Dark: "#bf5af2"},
					{Name: "pink", Light: "#ff2d55", Dark: "#ff375f"},
					{Name: "yellow", Light: "#ffd60a", Dark: "#ffd60a"},
				},
			},
			{
				Name: CategoryBorders,
				Swatches: []Swatch{
					{Name: "primary", Light: "rgba(0, 0, 0, 0.1)", Dark: "rgba(255, 255, 255, 0.1)"},
					{Name: "secondary", Light: "rgba(0, 0, 0, 0.05)", Dark: "rgba(255, 255, 255, 0.05)"},
				},
			},
		},
		Pairs: []PairSpec{
			{Name: "Text Primary on BG Primary (Light)", FG: "#1d1d1f", BG: "#ffffff"},
			{Name: "Text Secondary on BG Primary (Light)", FG: "#86868b", BG: "#ffffff"},
			{Name: "Blue on White", FG: "#0071e3", BG: "#ffffff"},
			{Name: "Text Primary on BG Primary (Dark)", FG: "#f5f5f7", BG: "#000000"},
			{Name: "Text Secondary on BG Primary (Dark)", FG: "#a1a1a6", BG: "#000000"},
			{Name: "Blue (Dark) on Black", FG: "#0a84ff", BG: "#000000"},
		},
	}
}
