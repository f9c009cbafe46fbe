package render

import "github.com/charmbracelet/lipgloss"

// Theme is an ordered 4-color cycle applied round-robin to successive cells.
type Theme struct {
	Name   string
	Colors [4]lipgloss.Color
}

// Cell returns the color assigned to the i-th cell of a line.
func (t Theme) Cell(i int) lipgloss.Color {
	return t.Colors[i%len(t.Colors)]
}

// Available themes
var (
	ThemeClassic = Theme{
		Name: "classic",
		Colors: [4]lipgloss.Color{
			"#d06040", // rust
			"#20d020", // green
			"#2080f0", // blue
			"#d080d0", // orchid
		},
	}

	ThemeRetro = Theme{
		Name: "retro",
		Colors: [4]lipgloss.Color{
			"#00ff00", // green phosphor
			"#00cc00",
			"#88ff88",
			"#005500",
		},
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Colors: [4]lipgloss.Color{
			"#0077be", // ocean blue
			"#00a8cc",
			"#ffd700",
			"#4488aa",
		},
	}

	ThemeCyberpunk = Theme{
		Name: "cyberpunk",
		Colors: [4]lipgloss.Color{
			"#ff00ff", // magenta
			"#00ffff", // cyan
			"#ffff00", // yellow
			"#ff8800",
		},
	}
)

var themes = []Theme{ThemeClassic, ThemeRetro, ThemeOcean, ThemeCyberpunk}

// DefaultTheme is the palette used when none is selected.
var DefaultTheme = ThemeClassic

// Themes lists the available theme names in presentation order.
func Themes() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Lookup resolves a theme by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the theme following the named one, wrapping around. Unknown
// names advance to the first theme.
func Next(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
