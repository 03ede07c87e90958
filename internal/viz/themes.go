package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the spin palette and chrome colors of the viewer.
type Theme struct {
	Name   string
	Up     lipgloss.Color
	Down   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Up:     lipgloss.Color("#f5f5f5"),
		Down:   lipgloss.Color("#1a1a1a"),
		Accent: lipgloss.Color("#00ccff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Up:     lipgloss.Color("#00a8cc"),
		Down:   lipgloss.Color("#001a33"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Up:     lipgloss.Color("#feca57"),
		Down:   lipgloss.Color("#2d1b2e"),
		Accent: lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Up:     lipgloss.Color("#00ff00"), // Green phosphor
		Down:   lipgloss.Color("#001100"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeOcean,
		ThemeSunset,
		ThemeRetroGreen,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
