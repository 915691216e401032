package base

import "github.com/charmbracelet/lipgloss"

// ColorPalette defines a consistent color scheme. The token roles color
// highlighted source and token dumps.
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	Keyword    lipgloss.Color
	Operator   lipgloss.Color
	Number     lipgloss.Color
	String     lipgloss.Color
	Identifier lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Success:   lipgloss.Color("#10B981"), // Emerald
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate

	Keyword:    lipgloss.Color("#FF79C6"),
	Operator:   lipgloss.Color("#FFB86C"),
	Number:     lipgloss.Color("#BD93F9"),
	String:     lipgloss.Color("#F1FA8C"),
	Identifier: lipgloss.Color("#F8FAFC"),
}

// LightPalette is an optional light theme palette
var LightPalette = ColorPalette{
	Primary:   lipgloss.Color("#5A56E0"),
	Secondary: lipgloss.Color("#EE6FF8"),
	Success:   lipgloss.Color("#02BA84"),
	Error:     lipgloss.Color("#FF5F56"),
	Muted:     lipgloss.Color("#9B9B9B"),

	Keyword:    lipgloss.Color("#D6336C"),
	Operator:   lipgloss.Color("#E8590C"),
	Number:     lipgloss.Color("#7048E8"),
	String:     lipgloss.Color("#2B8A3E"),
	Identifier: lipgloss.Color("#1E1E2E"),
}

func adaptive(pick func(ColorPalette) lipgloss.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: string(pick(LightPalette)),
		Dark:  string(pick(DarkPalette)),
	}
}

// Adaptive colors pick the light or dark variant from the terminal background.
var (
	AdaptivePrimary    = adaptive(func(p ColorPalette) lipgloss.Color { return p.Primary })
	AdaptiveSecondary  = adaptive(func(p ColorPalette) lipgloss.Color { return p.Secondary })
	AdaptiveSuccess    = adaptive(func(p ColorPalette) lipgloss.Color { return p.Success })
	AdaptiveError      = adaptive(func(p ColorPalette) lipgloss.Color { return p.Error })
	AdaptiveMuted      = adaptive(func(p ColorPalette) lipgloss.Color { return p.Muted })
	AdaptiveKeyword    = adaptive(func(p ColorPalette) lipgloss.Color { return p.Keyword })
	AdaptiveOperator   = adaptive(func(p ColorPalette) lipgloss.Color { return p.Operator })
	AdaptiveNumber     = adaptive(func(p ColorPalette) lipgloss.Color { return p.Number })
	AdaptiveString     = adaptive(func(p ColorPalette) lipgloss.Color { return p.String })
	AdaptiveIdentifier = adaptive(func(p ColorPalette) lipgloss.Color { return p.Identifier })
)
