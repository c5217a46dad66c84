package ui

import "github.com/charmbracelet/lipgloss"

// Brand colours (dark variants; light variants are set on the adaptive colours).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#D946EF"
)

// ThemeConfig selects the theme variant.
type ThemeConfig struct {
	NoColor bool
}

// Theme holds the lipgloss styles shared by the ui components.
type Theme struct {
	NoColor bool

	Border   lipgloss.Style
	Title    lipgloss.Style
	Name     lipgloss.Style
	Dir      lipgloss.Style
	ID       lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style
	Desc     lipgloss.Style
}

// NewTheme builds a Theme. With NoColor every style is plain.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor}
	base := lipgloss.NewStyle()

	if cfg.NoColor {
		t.Border = base.Border(lipgloss.RoundedBorder())
		t.Title = base.Bold(true)
		t.Name = base
		t.Dir = base
		t.ID = base
		t.Selected = base.Reverse(true)
		t.Muted = base
		t.Key = base.Bold(true)
		t.Desc = base
		return t
	}

	t.Border = base.Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#A21CAF", Dark: ColorBorder})
	t.Title = base.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary})
	t.Name = base.Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"})
	t.Dir = base.Foreground(lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText})
	t.ID = base.Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted})
	t.Selected = base.
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#FFFFFF"))
	t.Muted = base.Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted})
	t.Key = base.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess})
	t.Desc = base.Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	return t
}
