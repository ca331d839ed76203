package cli

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/models"
	"taskboard/internal/settings"
)

// palette is a terminal colour scheme.
type palette struct {
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color
	Primary       lipgloss.Color
	Border        lipgloss.Color

	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}

var darkPalette = palette{
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),
	Primary:       lipgloss.Color("#7aa2f7"),
	Border:        lipgloss.Color("#3b4261"),
	High:          lipgloss.Color("#f7768e"),
	Medium:        lipgloss.Color("#e0af68"),
	Low:           lipgloss.Color("#9ece6a"),
}

var lightPalette = palette{
	Foreground:    lipgloss.Color("#343b58"),
	ForegroundDim: lipgloss.Color("#9699a3"),
	Primary:       lipgloss.Color("#34548a"),
	Border:        lipgloss.Color("#cbccd1"),
	High:          lipgloss.Color("#8c4351"),
	Medium:        lipgloss.Color("#8f5e15"),
	Low:           lipgloss.Color("#385f0d"),
}

// styles holds the pre-computed styles for list and board output.
type styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	ID       lipgloss.Style
	Done     lipgloss.Style
	Overdue  lipgloss.Style
	Tag      lipgloss.Style
	Column   lipgloss.Style
	Priority map[models.Priority]lipgloss.Style
}

// newStyles picks the palette for theme. The system theme uses the terminal's
// background.
func newStyles(theme settings.Theme) *styles {
	p := darkPalette
	switch theme {
	case settings.ThemeLight:
		p = lightPalette
	case settings.ThemeSystem:
		if !lipgloss.HasDarkBackground() {
			p = lightPalette
		}
	}

	return &styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.ForegroundDim),

		ID: lipgloss.NewStyle().
			Foreground(p.ForegroundDim),

		Done: lipgloss.NewStyle().
			Foreground(p.ForegroundDim).
			Strikethrough(true),

		Overdue: lipgloss.NewStyle().
			Foreground(p.High).
			Bold(true),

		Tag: lipgloss.NewStyle().
			Foreground(p.Primary),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			Width(32),

		Priority: map[models.Priority]lipgloss.Style{
			models.PriorityHigh:   lipgloss.NewStyle().Foreground(p.High).Bold(true),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(p.Medium),
			models.PriorityLow:    lipgloss.NewStyle().Foreground(p.Low),
		},
	}
}
