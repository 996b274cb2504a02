package render

import (
	"github.com/charmbracelet/lipgloss"

	"orbdyn/internal/domain"
)

// Palette holds the colors of one theme
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
}

var (
	darkPalette = Palette{
		Primary:   lipgloss.Color("#F97316"), // Orange
		Secondary: lipgloss.Color("#10B981"), // Green
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#EF4444"), // Red
		Text:      lipgloss.Color("#F9FAFB"),
	}

	lightPalette = Palette{
		Primary:   lipgloss.Color("#C2410C"),
		Secondary: lipgloss.Color("#047857"),
		Muted:     lipgloss.Color("#6B7280"),
		Warning:   lipgloss.Color("#B45309"),
		Error:     lipgloss.Color("#B91C1C"),
		Text:      lipgloss.Color("#111827"),
	}
)

// PaletteFor returns the palette of theme
func PaletteFor(theme domain.Theme) Palette {
	if theme == domain.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Styles are the lipgloss styles derived from a palette
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	ErrorMsg lipgloss.Style
	Favorite lipgloss.Style
	Badge    lipgloss.Style
	Box      lipgloss.Style

	priority map[domain.Priority]lipgloss.Style
}

// NewStyles builds the styles for theme
func NewStyles(theme domain.Theme) Styles {
	p := PaletteFor(theme)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(p.Text),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Success: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Favorite: lipgloss.NewStyle().
			Foreground(p.Warning),

		Badge: lipgloss.NewStyle().
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		priority: map[domain.Priority]lipgloss.Style{
			domain.PriorityHigh:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
			domain.PriorityMedium: lipgloss.NewStyle().Foreground(p.Warning),
			domain.PriorityLow:    lipgloss.NewStyle().Foreground(p.Secondary),
		},
	}
}

// Priority renders a priority label in its color
func (s Styles) Priority(p domain.Priority) string {
	style, ok := s.priority[p]
	if !ok {
		return ""
	}
	return style.Render(string(p))
}

// CategoryBadge renders name on its category color
func (s Styles) CategoryBadge(c domain.Category) string {
	return s.Badge.
		Background(lipgloss.Color(c.Color)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Render(c.Name)
}
