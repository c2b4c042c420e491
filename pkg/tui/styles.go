package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for primary actions
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	// results surface while results are showing
	ExpandedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	// results surface during the hide linger
	CollapsingStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Foreground(lipgloss.Color(ColorDim)).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive)).
			Underline(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal))

	CountBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorSelected)).
			Padding(0, 1)

	ActiveCountBadgeStyle = CountBadgeStyle.
				Background(lipgloss.Color(ColorActive))

	SelectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorSelected)).
				Foreground(lipgloss.Color(ColorWhite))

	NameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite))

	SubtextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	EmptyTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive))
)

// statusColors maps catalog status tags to terminal colors
var statusColors = map[string]string{
	"red":    ColorDanger,
	"yellow": ColorWarning,
	"green":  ColorSuccess,
	"blue":   ColorPrimary,
}

// ItemIcon returns the glyph shown before an item's name
func ItemIcon(item models.ResultItem) string {
	switch it := item.(type) {
	case models.Person:
		glyph := it.AvatarGlyph
		if glyph == "" {
			glyph = "👤"
		}
		color, ok := statusColors[it.StatusColorTag]
		if !ok {
			return glyph
		}
		return glyph + lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
	case models.File:
		switch it.Subtype {
		case models.FileSubtypeImage:
			return "🖼"
		case models.FileSubtypeVideo:
			return "🎬"
		default:
			return "📄"
		}
	case models.Folder:
		return "📁"
	case models.Chat:
		return "💬"
	case models.List:
		return "☑"
	default:
		panic("tui: unknown result item variant")
	}
}
