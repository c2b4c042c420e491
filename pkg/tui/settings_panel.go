package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// SettingsPanel lists the facets with a checkbox each
type SettingsPanel struct {
	open   bool
	cursor int
}

// Toggle opens or closes the panel
func (p *SettingsPanel) Toggle() {
	p.open = !p.open
}

// Open reports whether the panel is showing
func (p *SettingsPanel) Open() bool {
	return p.open
}

// Move shifts the cursor over the facets
func (p *SettingsPanel) Move(delta int) {
	n := len(models.Facets)
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Current returns the facet under the cursor
func (p *SettingsPanel) Current() models.FacetKey {
	return models.Facets[p.cursor]
}

// View renders the panel from the current facet flags
func (p *SettingsPanel) View(flags map[models.FacetKey]bool) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Filters") + "\n")
	for i, facet := range models.Facets {
		box := "[ ]"
		if flags[facet] {
			box = "[x]"
		}
		line := box + " " + string(facet)
		if i == p.cursor {
			line = SelectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(HelpStyle.Render("space toggle • esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorInactive)).
		Padding(0, 1).
		Render(b.String())
}
