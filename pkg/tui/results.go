package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

// rowHeight is the number of lines one result takes
const rowHeight = 2

// ResultsList renders the visible items in a scrollable viewport
type ResultsList struct {
	viewport    viewport.Model
	items       []models.ResultItem
	cursor      int
	width       int
	showSubtext bool
}

// NewResultsList creates a results list of the given size
func NewResultsList(width, height int, showSubtext bool) *ResultsList {
	return &ResultsList{
		viewport:    viewport.New(width, height),
		width:       width,
		showSubtext: showSubtext,
	}
}

// SetSize resizes the viewport
func (r *ResultsList) SetSize(width, height int) {
	r.width = width
	r.viewport.Width = width
	r.viewport.Height = height
	r.refresh()
}

// SetItems replaces the visible items, keeping the cursor in range
func (r *ResultsList) SetItems(items []models.ResultItem) {
	r.items = items
	if r.cursor >= len(items) {
		r.cursor = max(len(items)-1, 0)
	}
	r.refresh()
}

// Move shifts the cursor by delta, clamped to the list
func (r *ResultsList) Move(delta int) {
	if len(r.items) == 0 {
		return
	}
	r.cursor = min(max(r.cursor+delta, 0), len(r.items)-1)
	r.refresh()
}

// Selected returns the item under the cursor
func (r *ResultsList) Selected() (models.ResultItem, bool) {
	if len(r.items) == 0 {
		return nil, false
	}
	return r.items[r.cursor], true
}

// View renders the list or the empty state
func (r *ResultsList) View() string {
	if len(r.items) == 0 {
		return renderEmptyState(r.width)
	}
	return r.viewport.View()
}

func (r *ResultsList) refresh() {
	var b strings.Builder
	for i, item := range r.items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.renderRow(item, i == r.cursor))
	}
	r.viewport.SetContent(b.String())

	// keep the cursor row inside the viewport
	top := r.cursor * rowHeight
	if top < r.viewport.YOffset {
		r.viewport.SetYOffset(top)
	} else if bottom := top + rowHeight; bottom > r.viewport.YOffset+r.viewport.Height {
		r.viewport.SetYOffset(bottom - r.viewport.Height)
	}
}

func (r *ResultsList) renderRow(item models.ResultItem, selected bool) string {
	textWidth := uint(max(r.width-6, 10))

	name := truncate.StringWithTail(models.NameOf(item), textWidth, "…")
	line1 := ItemIcon(item) + " " + NameStyle.Render(name)

	line2 := ""
	if r.showSubtext {
		line2 = "   " + SubtextStyle.Render(truncate.StringWithTail(search.Subtext(item), textWidth, "…"))
	}

	row := lipgloss.JoinVertical(lipgloss.Left, line1, line2)
	if selected {
		return SelectedRowStyle.Width(r.width).Render(row)
	}
	return row
}

func renderEmptyState(width int) string {
	hint := "Try adjusting your search terms"
	if width > 0 {
		hint = wordwrap.String(hint, width)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		EmptyTitleStyle.Render("No results found"),
		HelpStyle.Render(hint),
	)
}
