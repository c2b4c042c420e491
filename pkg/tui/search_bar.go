package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the query input. It shows a spinner in place of the search
// icon while the query is debouncing.
type SearchBar struct {
	input     textinput.Model
	spinner   spinner.Model
	searching bool
	width     int
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search people, files, chats and lists..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return &SearchBar{
		input:   ti,
		spinner: sp,
	}
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// borders, padding, icon and the gap after it
	s.input.Width = max(width-12, 10)
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// SetSearching switches between the spinner and the search icon. The
// returned command starts the spinner.
func (s *SearchBar) SetSearching(searching bool) tea.Cmd {
	if searching == s.searching {
		return nil
	}
	s.searching = searching
	if searching {
		return s.spinner.Tick
	}
	return nil
}

// Searching reports whether the spinner is showing
func (s *SearchBar) Searching() bool {
	return s.searching
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !s.searching {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tick)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1)
	if s.width > 4 {
		searchStyle = searchStyle.Width(s.width - 4)
	}

	var icon string
	if s.searching {
		icon = " " + s.spinner.View() + " "
	} else {
		icon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", s.input.View())

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(searchStyle.Render(content))
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
