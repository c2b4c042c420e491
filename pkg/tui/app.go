package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
	"github.com/quickfind/quickfind-terminal/pkg/widget"
)

// snapshotMsg tells the model the widget changed state
type snapshotMsg struct{}

// App is the Bubble Tea model of the quick-search terminal UI
type App struct {
	widget   *widget.Widget
	settings *models.Settings
	logger   *zap.Logger

	searchBar *SearchBar
	results   *ResultsList
	counter   *Counter
	panel     SettingsPanel
	status    *StatusManager

	snapshot    widget.Snapshot
	changes     chan struct{}
	unsubscribe func()

	width  int
	height int

	copyLink     func(string) error
	saveFacets   func(*facets.Store) error
	unsubscribed bool
}

// Option configures an App
type Option func(*App)

// WithClipboard replaces the system clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(a *App) { a.copyLink = fn }
}

// WithFacetSaver persists facet toggles; nil disables persistence
func WithFacetSaver(fn func(*facets.Store) error) Option {
	return func(a *App) { a.saveFacets = fn }
}

// WithLogger sets the logger for UI events
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.logger = l }
}

// NewApp creates the UI over a widget. Call Close when the program exits.
func NewApp(w *widget.Widget, settings *models.Settings, opts ...Option) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	a := &App{
		widget:     w,
		settings:   settings,
		logger:     zap.NewNop(),
		searchBar:  NewSearchBar(),
		results:    NewResultsList(60, settings.UI.MaxResultsHeight, settings.UI.ShowSubtext),
		counter:    NewCounter(settings.UI.AnimateCounts),
		status:     NewStatusManager(),
		changes:    make(chan struct{}, 1),
		copyLink:   clipboard.WriteAll,
		saveFacets: facets.Save,
	}
	for _, opt := range opts {
		opt(a)
	}

	// coalesce notifications; the model reads the latest snapshot anyway
	a.unsubscribe = w.OnChange(func(widget.Snapshot) {
		select {
		case a.changes <- struct{}{}:
		default:
		}
	})
	a.snapshot = w.Snapshot()

	return a
}

// Close stops listening to the widget
func (a *App) Close() {
	if !a.unsubscribed {
		a.unsubscribe()
		a.unsubscribed = true
	}
}

func (a *App) Init() tea.Cmd {
	return a.waitForChange()
}

func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-a.changes
		return snapshotMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.searchBar.SetWidth(msg.Width)
		a.results.SetSize(max(msg.Width-6, 20), a.resultsHeight())
		return a, nil

	case snapshotMsg:
		return a, tea.Batch(a.applySnapshot(), a.waitForChange())

	case counterTickMsg:
		return a, a.counter.Step()

	case ClearStatusMsg:
		a.status.Handle(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.panel.Open() {
		return a.handlePanelKey(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		if a.searchBar.Value() == "" {
			return a, tea.Quit
		}
		a.searchBar.Reset()
		a.widget.ClearQuery()
		return a, a.applySnapshot()
	case tea.KeyTab:
		return a, a.selectTab(nextTab(a.snapshot.OfferedTabs, a.snapshot.View.ActiveTab, 1))
	case tea.KeyShiftTab:
		return a, a.selectTab(nextTab(a.snapshot.OfferedTabs, a.snapshot.View.ActiveTab, -1))
	case tea.KeyUp:
		a.results.Move(-1)
		return a, nil
	case tea.KeyDown:
		a.results.Move(1)
		return a, nil
	case tea.KeyCtrlY:
		return a, a.copySelected()
	case tea.KeyCtrlF:
		a.panel.Toggle()
		return a, nil
	}

	before := a.searchBar.Value()
	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	if after := a.searchBar.Value(); after != before {
		if search.IsBlank(after) {
			a.widget.ClearQuery()
		} else {
			a.widget.SubmitQuery(after)
		}
		return a, tea.Batch(cmd, a.applySnapshot())
	}
	return a, cmd
}

func (a *App) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+f":
		a.panel.Toggle()
	case "up", "k":
		a.panel.Move(-1)
	case "down", "j":
		a.panel.Move(1)
	case " ", "space", "enter":
		return a, a.toggleFacet(a.panel.Current())
	}
	return a, nil
}

func (a *App) selectTab(tab models.Tab) tea.Cmd {
	if err := a.widget.SelectTab(tab); err != nil {
		return a.status.ShowError(err.Error())
	}
	return a.applySnapshot()
}

func (a *App) toggleFacet(facet models.FacetKey) tea.Cmd {
	enabled, err := a.widget.ToggleFacet(facet)
	if err != nil {
		return a.status.ShowError(err.Error())
	}

	cmds := []tea.Cmd{a.applySnapshot()}
	if a.saveFacets != nil {
		if err := a.saveFacets(a.widget.Facets()); err != nil {
			a.logger.Warn("failed to save facet settings", zap.Error(err))
			cmds = append(cmds, a.status.ShowWarning("Filter not saved"))
		}
	}

	a.logger.Debug("facet toggled from settings panel",
		zap.String("facet", string(facet)),
		zap.Bool("enabled", enabled))
	return tea.Batch(cmds...)
}

func (a *App) copySelected() tea.Cmd {
	item, ok := a.results.Selected()
	if !ok || !a.snapshot.Present() {
		return nil
	}

	link := search.DeepLink(a.settings.Search.LinkOrigin, item)
	if err := a.copyLink(link); err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(err))
		return a.status.ShowError("Could not copy link")
	}
	return a.status.ShowSuccess("Link copied!")
}

// applySnapshot pulls the latest widget state into the view
func (a *App) applySnapshot() tea.Cmd {
	a.snapshot = a.widget.Snapshot()
	a.results.SetItems(a.snapshot.View.Items)
	return tea.Batch(
		a.counter.SetTarget(a.snapshot.View.Counts),
		a.searchBar.SetSearching(a.snapshot.Phase == models.PhaseDebouncing),
	)
}

func (a *App) resultsHeight() int {
	h := a.settings.UI.MaxResultsHeight
	if a.height > 0 {
		// title, search bar, tabs, borders, status and help lines
		h = min(h, a.height-12)
	}
	return max(h, rowHeight)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	sections := []string{
		TitleStyle.Render(" quickfind"),
		a.searchBar.View(),
	}

	if a.panel.Open() {
		sections = append(sections, a.panel.View(a.snapshot.Facets))
	}

	// the surface stays while the hide linger runs, in the collapsing style
	if a.snapshot.Present() {
		style := CollapsingStyle
		if a.snapshot.Expanded {
			style = ExpandedStyle
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			RenderTabs(a.snapshot.OfferedTabs, a.counter),
			"",
			a.results.View(),
		)
		sections = append(sections, style.Width(max(a.width-4, 20)).Render(body))
	}

	if status, ok := a.status.GetStatus(); ok {
		sections = append(sections, StatusBarStyle.Render(status))
	}
	sections = append(sections, HelpStyle.Render(helpLine))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

const helpLine = " tab next tab • ↑/↓ select • ctrl+y copy link • ctrl+f filters • esc clear/quit"

// Run starts the full-screen program and blocks until it exits
func Run(w *widget.Widget, settings *models.Settings, opts ...Option) error {
	app := NewApp(w, settings, opts...)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
