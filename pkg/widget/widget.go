// Package widget is the quick-search engine behind every front end: it feeds
// query text through the debounce lifecycle, recomputes the filtered view
// and drives the delayed-hide visibility of the results surface.
package widget

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/pkg/clock"
	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/lifecycle"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
	"github.com/quickfind/quickfind-terminal/pkg/visibility"
)

// ErrInvalidTab is returned by SelectTab for tabs other than All and the facets
var ErrInvalidTab = errors.New("invalid tab")

// Snapshot is a read-only copy of the widget state
type Snapshot struct {
	Phase       models.SearchPhase       `json:"phase" yaml:"phase"`
	Visibility  models.VisibilityPhase   `json:"visibility" yaml:"visibility"`
	View        models.FilteredView      `json:"-" yaml:"-"`
	OfferedTabs []models.TabChip         `json:"offered_tabs" yaml:"offered_tabs"`
	Facets      map[models.FacetKey]bool `json:"facets" yaml:"facets"`
	// Expanded is true while results are logically showing
	Expanded bool `json:"expanded" yaml:"expanded"`
}

// Present reports whether the results surface should be rendered
func (s Snapshot) Present() bool {
	return s.Visibility != models.VisibilityUnmounted
}

// Widget is safe for concurrent use. Entry points and timer callbacks are
// serialized; change listeners run after the lock is released.
type Widget struct {
	mu sync.Mutex

	engine   *search.Engine
	store    *facets.Store
	search   *lifecycle.Controller
	surface  *visibility.Controller
	logger   *zap.Logger
	observer Observer

	query     string
	activeTab models.Tab
	view      models.FilteredView
	tabs      []models.TabChip
	changed   bool

	listeners map[int]func(Snapshot)
	nextID    int
}

// New creates a widget over a fixed catalog
func New(catalog []models.ResultItem, opts ...Option) *Widget {
	cfg := config{
		scheduler: clock.Real(),
		debounce:  lifecycle.DefaultDebounce,
		linger:    visibility.DefaultLinger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.store == nil {
		cfg.store = facets.NewStore()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.observer == nil {
		cfg.observer = nopObserver{}
	}

	w := &Widget{
		engine:    search.NewEngine(catalog),
		store:     cfg.store,
		logger:    cfg.logger,
		observer:  cfg.observer,
		activeTab: models.TabAll,
		listeners: make(map[int]func(Snapshot)),
	}

	scheduler := lockedScheduler{Scheduler: cfg.scheduler, w: w}
	w.surface = visibility.New(scheduler, cfg.linger, w.visibilityChanged)
	w.search = lifecycle.New(scheduler, cfg.debounce, w.phaseChanged)
	w.recompute()

	return w
}

// SubmitQuery feeds new query text. Counts and the visible list are updated
// before it returns, whatever the debounce phase.
func (w *Widget) SubmitQuery(text string) {
	w.update(func() error {
		w.query = text
		w.observer.QuerySubmitted(text)
		w.recompute()
		w.search.Submit(text)
		return nil
	})
}

// ClearQuery empties the query and returns to Idle synchronously
func (w *Widget) ClearQuery() {
	w.update(func() error {
		w.query = ""
		w.recompute()
		w.search.Clear()
		return nil
	})
}

// SelectTab sets the active tab. An unknown tab selects All and returns
// ErrInvalidTab.
func (w *Widget) SelectTab(tab models.Tab) error {
	return w.update(func() error {
		if !tab.Valid() {
			w.observer.TabSelected(tab, false)
			w.activeTab = models.TabAll
			w.recompute()
			return fmt.Errorf("%w: %q", ErrInvalidTab, tab)
		}
		w.observer.TabSelected(tab, true)
		w.activeTab = tab
		w.recompute()
		return nil
	})
}

// ToggleFacet flips whether a facet's tab is offered and returns its new
// value. The active tab is never reassigned.
func (w *Widget) ToggleFacet(facet models.FacetKey) (bool, error) {
	var enabled bool
	err := w.update(func() error {
		var err error
		enabled, err = w.store.Toggle(facet)
		if err != nil {
			return err
		}
		w.observer.FacetToggled(facet, enabled)
		w.logger.Debug("facet toggled", zap.String("facet", string(facet)), zap.Bool("enabled", enabled))
		w.recompute()
		return nil
	})
	return enabled, err
}

// Snapshot returns the current state
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Facets returns the store backing the offered tabs
func (w *Widget) Facets() *facets.Store {
	return w.store
}

// Catalog returns a copy of the searched items
func (w *Widget) Catalog() []models.ResultItem {
	return w.engine.Items()
}

// Debounce returns the settle duration in effect
func (w *Widget) Debounce() time.Duration {
	return w.search.Debounce()
}

// OnChange registers fn to receive a snapshot after every state change,
// including timer-driven ones. The returned func unregisters it.
func (w *Widget) OnChange(fn func(Snapshot)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.listeners[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Close cancels pending timers. The widget stays readable.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.search.Stop()
	w.surface.Stop()
}

func (w *Widget) update(fn func() error) error {
	w.mu.Lock()
	err := fn()

	var snap Snapshot
	var listeners []func(Snapshot)
	if w.changed {
		w.changed = false
		snap = w.snapshotLocked()
		listeners = w.listenersLocked()
	}
	w.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
	return err
}

func (w *Widget) recompute() {
	w.view, w.tabs = w.engine.Compute(w.query, w.activeTab, w.store)
	w.observer.ResultsComputed(w.view.Counts)
	w.changed = true
}

func (w *Widget) phaseChanged(from, to models.SearchPhase) {
	w.logger.Debug("search phase changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("query", w.query))
	w.observer.SearchPhaseChanged(from, to)
	w.surface.FollowSearch(to)
	w.changed = true
}

func (w *Widget) visibilityChanged(from, to models.VisibilityPhase) {
	w.logger.Debug("visibility changed", zap.Stringer("from", from), zap.Stringer("to", to))
	w.observer.VisibilityChanged(from, to)
	w.changed = true
}

func (w *Widget) snapshotLocked() Snapshot {
	phase := w.search.Phase()

	view := w.view
	view.Items = append([]models.ResultItem(nil), w.view.Items...)

	return Snapshot{
		Phase:       phase,
		Visibility:  w.surface.Phase(),
		View:        view,
		OfferedTabs: append([]models.TabChip(nil), w.tabs...),
		Facets:      w.store.Snapshot(),
		Expanded:    phase == models.PhaseResultsReady,
	}
}

func (w *Widget) listenersLocked() []func(Snapshot) {
	ids := make([]int, 0, len(w.listeners))
	for id := range w.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		out = append(out, w.listeners[id])
	}
	return out
}

// lockedScheduler runs timer callbacks under the widget lock so they are
// serialized with the entry points
type lockedScheduler struct {
	clock.Scheduler
	w *Widget
}

func (s lockedScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	return s.Scheduler.AfterFunc(d, func() {
		s.w.update(func() error {
			f()
			return nil
		})
	})
}
