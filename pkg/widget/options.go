package widget

import (
	"time"

	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/pkg/clock"
	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// Option configures a Widget
type Option func(*config)

type config struct {
	scheduler clock.Scheduler
	debounce  time.Duration
	linger    time.Duration
	store     *facets.Store
	logger    *zap.Logger
	observer  Observer
}

// WithScheduler replaces the wall clock, typically with a clock.Fake
func WithScheduler(s clock.Scheduler) Option {
	return func(c *config) { c.scheduler = s }
}

// WithDebounce sets the settle duration
func WithDebounce(d time.Duration) Option {
	return func(c *config) { c.debounce = d }
}

// WithLinger sets the hide delay of the results surface
func WithLinger(d time.Duration) Option {
	return func(c *config) { c.linger = d }
}

// WithFacets starts from explicit facet flags instead of the defaults
func WithFacets(flags map[models.FacetKey]bool) Option {
	return func(c *config) { c.store = facets.NewStoreFrom(flags) }
}

// WithFacetStore shares an existing store, e.g. one loaded from settings
func WithFacetStore(s *facets.Store) Option {
	return func(c *config) { c.store = s }
}

// WithLogger sets the logger used for transition logging
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithObserver receives every state change, e.g. for metrics
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithSettings applies the search and facet sections of the settings file
func WithSettings(s *models.Settings) Option {
	return func(c *config) {
		c.debounce = s.Search.Debounce
		c.linger = s.Search.Linger
		c.store = facets.NewStoreFrom(s.Facets.Map())
	}
}
