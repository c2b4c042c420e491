// Package facets holds which result categories are offered as tabs.
package facets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

var (
	// ErrReservedFacet is returned when a caller tries to toggle All
	ErrReservedFacet = errors.New("the All facet is always enabled and cannot be toggled")
	// ErrUnknownFacet is returned for keys outside Files, People, Chats and Lists
	ErrUnknownFacet = errors.New("unknown facet")
)

// Store is the facet settings store. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	enabled map[models.FacetKey]bool
}

// Defaults returns the initial facet flags
func Defaults() map[models.FacetKey]bool {
	return models.DefaultSettings().Facets.Map()
}

// NewStore creates a store with the default flags
func NewStore() *Store {
	return NewStoreFrom(Defaults())
}

// NewStoreFrom creates a store from explicit flags. Facets missing from
// flags are disabled and unknown keys are ignored.
func NewStoreFrom(flags map[models.FacetKey]bool) *Store {
	s := &Store{enabled: make(map[models.FacetKey]bool, len(models.Facets))}
	for _, f := range models.Facets {
		s.enabled[f] = flags[f]
	}
	return s
}

// Toggle flips exactly one facet and returns its new value
func (s *Store) Toggle(facet models.FacetKey) (bool, error) {
	if err := validate(facet); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled[facet] = !s.enabled[facet]
	return s.enabled[facet], nil
}

// Set assigns one facet
func (s *Store) Set(facet models.FacetKey, enabled bool) error {
	if err := validate(facet); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled[facet] = enabled
	return nil
}

// IsEnabled reports whether a facet's tab is offered
func (s *Store) IsEnabled(facet models.FacetKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled[facet]
}

// IsTabEnabled reports whether a tab is offered; All always is
func (s *Store) IsTabEnabled(tab models.Tab) bool {
	if tab == models.TabAll {
		return true
	}
	facet, ok := tab.Facet()
	if !ok {
		return false
	}
	return s.IsEnabled(facet)
}

// Snapshot returns a copy of every facet flag
func (s *Store) Snapshot() map[models.FacetKey]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.FacetKey]bool, len(s.enabled))
	for k, v := range s.enabled {
		out[k] = v
	}
	return out
}

// Enabled lists the enabled facets in tab order
func (s *Store) Enabled() []models.FacetKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FacetKey
	for _, f := range models.Facets {
		if s.enabled[f] {
			out = append(out, f)
		}
	}
	return out
}

func validate(facet models.FacetKey) error {
	if models.Tab(facet) == models.TabAll {
		return fmt.Errorf("cannot toggle %q: %w", facet, ErrReservedFacet)
	}
	if !facet.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFacet, facet)
	}
	return nil
}
