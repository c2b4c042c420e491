package facets

import (
	"fmt"

	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// Load builds a store from the project settings file
func Load() (*Store, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load facet settings: %w", err)
	}
	return NewStoreFrom(settings.Facets.Map()), nil
}

// Save writes the store's flags into the project settings file, leaving the
// other sections untouched
func Save(s *Store) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.Facets = models.FacetSettingsFrom(s.Snapshot())

	if err := files.WriteSettings(settings); err != nil {
		return fmt.Errorf("failed to save facet settings: %w", err)
	}
	return nil
}
