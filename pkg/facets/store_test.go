package facets

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()

	assert.True(t, s.IsEnabled(models.FacetFiles))
	assert.True(t, s.IsEnabled(models.FacetPeople))
	assert.False(t, s.IsEnabled(models.FacetChats))
	assert.False(t, s.IsEnabled(models.FacetLists))
	assert.Equal(t, []models.FacetKey{models.FacetFiles, models.FacetPeople}, s.Enabled())
}

func TestToggleFlipsOnlyOneFacet(t *testing.T) {
	for _, facet := range models.Facets {
		t.Run(string(facet), func(t *testing.T) {
			s := NewStore()
			before := s.Snapshot()

			enabled, err := s.Toggle(facet)
			require.NoError(t, err)
			assert.Equal(t, !before[facet], enabled)

			after := s.Snapshot()
			for _, other := range models.Facets {
				if other == facet {
					assert.NotEqual(t, before[other], after[other])
				} else {
					assert.Equal(t, before[other], after[other], "facet %s changed", other)
				}
			}

			_, err = s.Toggle(facet)
			require.NoError(t, err)
			assert.Equal(t, before, s.Snapshot(), "toggling twice restores the flags")
		})
	}
}

func TestToggleRejectsAll(t *testing.T) {
	s := NewStore()
	before := s.Snapshot()

	_, err := s.Toggle(models.FacetKey(models.TabAll))
	assert.True(t, errors.Is(err, ErrReservedFacet))
	assert.Equal(t, before, s.Snapshot())

	err = s.Set(models.FacetKey(models.TabAll), false)
	assert.True(t, errors.Is(err, ErrReservedFacet))
}

func TestToggleRejectsUnknown(t *testing.T) {
	s := NewStore()

	_, err := s.Toggle("Photos")
	assert.True(t, errors.Is(err, ErrUnknownFacet))
	assert.Equal(t, Defaults(), s.Snapshot())
}

func TestIsTabEnabled(t *testing.T) {
	s := NewStoreFrom(map[models.FacetKey]bool{})

	assert.True(t, s.IsTabEnabled(models.TabAll), "All is always offered")
	assert.False(t, s.IsTabEnabled(models.Tab(models.FacetFiles)))
	assert.False(t, s.IsTabEnabled(models.Tab("Photos")))

	require.NoError(t, s.Set(models.FacetFiles, true))
	assert.True(t, s.IsTabEnabled(models.Tab(models.FacetFiles)))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	snap[models.FacetChats] = true

	assert.False(t, s.IsEnabled(models.FacetChats))
}

func TestConcurrentToggle(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Toggle(models.FacetLists)
			_ = s.IsEnabled(models.FacetLists)
		}()
	}
	wg.Wait()

	assert.False(t, s.IsEnabled(models.FacetLists), "an even number of toggles is a no-op")
}

func TestLoadSave(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	require.NoError(t, os.Chdir(tempDir))

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s.Snapshot())

	settings := models.DefaultSettings()
	settings.Search.Debounce = 900 * time.Millisecond
	require.NoError(t, files.WriteSettings(settings))

	_, err = s.Toggle(models.FacetChats)
	require.NoError(t, err)
	require.NoError(t, Save(s))

	reloaded, err := Load()
	require.NoError(t, err)
	assert.True(t, reloaded.IsEnabled(models.FacetChats))

	saved, err := files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, 900*time.Millisecond, saved.Search.Debounce, "other sections are preserved")
}
