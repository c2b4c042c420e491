package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFacet(t *testing.T) {
	tests := []struct {
		input string
		want  FacetKey
		ok    bool
	}{
		{"files", FacetFiles, true},
		{"File", FacetFiles, true},
		{" people ", FacetPeople, true},
		{"person", FacetPeople, true},
		{"chat", FacetChats, true},
		{"LISTS", FacetLists, true},
		{"all", FacetKey("all"), false},
		{"folders", FacetKey("folders"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFacet(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTab(t *testing.T) {
	tab, ok := ParseTab("ALL")
	assert.True(t, ok)
	assert.Equal(t, TabAll, tab)

	tab, ok = ParseTab("chats")
	assert.True(t, ok)
	assert.Equal(t, Tab(FacetChats), tab)

	_, ok = ParseTab("Photos")
	assert.False(t, ok)
}

func TestTabFacet(t *testing.T) {
	_, ok := TabAll.Facet()
	assert.False(t, ok, "All is not a facet")
	assert.True(t, TabAll.Valid())

	f, ok := Tab("Lists").Facet()
	assert.True(t, ok)
	assert.Equal(t, FacetLists, f)

	assert.False(t, Tab("Photos").Valid())
	assert.False(t, FacetKey("All").Valid())
}

func TestCountsGetAndAdd(t *testing.T) {
	var c Counts
	c.Add(FacetFiles)
	c.Add(FacetFiles)
	c.Add(FacetChats)
	c.Add(FacetKey("bogus"))

	assert.Equal(t, 2, c.Get(Tab(FacetFiles)))
	assert.Equal(t, 1, c.Get(Tab(FacetChats)))
	assert.Equal(t, 0, c.Get(Tab(FacetPeople)))
	assert.Equal(t, 0, c.Get(Tab("bogus")))
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "debouncing", PhaseDebouncing.String())
	assert.Equal(t, "results_ready", PhaseResultsReady.String())
	assert.Equal(t, "hiding_pending", VisibilityHidingPending.String())

	text, err := VisibilityUnmounted.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "unmounted", string(text))
}
