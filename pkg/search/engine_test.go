package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

type facetMap map[models.FacetKey]bool

func (m facetMap) IsEnabled(f models.FacetKey) bool { return m[f] }

var defaultFacets = facetMap{
	models.FacetFiles:  true,
	models.FacetPeople: true,
}

var allFacets = facetMap{
	models.FacetFiles:  true,
	models.FacetPeople: true,
	models.FacetChats:  true,
	models.FacetLists:  true,
}

func sampleCatalog() []models.ResultItem {
	return []models.ResultItem{
		models.Person{Name: "Caroline Dribsson", Status: "Unactivated"},
		models.Person{Name: "Adam Cadribean", Status: "Active 1w ago"},
		models.File{Name: "final_dribbble_presentation.jpg", Location: "in Presentations", Time: "Edited 1w ago", Subtype: models.FileSubtypeImage},
		models.Person{Name: "Margareth Cendribgssen", Status: "Active 1w ago"},
		models.File{Name: "dribbble_animation.avi", Location: "in Videos", Time: "Added 1y ago", Subtype: models.FileSubtypeVideo},
		models.Folder{Name: "Dribbble Folder", Count: "12 Files", Location: "in Projects", Time: "Edited 2m ago"},
		models.Chat{Name: "Design Team Discussion", LastMessage: "Hey, can you review the latest mockups?", Time: "2h ago", ParticipantCount: 5},
		models.List{Name: "Project Checklist", ItemCount: 12, CompletedCount: 8, Time: "Updated 1d ago"},
	}
}

func TestComputePersonAndFileScenario(t *testing.T) {
	engine := NewEngine([]models.ResultItem{
		models.Person{Name: "Caroline Dribsson"},
		models.File{Name: "final_dribbble_presentation.jpg", Location: "in Presentations"},
	})

	view, _ := engine.Compute("DRIB", models.TabAll, defaultFacets)
	assert.Equal(t, models.Counts{All: 2, People: 1, Files: 1}, view.Counts)
	assert.Len(t, view.Items, 2)

	view, _ = engine.Compute("DRIB", models.Tab(models.FacetFiles), defaultFacets)
	require.Len(t, view.Items, 1)
	assert.IsType(t, models.File{}, view.Items[0])
	assert.Equal(t, models.Counts{All: 2, People: 1, Files: 1}, view.Counts)

	// "dribb" is not a substring of "Dribsson"
	view, _ = engine.Compute("dribb", models.TabAll, defaultFacets)
	assert.Equal(t, models.Counts{All: 1, Files: 1}, view.Counts)
}

func TestComputeDisabledFacetStillCounted(t *testing.T) {
	engine := NewEngine([]models.ResultItem{
		models.Chat{Name: "Release Planning"},
		models.Chat{Name: "Launch", LastMessage: "release is green"},
		models.Chat{Name: "Release Retro"},
		models.File{Name: "notes.md"},
	})

	view, tabs := engine.Compute("release", models.TabAll, defaultFacets)
	assert.Equal(t, 3, view.Counts.Chats)
	assert.Equal(t, 3, view.Counts.All)

	for _, chip := range tabs {
		assert.NotEqual(t, models.Tab(models.FacetChats), chip.Tab, "disabled facet must not be offered")
	}
}

func TestComputeEmptyQuery(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	for _, query := range []string{"", "   ", "\t\n"} {
		view, tabs := engine.Compute(query, models.TabAll, allFacets)
		assert.Empty(t, view.Items)
		assert.Equal(t, models.Counts{}, view.Counts)
		require.Len(t, tabs, 5)
		for _, chip := range tabs {
			assert.Zero(t, chip.Count)
		}
	}
}

func TestComputeCountsSumToAll(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	for _, query := range []string{"drib", "a", "e", "in", "project", "zzz", "1"} {
		t.Run(query, func(t *testing.T) {
			view, _ := engine.Compute(query, models.TabAll, allFacets)
			c := view.Counts
			assert.Equal(t, c.All, c.Files+c.People+c.Chats+c.Lists)
			assert.Equal(t, c.All, len(engine.Match(query)))
		})
	}
}

func TestComputeCountsInvariantUnderTabAndSettings(t *testing.T) {
	engine := NewEngine(sampleCatalog())
	settings := []FacetReader{defaultFacets, allFacets, facetMap{}, nil}

	base, _ := engine.Compute("a", models.TabAll, allFacets)
	for _, tab := range append(models.Tabs, models.Tab("bogus")) {
		for i, s := range settings {
			t.Run(fmt.Sprintf("%s/%d", tab, i), func(t *testing.T) {
				view, _ := engine.Compute("a", tab, s)
				assert.Equal(t, base.Counts, view.Counts)
			})
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	first, firstTabs := engine.Compute("drib", models.Tab(models.FacetPeople), defaultFacets)
	second, secondTabs := engine.Compute("drib", models.Tab(models.FacetPeople), defaultFacets)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTabs, secondTabs)
}

func TestComputePreservesCatalogOrder(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	view, _ := engine.Compute("drib", models.TabAll, allFacets)
	names := make([]string, 0, len(view.Items))
	for _, item := range view.Items {
		names = append(names, models.NameOf(item))
	}

	assert.Equal(t, []string{
		"Caroline Dribsson",
		"Adam Cadribean",
		"final_dribbble_presentation.jpg",
		"Margareth Cendribgssen",
		"dribbble_animation.avi",
		"Dribbble Folder",
	}, names)
	assert.Equal(t, models.Counts{All: 6, People: 3, Files: 3}, view.Counts)
}

func TestComputeFilesTabIncludesFolders(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	view, _ := engine.Compute("dribbble", models.Tab(models.FacetFiles), defaultFacets)
	require.Len(t, view.Items, 3)
	assert.IsType(t, models.Folder{}, view.Items[2])
}

func TestComputeUnknownTabFiltersAsAll(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	all, _ := engine.Compute("drib", models.TabAll, defaultFacets)
	bogus, _ := engine.Compute("drib", models.Tab("Photos"), defaultFacets)
	assert.Equal(t, all.Items, bogus.Items)
}

func TestComputeDisabledActiveTabStillFilters(t *testing.T) {
	engine := NewEngine(sampleCatalog())

	view, tabs := engine.Compute("checklist", models.Tab(models.FacetLists), defaultFacets)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Project Checklist", models.NameOf(view.Items[0]))
	assert.Equal(t, models.Tab(models.FacetLists), view.ActiveTab)

	for _, chip := range tabs {
		assert.False(t, chip.Active, "an un-offered active tab marks no chip")
	}
}

func TestOfferedTabs(t *testing.T) {
	counts := models.Counts{All: 7, Files: 3, People: 2, Chats: 1, Lists: 1}

	tests := []struct {
		name     string
		active   models.Tab
		settings FacetReader
		want     []models.TabChip
	}{
		{
			name:     "defaults",
			active:   models.TabAll,
			settings: defaultFacets,
			want: []models.TabChip{
				{Tab: models.TabAll, Count: 7, Active: true},
				{Tab: "Files", Count: 3},
				{Tab: "People", Count: 2},
			},
		},
		{
			name:     "all enabled, files active",
			active:   "Files",
			settings: allFacets,
			want: []models.TabChip{
				{Tab: models.TabAll, Count: 7},
				{Tab: "Files", Count: 3, Active: true},
				{Tab: "People", Count: 2},
				{Tab: "Chats", Count: 1},
				{Tab: "Lists", Count: 1},
			},
		},
		{
			name:     "nothing enabled leaves All",
			active:   models.TabAll,
			settings: facetMap{},
			want: []models.TabChip{
				{Tab: models.TabAll, Count: 7, Active: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OfferedTabs(counts, tt.active, tt.settings))
		})
	}
}

func TestNewEngineCopiesCatalog(t *testing.T) {
	catalog := sampleCatalog()
	engine := NewEngine(catalog)

	catalog[0] = models.List{Name: "replaced"}

	view, _ := engine.Compute("caroline", models.TabAll, allFacets)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 3, engine.Size(models.FacetPeople))
	assert.Equal(t, 3, engine.Size(models.FacetFiles))
	assert.Len(t, engine.Items(), 8)
}
