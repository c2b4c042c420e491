package search

import (
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// FacetReader reports which facet tabs are offered
type FacetReader interface {
	IsEnabled(facet models.FacetKey) bool
}

// Engine filters and counts a fixed catalog
type Engine struct {
	items []models.ResultItem

	// facet -> catalog indices, in catalog order
	facetIndex map[models.FacetKey][]int
}

// NewEngine creates an engine over a copy of the catalog
func NewEngine(catalog []models.ResultItem) *Engine {
	e := &Engine{
		items:      make([]models.ResultItem, len(catalog)),
		facetIndex: make(map[models.FacetKey][]int),
	}
	copy(e.items, catalog)

	for i, item := range e.items {
		facet := FacetOf(item)
		e.facetIndex[facet] = append(e.facetIndex[facet], i)
	}

	return e
}

// Items returns a copy of the catalog
func (e *Engine) Items() []models.ResultItem {
	items := make([]models.ResultItem, len(e.items))
	copy(items, e.items)
	return items
}

// Size returns the number of catalog items per facet
func (e *Engine) Size(facet models.FacetKey) int {
	return len(e.facetIndex[facet])
}

// Match returns the catalog items matching query, in catalog order
func (e *Engine) Match(query string) []models.ResultItem {
	if IsBlank(query) {
		return nil
	}

	var matched []models.ResultItem
	for _, item := range e.items {
		if Matches(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Compute builds the filtered view for query and the active tab, plus the
// tab chips offered under settings. Counts always cover the full matched set;
// neither the active tab nor the settings change them. An unknown active tab
// is filtered as All.
func (e *Engine) Compute(query string, active models.Tab, settings FacetReader) (models.FilteredView, []models.TabChip) {
	matched := e.Match(query)

	view := models.FilteredView{
		Query:     query,
		ActiveTab: active,
		Counts:    CountFacets(matched),
	}
	view.Items = FilterByTab(matched, active)

	return view, OfferedTabs(view.Counts, active, settings)
}

// CountFacets counts matched items per facet and in total
func CountFacets(matched []models.ResultItem) models.Counts {
	var counts models.Counts
	for _, item := range matched {
		counts.Add(FacetOf(item))
		counts.All++
	}
	return counts
}

// FilterByTab keeps the items shown under tab
func FilterByTab(matched []models.ResultItem, tab models.Tab) []models.ResultItem {
	facet, ok := tab.Facet()
	if !ok {
		out := make([]models.ResultItem, len(matched))
		copy(out, matched)
		return out
	}

	out := make([]models.ResultItem, 0, len(matched))
	for _, item := range matched {
		if FacetOf(item) == facet {
			out = append(out, item)
		}
	}
	return out
}

// OfferedTabs lists All followed by every enabled facet in fixed order, each
// carrying its count. A disabled active tab is left out but stays active.
func OfferedTabs(counts models.Counts, active models.Tab, settings FacetReader) []models.TabChip {
	tabs := []models.TabChip{{Tab: models.TabAll, Count: counts.All, Active: active == models.TabAll}}
	for _, facet := range models.Facets {
		if settings != nil && !settings.IsEnabled(facet) {
			continue
		}
		tab := facet.Tab()
		tabs = append(tabs, models.TabChip{Tab: tab, Count: counts.Get(tab), Active: active == tab})
	}
	return tabs
}
