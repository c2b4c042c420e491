package models

import "strings"

// FacetKey is one of the toggleable result categories
type FacetKey string

const (
	FacetFiles  FacetKey = "Files"
	FacetPeople FacetKey = "People"
	FacetChats  FacetKey = "Chats"
	FacetLists  FacetKey = "Lists"
)

// Facets lists every facet in tab order
var Facets = []FacetKey{FacetFiles, FacetPeople, FacetChats, FacetLists}

// Tab is a selectable results tab: All or one per facet
type Tab string

// TabAll is the reserved pseudo-facet matching every classified item
const TabAll Tab = "All"

// Tabs lists every tab in display order
var Tabs = []Tab{TabAll, Tab(FacetFiles), Tab(FacetPeople), Tab(FacetChats), Tab(FacetLists)}

// Tab returns the tab that shows this facet
func (f FacetKey) Tab() Tab {
	return Tab(f)
}

// Valid reports whether f is one of the four real facets
func (f FacetKey) Valid() bool {
	for _, k := range Facets {
		if k == f {
			return true
		}
	}
	return false
}

// Facet returns the facet behind a tab; ok is false for All and unknown tabs
func (t Tab) Facet() (FacetKey, bool) {
	f := FacetKey(t)
	if !f.Valid() {
		return "", false
	}
	return f, true
}

// Valid reports whether t is All or a facet tab
func (t Tab) Valid() bool {
	if t == TabAll {
		return true
	}
	_, ok := t.Facet()
	return ok
}

// ParseFacet resolves user input like "files", "Chat" or "lists"
func ParseFacet(s string) (FacetKey, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "file", "files":
		return FacetFiles, true
	case "person", "people":
		return FacetPeople, true
	case "chat", "chats":
		return FacetChats, true
	case "list", "lists":
		return FacetLists, true
	default:
		return FacetKey(s), false
	}
}

// ParseTab resolves user input into a tab, accepting "all" and facet aliases
func ParseTab(s string) (Tab, bool) {
	if strings.EqualFold(strings.TrimSpace(s), string(TabAll)) {
		return TabAll, true
	}
	f, ok := ParseFacet(s)
	if !ok {
		return Tab(s), false
	}
	return f.Tab(), true
}

// Counts holds per-tab match counts
type Counts struct {
	All    int `json:"All" yaml:"All"`
	Files  int `json:"Files" yaml:"Files"`
	People int `json:"People" yaml:"People"`
	Chats  int `json:"Chats" yaml:"Chats"`
	Lists  int `json:"Lists" yaml:"Lists"`
}

// Get returns the count for a tab; unknown tabs report zero
func (c Counts) Get(t Tab) int {
	switch t {
	case TabAll:
		return c.All
	case Tab(FacetFiles):
		return c.Files
	case Tab(FacetPeople):
		return c.People
	case Tab(FacetChats):
		return c.Chats
	case Tab(FacetLists):
		return c.Lists
	default:
		return 0
	}
}

// Add increments the count of one facet
func (c *Counts) Add(f FacetKey) {
	switch f {
	case FacetFiles:
		c.Files++
	case FacetPeople:
		c.People++
	case FacetChats:
		c.Chats++
	case FacetLists:
		c.Lists++
	}
}

// FilteredView is the result of one filter/count computation
type FilteredView struct {
	Query     string
	ActiveTab Tab
	Items     []ResultItem
	Counts    Counts
}

// TabChip is one entry of the offered tab list
type TabChip struct {
	Tab    Tab  `json:"tab" yaml:"tab"`
	Count  int  `json:"count" yaml:"count"`
	Active bool `json:"active" yaml:"active"`
}
