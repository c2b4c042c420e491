package server

import (
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
	"github.com/quickfind/quickfind-terminal/pkg/widget"
)

// Client actions
const (
	ActionQuery       = "query"
	ActionClear       = "clear"
	ActionSelectTab   = "select_tab"
	ActionToggleFacet = "toggle_facet"
	ActionSnapshot    = "snapshot"
)

// Server message types
const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypeError    = "error"
)

// ClientMessage is sent by a websocket client
type ClientMessage struct {
	Action string `json:"action"`
	Query  string `json:"query,omitempty"`
	Tab    string `json:"tab,omitempty"`
	Facet  string `json:"facet,omitempty"`
}

// ServerMessage is pushed to a websocket client
type ServerMessage struct {
	Type     string        `json:"type"`
	Session  string        `json:"session"`
	Snapshot *SnapshotView `json:"snapshot,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ItemView is one rendered result row
type ItemView struct {
	Kind    models.Kind     `json:"kind"`
	Facet   models.FacetKey `json:"facet"`
	Name    string          `json:"name"`
	Subtext string          `json:"subtext"`
	Link    string          `json:"link"`
}

// SnapshotView is the wire form of a widget snapshot
type SnapshotView struct {
	Phase       models.SearchPhase       `json:"phase"`
	Visibility  models.VisibilityPhase   `json:"visibility"`
	Present     bool                     `json:"present"`
	Expanded    bool                     `json:"expanded"`
	Query       string                   `json:"query"`
	ActiveTab   models.Tab               `json:"active_tab"`
	Counts      models.Counts            `json:"counts"`
	Items       []ItemView               `json:"items"`
	OfferedTabs []models.TabChip         `json:"offered_tabs"`
	Facets      map[models.FacetKey]bool `json:"facets"`
}

// NewSnapshotView renders snap with deep links under origin
func NewSnapshotView(snap widget.Snapshot, origin string) *SnapshotView {
	return &SnapshotView{
		Phase:       snap.Phase,
		Visibility:  snap.Visibility,
		Present:     snap.Present(),
		Expanded:    snap.Expanded,
		Query:       snap.View.Query,
		ActiveTab:   snap.View.ActiveTab,
		Counts:      snap.View.Counts,
		Items:       itemViews(snap.View.Items, origin),
		OfferedTabs: snap.OfferedTabs,
		Facets:      snap.Facets,
	}
}

func itemViews(items []models.ResultItem, origin string) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		out = append(out, ItemView{
			Kind:    item.Kind(),
			Facet:   search.FacetOf(item),
			Name:    models.NameOf(item),
			Subtext: search.Subtext(item),
			Link:    search.DeepLink(origin, item),
		})
	}
	return out
}
