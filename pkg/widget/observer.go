package widget

import "github.com/quickfind/quickfind-terminal/pkg/models"

// Observer is notified of widget activity. Calls happen while the widget is
// locked, so implementations must not call back into the widget.
type Observer interface {
	QuerySubmitted(query string)
	ResultsComputed(counts models.Counts)
	SearchPhaseChanged(from, to models.SearchPhase)
	VisibilityChanged(from, to models.VisibilityPhase)
	TabSelected(tab models.Tab, valid bool)
	FacetToggled(facet models.FacetKey, enabled bool)
}

type nopObserver struct{}

func (nopObserver) QuerySubmitted(string)                         {}
func (nopObserver) ResultsComputed(models.Counts)                 {}
func (nopObserver) SearchPhaseChanged(_, _ models.SearchPhase)    {}
func (nopObserver) VisibilityChanged(_, _ models.VisibilityPhase) {}
func (nopObserver) TabSelected(models.Tab, bool)                  {}
func (nopObserver) FacetToggled(models.FacetKey, bool)            {}
