package search

import (
	"strings"

	"kite/internal/orbit"
)

// ViewState is the single authoritative snapshot driving rendering: the
// current filters, the rows of the last successfully received page, and
// whether a search is in flight. It is a value; Reduce returns a replacement,
// nothing mutates it in place.
type ViewState struct {
	Query   orbit.Query
	Rows    []orbit.Template
	Pending bool
}

// NewViewState returns the startup state: all filters absent, no rows, idle.
func NewViewState() ViewState {
	return ViewState{}
}

// Reduce maps the current state and one event to the next state. It is total
// and free of side effects; all I/O (the transport call on SearchTriggered,
// logging) belongs to the surrounding driver. The second result reports
// whether the view must be re-derived.
//
// A failed search leaves Rows untouched: a failed refresh must not destroy
// previously displayed data. The failure itself is not surfaced in the view;
// the driver reports it to the log sink and nothing else happens.
func Reduce(state ViewState, event Event) (ViewState, bool) {
	switch event := event.(type) {
	case FilterEdited:
		state.Query = state.Query.Apply(event.Update)
		return state, true
	case SearchTriggered:
		state.Pending = true
		return state, true
	case SearchSucceeded:
		state.Rows = event.Page.Objects
		state.Pending = false
		return state, true
	case SearchFailed:
		state.Pending = false
		return state, true
	default:
		return state, false
	}
}

// NormalizeFilter maps raw user input for a filter field to its stored form:
// blank input means "no constraint". This runs at the input boundary, before
// a FieldUpdate is built, so the query model never stores a blank value.
func NormalizeFilter(raw string) string {
	return strings.TrimSpace(raw)
}
