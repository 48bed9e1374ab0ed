package search

import "kite/internal/orbit"

// EventType names an event for log lines and dispatch traces.
type EventType string

// Event types
const (
	EventFilterEdited    EventType = "FilterEdited"
	EventSearchTriggered EventType = "SearchTriggered"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
)

// Event is the sum of everything the reducer consumes: user edits, the search
// trigger, and the asynchronous resolution of a transport call.
type Event interface {
	Type() EventType
}

// FilterEdited carries a committed edit of a single filter field.
type FilterEdited struct {
	Update orbit.FieldUpdate
}

func (e FilterEdited) Type() EventType { return EventFilterEdited }

// SearchTriggered is emitted when the user fires a search. The driver issues
// the transport call with a snapshot of the filters; the reducer only flips
// the pending flag.
type SearchTriggered struct{}

func (e SearchTriggered) Type() EventType { return EventSearchTriggered }

// SearchSucceeded carries the decoded result page of a finished search.
type SearchSucceeded struct {
	Page orbit.QueryResult
}

func (e SearchSucceeded) Type() EventType { return EventSearchSucceeded }

// SearchFailed carries the failure value of a search that produced no page.
type SearchFailed struct {
	Failure *orbit.Failure
}

func (e SearchFailed) Type() EventType { return EventSearchFailed }
