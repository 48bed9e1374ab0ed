package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kite/internal/orbit"
)

func TestReduce_FilterEditedTouchesOnlyFilters(t *testing.T) {
	state := ViewState{
		Rows:    []orbit.Template{{ID: "keep"}},
		Pending: true,
	}

	next, dirty := Reduce(state, FilterEdited{
		Update: orbit.FieldUpdate{Field: orbit.FieldMatter, Value: "glass"},
	})

	require.True(t, dirty, "filter edits always re-render")
	assert.Equal(t, "glass", next.Query.Matter)
	assert.Equal(t, state.Rows, next.Rows, "rows untouched by filter edits")
	assert.True(t, next.Pending, "pending untouched by filter edits")
}

func TestReduce_SearchTriggeredSetsPending(t *testing.T) {
	state := ViewState{
		Query: orbit.Query{Brand: "acme"},
		Rows:  []orbit.Template{{ID: "keep"}},
	}

	next, dirty := Reduce(state, SearchTriggered{})

	require.True(t, dirty)
	assert.True(t, next.Pending)
	assert.Equal(t, state.Query, next.Query, "filters untouched by trigger")
	assert.Equal(t, state.Rows, next.Rows, "rows untouched by trigger")
}

func TestReduce_SearchSucceededReplacesRows(t *testing.T) {
	state := ViewState{
		Rows:    []orbit.Template{{ID: "old"}},
		Pending: true,
	}
	page := orbit.QueryResult{
		Objects: []orbit.Template{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Page:    1, PerPage: 10, NumResults: 3,
	}

	next, dirty := Reduce(state, SearchSucceeded{Page: page})

	require.True(t, dirty)
	assert.False(t, next.Pending)
	require.Len(t, next.Rows, 3)
	assert.Equal(t, page.Objects, next.Rows, "rows are the page objects in server order")
}

func TestReduce_SearchFailedPreservesRows(t *testing.T) {
	rows := []orbit.Template{{ID: "survivor"}}

	for _, kind := range []orbit.FailureKind{orbit.FailureNetwork, orbit.FailureStatus, orbit.FailureDecode} {
		state := ViewState{Rows: rows, Pending: true}

		next, dirty := Reduce(state, SearchFailed{Failure: &orbit.Failure{Kind: kind}})

		require.True(t, dirty, "kind %s", kind)
		assert.False(t, next.Pending, "kind %s", kind)
		assert.Equal(t, rows, next.Rows, "failed refresh must not destroy displayed data (kind %s)", kind)
	}
}

func TestReduce_FailureWhileIdleIsHarmless(t *testing.T) {
	state := ViewState{Rows: []orbit.Template{{ID: "r1"}}}

	next, _ := Reduce(state, SearchFailed{Failure: &orbit.Failure{Kind: orbit.FailureNetwork}})

	assert.False(t, next.Pending)
	assert.Equal(t, state.Rows, next.Rows)
}

func TestReduce_IsDeterministic(t *testing.T) {
	state := ViewState{
		Query:   orbit.Query{Matter: "glass"},
		Rows:    []orbit.Template{{ID: "1"}},
		Pending: false,
	}
	event := SearchTriggered{}

	first, firstDirty := Reduce(state, event)
	second, secondDirty := Reduce(state, event)

	assert.Equal(t, first, second, "same (state, event) must yield the same state")
	assert.Equal(t, firstDirty, secondDirty)
}

type unknownEvent struct{}

func (unknownEvent) Type() EventType { return "Unknown" }

func TestReduce_UnknownEventIsIdentity(t *testing.T) {
	state := ViewState{
		Query: orbit.Query{Language: "de_DE"},
		Rows:  []orbit.Template{{ID: "1"}},
	}

	next, dirty := Reduce(state, unknownEvent{})

	assert.False(t, dirty, "unknown events do not re-render")
	assert.Equal(t, state, next)
}

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, "", NormalizeFilter(""), "empty input means no constraint")
	assert.Equal(t, "", NormalizeFilter("   "), "blank input means no constraint")
	assert.Equal(t, "glass", NormalizeFilter("  glass  "))
	assert.Equal(t, "glass", NormalizeFilter("glass"))
}

// The three interface scenarios, driven end to end through reducer and view.

func TestScenario_EditThenRender(t *testing.T) {
	state := NewViewState()
	require.Equal(t, ViewState{}, state, "startup: all filters absent, no rows, idle")

	state, dirty := Reduce(state, FilterEdited{
		Update: orbit.FieldUpdate{Field: orbit.FieldMatter, Value: NormalizeFilter("glass")},
	})

	require.True(t, dirty)
	assert.Equal(t, "glass", state.Query.Matter)
	assert.Empty(t, state.Rows)
	assert.False(t, state.Pending)

	desc := Describe(state)
	assert.Equal(t, "glass", desc.Inputs[0].Value, "matter input shows the edit")
	assert.Empty(t, desc.Table.Rows)
}

func TestScenario_TriggerThenSuccess(t *testing.T) {
	state := NewViewState()
	state, _ = Reduce(state, FilterEdited{
		Update: orbit.FieldUpdate{Field: orbit.FieldMatter, Value: "glass"},
	})

	state, _ = Reduce(state, SearchTriggered{})
	require.True(t, state.Pending)

	page := orbit.QueryResult{
		Objects:    []orbit.Template{{ID: "1", Subject: "S"}},
		Page:       1,
		PerPage:    10,
		NumResults: 1,
	}
	state, _ = Reduce(state, SearchSucceeded{Page: page})

	assert.False(t, state.Pending)
	require.Len(t, state.Rows, 1)

	desc := Describe(state)
	require.Len(t, desc.Table.Rows, 1)
	assert.Equal(t, "S", desc.Table.Rows[0][0], "first cell is the subject")
}

func TestScenario_TriggerThenFailureKeepsRows(t *testing.T) {
	rowA := orbit.Template{ID: "A", Subject: "Row A"}
	state := ViewState{Rows: []orbit.Template{rowA}}

	state, _ = Reduce(state, SearchTriggered{})
	state, _ = Reduce(state, SearchFailed{Failure: &orbit.Failure{Kind: orbit.FailureNetwork}})

	assert.False(t, state.Pending)
	require.Len(t, state.Rows, 1)
	assert.Equal(t, rowA, state.Rows[0], "rows not emptied by the failed search")
}
