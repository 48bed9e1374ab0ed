package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kite/internal/orbit"
)

func TestDescribe_HeadersAreCanonical(t *testing.T) {
	desc := Describe(NewViewState())

	assert.Equal(t, []string{
		"Subject",
		"Brand",
		"Language",
		"Medium",
		"Matter",
		"MIME Type",
		"Created At",
		"Changed At",
		"Body",
	}, desc.Table.Headers)
}

func TestDescribe_InputsReflectQuery(t *testing.T) {
	state := ViewState{
		Query: orbit.Query{
			Matter:   "glass",
			Language: "de_DE",
			MimeType: "text/html",
		},
	}

	desc := Describe(state)

	require.Len(t, desc.Inputs, 5)
	assert.Equal(t, orbit.FieldMatter, desc.Inputs[0].Field)
	assert.Equal(t, "Matter", desc.Inputs[0].Label)
	assert.Equal(t, "glass", desc.Inputs[0].Value)
	assert.Equal(t, "de_DE", desc.Inputs[1].Value)
	assert.Equal(t, "", desc.Inputs[2].Value, "absent filter renders as empty input")
	assert.Equal(t, "", desc.Inputs[3].Value)
	assert.Equal(t, "text/html", desc.Inputs[4].Value)
	assert.Equal(t, "Search", desc.TriggerLabel)
}

func TestDescribe_RowsVerbatimInServerOrder(t *testing.T) {
	state := ViewState{
		Rows: []orbit.Template{
			{
				ID:        "2",
				Subject:   "Second",
				Brand:     "acme",
				Language:  "en_US",
				Medium:    "email",
				Matter:    "billing",
				MimeType:  "text/plain",
				CreatedAt: "2019-01-02",
				ChangedAt: "2019-01-03",
				Body:      "Hello <b>there</b>",
			},
			{ID: "1", Subject: "First"},
		},
	}

	desc := Describe(state)

	require.Len(t, desc.Table.Rows, len(state.Rows), "one table row per record")
	assert.Equal(t, []string{
		"Second", "acme", "en_US", "email", "billing",
		"text/plain", "2019-01-02", "2019-01-03", "Hello <b>there</b>",
	}, desc.Table.Rows[0], "cells in header order, text verbatim")
	assert.Equal(t, "First", desc.Table.Rows[1][0], "server order preserved, no sorting")
}

func TestDescribe_PendingPassesThrough(t *testing.T) {
	assert.False(t, Describe(ViewState{}).Pending)
	assert.True(t, Describe(ViewState{Pending: true}).Pending)
}

func TestDescribe_IsDeterministic(t *testing.T) {
	state := ViewState{
		Query:   orbit.Query{Brand: "acme"},
		Rows:    []orbit.Template{{ID: "1", Subject: "S"}},
		Pending: true,
	}

	assert.Equal(t, Describe(state), Describe(state))
}
