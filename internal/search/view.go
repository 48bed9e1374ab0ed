package search

import "kite/internal/orbit"

// TableHeaders is the fixed result table header row, in display order.
var TableHeaders = []string{
	"Subject",
	"Brand",
	"Language",
	"Medium",
	"Matter",
	"MIME Type",
	"Created At",
	"Changed At",
	"Body",
}

// InputField describes one filter text input: which field it edits, its label,
// and the value currently stored in the query.
type InputField struct {
	Field orbit.Field
	Label string
	Value string
}

// Table is the declarative result table: the canonical headers and one row of
// cells per template record, in server order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ViewDescription is the full declarative form of the interface derived from
// one ViewState: the filter inputs, the trigger label, the in-flight flag, and
// the result table. The rendering host paints it; it carries no behavior.
type ViewDescription struct {
	Inputs       []InputField
	TriggerLabel string
	Pending      bool
	Table        Table
}

// Describe derives the view description for a state. It is pure: the same
// state always yields the same description, cell text is the record field
// verbatim, and row order follows state.Rows unchanged.
func Describe(state ViewState) ViewDescription {
	inputs := make([]InputField, 0, len(orbit.Fields))
	for _, field := range orbit.Fields {
		inputs = append(inputs, InputField{
			Field: field,
			Label: field.String(),
			Value: state.Query.Get(field),
		})
	}

	rows := make([][]string, 0, len(state.Rows))
	for _, t := range state.Rows {
		rows = append(rows, templateRow(t))
	}

	return ViewDescription{
		Inputs:       inputs,
		TriggerLabel: "Search",
		Pending:      state.Pending,
		Table: Table{
			Headers: TableHeaders,
			Rows:    rows,
		},
	}
}

// templateRow lays out one record's cells in header order.
func templateRow(t orbit.Template) []string {
	return []string{
		t.Subject,
		t.Brand,
		t.Language,
		t.Medium,
		t.Matter,
		t.MimeType,
		t.CreatedAt,
		t.ChangedAt,
		t.Body,
	}
}
