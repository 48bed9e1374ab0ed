package orbit

// Field identifies one of the five optional template filters.
type Field int

const (
	FieldMatter Field = iota
	FieldLanguage
	FieldBrand
	FieldMedium
	FieldMimeType
)

// String returns the display label for the field.
func (f Field) String() string {
	switch f {
	case FieldMatter:
		return "Matter"
	case FieldLanguage:
		return "Language"
	case FieldBrand:
		return "Brand"
	case FieldMedium:
		return "Medium"
	case FieldMimeType:
		return "MIME Type"
	default:
		return "Unknown"
	}
}

// Fields lists the filter fields in form order.
var Fields = []Field{FieldMatter, FieldLanguage, FieldBrand, FieldMedium, FieldMimeType}

// Query holds the optional template search filters. The empty string means
// "no constraint on this field"; callers normalize blank user input to the
// empty string before building a FieldUpdate.
type Query struct {
	Matter   string
	Language string
	Brand    string
	Medium   string
	MimeType string
}

// FieldUpdate replaces the value of a single filter field.
type FieldUpdate struct {
	Field Field
	Value string
}

// Apply returns a copy of the query with exactly the updated field replaced.
// All other fields are untouched.
func (q Query) Apply(u FieldUpdate) Query {
	switch u.Field {
	case FieldMatter:
		q.Matter = u.Value
	case FieldLanguage:
		q.Language = u.Value
	case FieldBrand:
		q.Brand = u.Value
	case FieldMedium:
		q.Medium = u.Value
	case FieldMimeType:
		q.MimeType = u.Value
	}
	return q
}

// Get returns the current value of a filter field.
func (q Query) Get(f Field) string {
	switch f {
	case FieldMatter:
		return q.Matter
	case FieldLanguage:
		return q.Language
	case FieldBrand:
		return q.Brand
	case FieldMedium:
		return q.Medium
	case FieldMimeType:
		return q.MimeType
	default:
		return ""
	}
}

// Template mirrors one catalog entry as returned by the search endpoint.
// Timestamps are kept as opaque server-formatted strings.
type Template struct {
	ID        string `json:"id"`
	Matter    string `json:"matter"`
	Brand     string `json:"brand"`
	Language  string `json:"language"`
	Medium    string `json:"medium"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	ChangedAt string `json:"changed_at"`
	MimeType  string `json:"mime_type"`
}

// QueryResult mirrors the payload returned by /templates. Pagination fields
// are passed through; no pagination UI consumes them yet.
type QueryResult struct {
	Objects    []Template `json:"objects"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	NumResults int        `json:"num_results"`
}
