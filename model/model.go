package model

// FieldType is the closed set of input kinds a template field can declare.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeDate     FieldType = "date"
	TypeNumber   FieldType = "number"
	TypeEmail    FieldType = "email"
	TypeBoolean  FieldType = "boolean"
	TypeFile     FieldType = "file"
	TypeSelect   FieldType = "select"
)

// Known reports whether t is one of the declared field types.
// Anything else is a configuration defect and degrades to free text.
func (t FieldType) Known() bool {
	switch t {
	case TypeText, TypeTextarea, TypeDate, TypeNumber, TypeEmail,
		TypeBoolean, TypeFile, TypeSelect:
		return true
	}
	return false
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FieldSchema struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Default  any       `json:"default,omitempty"`
	Options  []Option  `json:"options,omitempty"`
}

// AmountKind selects the row amount formula of a section.
type AmountKind string

const (
	// AmountProduct multiplies two row columns.
	AmountProduct AmountKind = "product"
	// AmountDirect reads the amount straight from one row column.
	AmountDirect AmountKind = "direct"
)

// AmountRule describes how a section computes one row's amount.
// For AmountProduct, X and Y name the operand columns; XDefaultsOne
// makes a missing or non-numeric X count as 1 instead of 0 (quantity
// semantics). For AmountDirect only Field is used.
type AmountRule struct {
	Kind         AmountKind `json:"kind"`
	X            string     `json:"x,omitempty"`
	Y            string     `json:"y,omitempty"`
	XDefaultsOne bool       `json:"xDefaultsOne,omitempty"`
	Field        string     `json:"field,omitempty"`
}

// SectionSchema declares one repeated, toggle-guarded group of rows.
// Toggle names a boolean field on the template; an empty Toggle means
// the section is always enabled. Primary names the row column that
// identifies a row: rows with an empty primary are excluded from
// totals and from the rendered table.
type SectionSchema struct {
	ID      string        `json:"id"`
	Label   string        `json:"label"`
	Toggle  string        `json:"toggle,omitempty"`
	Primary string        `json:"primary"`
	Columns []FieldSchema `json:"columns"`
	Amount  AmountRule    `json:"amount"`
}

// Column looks up a row column by id.
func (s SectionSchema) Column(id string) (FieldSchema, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return FieldSchema{}, false
}

type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Currency    string          `json:"currency,omitempty"`
	Fields      []FieldSchema   `json:"fields"`
	Sections    []SectionSchema `json:"sections,omitempty"`
}

// Field looks up a flat field by id.
func (t Template) Field(id string) (FieldSchema, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSchema{}, false
}

// Row is one entry of a repeated section.
type Row map[string]any

// ValueSet is the normalized data of one document instance: field id to
// coerced value, section id to ordered rows.
type ValueSet map[string]any

// Rows returns the rows stored under a section id, tolerating both the
// native []Row shape and the []any shape produced by JSON decoding.
func (v ValueSet) Rows(sectionID string) []Row {
	switch rows := v[sectionID].(type) {
	case []Row:
		return rows
	case []map[string]any:
		out := make([]Row, len(rows))
		for i, r := range rows {
			out[i] = Row(r)
		}
		return out
	case []any:
		out := make([]Row, 0, len(rows))
		for _, r := range rows {
			if m, ok := r.(map[string]any); ok {
				out = append(out, Row(m))
			}
		}
		return out
	}
	return nil
}

// Bool reads a field as a boolean, treating anything absent or
// non-boolean as false.
func (v ValueSet) Bool(id string) bool {
	b, _ := v[id].(bool)
	return b
}

// FieldErrors maps field ids to human-readable validation messages.
// Validation is all-or-nothing: a non-empty FieldErrors means no
// ValueSet was produced.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for id, msg := range e {
		if len(e) == 1 {
			return id + ": " + msg
		}
		return id + ": " + msg + " (and others)"
	}
	return "no field errors"
}

// RowAmount is one included row's computed amount, by original index.
type RowAmount struct {
	Index  int     `json:"index"`
	Amount float64 `json:"amount"`
}

type SectionTotal struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Enabled  bool        `json:"enabled"`
	Rows     []RowAmount `json:"rows,omitempty"`
	Subtotal float64     `json:"subtotal"`
}

// ComputedTotals is derived from a ValueSet on every render and never
// persisted, so totals cannot drift from their inputs.
type ComputedTotals struct {
	Sections       []SectionTotal `json:"sections"`
	ItemsSubtotal  float64        `json:"itemsSubtotal"`
	OtherCosts     float64        `json:"otherCosts"`
	Subtotal       float64        `json:"subtotal"`
	TaxRatePercent float64        `json:"taxRatePercent"`
	TaxAmount      float64        `json:"taxAmount"`
	Total          float64        `json:"total"`
}
