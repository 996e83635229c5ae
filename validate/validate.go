package validate

import (
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/mbolis/quick-docs/log"
	"github.com/mbolis/quick-docs/model"
)

// Rule is the validation/coercion program for one flat field. It is
// plain data so a program can be introspected and tested field by field.
type Rule struct {
	ID       string
	Label    string
	Type     model.FieldType
	Required bool
	Options  []string
}

// SectionRule carries a section's row shape. Row values are checked
// structurally and passed through: numeric leniency for row operands is
// the computation engine's policy, not validation's.
type SectionRule struct {
	ID      string
	Columns []string
}

// Program is the runtime validator derived from one template.
type Program struct {
	Fields   []Rule
	Sections []SectionRule
}

// Build derives a Program from a template. Unknown field types are a
// configuration defect: they degrade to free-text coercion and are
// reported here, once, instead of failing silently at validation time.
func Build(tpl model.Template) Program {
	p := Program{
		Fields:   make([]Rule, 0, len(tpl.Fields)),
		Sections: make([]SectionRule, 0, len(tpl.Sections)),
	}
	for _, f := range tpl.Fields {
		typ := f.Type
		if !typ.Known() {
			log.Warnf("validate.build: template %q field %q has unknown type %q, treating as text", tpl.ID, f.ID, f.Type)
			typ = model.TypeText
		}
		r := Rule{ID: f.ID, Label: f.Label, Type: typ, Required: f.Required}
		for _, o := range f.Options {
			r.Options = append(r.Options, o.Value)
		}
		p.Fields = append(p.Fields, r)
	}
	for _, s := range tpl.Sections {
		sr := SectionRule{ID: s.ID}
		for _, c := range s.Columns {
			sr.Columns = append(sr.Columns, c.ID)
		}
		p.Sections = append(p.Sections, sr)
	}
	return p
}

// Validate coerces raw input into a ValueSet, or reports every failing
// field at once. It never partially applies: on any error the ValueSet
// is nil and the error map is complete.
func (p Program) Validate(raw map[string]any) (model.ValueSet, model.FieldErrors) {
	values := model.ValueSet{}
	errs := model.FieldErrors{}

	for _, rule := range p.Fields {
		v, present := raw[rule.ID]
		coerced, keep, msg := coerce(rule, v, present)
		if msg != "" {
			errs[rule.ID] = msg
			continue
		}
		if keep {
			values[rule.ID] = coerced
		}
	}

	for _, section := range p.Sections {
		rows, msg := coerceRows(section, raw[section.ID])
		if msg != "" {
			errs[section.ID] = msg
			continue
		}
		values[section.ID] = rows
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// coerce applies one rule to one raw value. keep=false means the field
// is legitimately absent (an optional empty number stays undefined).
func coerce(rule Rule, v any, present bool) (coerced any, keep bool, msg string) {
	switch rule.Type {
	case model.TypeText, model.TypeTextarea:
		s := asString(v)
		if rule.Required && strings.TrimSpace(s) == "" {
			return nil, false, "is required"
		}
		return s, true, ""

	case model.TypeEmail:
		s := strings.TrimSpace(asString(v))
		if s == "" {
			if rule.Required {
				return nil, false, "is required"
			}
			return "", true, ""
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return nil, false, "must be a valid email address"
		}
		return s, true, ""

	case model.TypeDate:
		s := strings.TrimSpace(asString(v))
		if s == "" {
			if rule.Required {
				return nil, false, "is required"
			}
			return "", true, ""
		}
		normalized, ok := NormalizeDate(s)
		if !ok {
			return nil, false, "must be a valid date (YYYY-MM-DD)"
		}
		return normalized, true, ""

	case model.TypeNumber:
		if !present || v == nil || strings.TrimSpace(asString(v)) == "" {
			if rule.Required {
				return nil, false, "is required"
			}
			return nil, false, ""
		}
		f, ok := toNumber(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false, "must be a number"
		}
		return f, true, ""

	case model.TypeBoolean:
		// required has no effect: a boolean is never "missing"
		if !present || v == nil {
			return false, true, ""
		}
		return truthy(v), true, ""

	case model.TypeFile:
		s := strings.TrimSpace(asString(v))
		if s == "" {
			if rule.Required {
				return nil, false, "is required"
			}
			return "", true, ""
		}
		if !IsDataURI(s) {
			return nil, false, "must be an uploaded file"
		}
		return s, true, ""

	case model.TypeSelect:
		if len(rule.Options) == 0 {
			// no option set declared: degrade to free text
			s := asString(v)
			if rule.Required && strings.TrimSpace(s) == "" {
				return nil, false, "is required"
			}
			return s, true, ""
		}
		s := strings.TrimSpace(asString(v))
		if s == "" {
			if rule.Required {
				return nil, false, "is required"
			}
			return "", true, ""
		}
		for _, opt := range rule.Options {
			if s == opt {
				return s, true, ""
			}
		}
		return nil, false, "is not a valid choice"
	}

	// Build never emits an unknown type, but keep the fallthrough honest.
	s := asString(v)
	if rule.Required && strings.TrimSpace(s) == "" {
		return nil, false, "is required"
	}
	return s, true, ""
}

// coerceRows checks the structural shape of a section's rows and copies
// the declared columns through unchanged. A missing section coerces to
// no rows; a present non-list value is a field error on the section id.
func coerceRows(section SectionRule, v any) ([]model.Row, string) {
	if v == nil {
		return []model.Row{}, ""
	}

	var items []any
	switch vv := v.(type) {
	case []any:
		items = vv
	case []model.Row:
		for _, r := range vv {
			items = append(items, map[string]any(r))
		}
	case []map[string]any:
		for _, r := range vv {
			items = append(items, r)
		}
	default:
		return nil, "must be a list of rows"
	}

	rows := make([]model.Row, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Sprintf("row %d must be an object", i)
		}
		row := model.Row{}
		for _, col := range section.Columns {
			if cv, ok := m[col]; ok && cv != nil {
				row[col] = cv
			}
		}
		rows = append(rows, row)
	}
	return rows, ""
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"01/02/2006",
	"02 Jan 2006",
	time.RFC3339,
}

// NormalizeDate resolves a date string to canonical YYYY-MM-DD form.
func NormalizeDate(s string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// IsDataURI reports whether s looks like resolver output, i.e. an
// embeddable base64 data URI. Raw file handles are never accepted here.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:") && strings.Contains(s, ";base64,")
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "", "false", "0", "no", "off":
			return false
		}
		return true
	case float64:
		return b != 0
	case int:
		return b != 0
	case nil:
		return false
	}
	return true
}
