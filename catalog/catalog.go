// Package catalog holds the built-in document templates and the
// per-type defaulting policy applied when a blank document is opened.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/mbolis/quick-docs/model"
)

// Clock supplies "now" for date defaults and generated document
// numbers. Injected so defaulting stays deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// IDGen produces the unique suffix of generated document numbers.
type IDGen func() string

// UUIDGen is the production IDGen: the first segment of a random UUID.
func UUIDGen() string {
	id, err := uuid.NewV4()
	if err != nil {
		// crypto/rand failing is not recoverable at this level
		panic(err)
	}
	return strings.SplitN(id.String(), "-", 2)[0]
}

type Catalog struct {
	clock     Clock
	ids       IDGen
	templates []model.Template
}

func New(clock Clock, ids IDGen) *Catalog {
	return &Catalog{
		clock: clock,
		ids:   ids,
		templates: []model.Template{
			workOrder(),
			invoice(),
			claimInvoice(),
			letterhead(),
		},
	}
}

// List returns the templates in catalog order.
func (c *Catalog) List() []model.Template {
	out := make([]model.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Get looks a template up by id. Not-found is a normal outcome: callers
// present it as such, they don't treat it as a failure.
func (c *Catalog) Get(id string) (model.Template, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.Template{}, false
}

// Defaults builds the initial ValueSet for a blank document: schema
// defaults where declared, otherwise the per-type zero policy. Dates
// default to today (via the injected clock) and generated document
// numbers embed the date plus an IDGen suffix.
func (c *Catalog) Defaults(tpl model.Template) model.ValueSet {
	values := model.ValueSet{}
	for _, f := range tpl.Fields {
		if v, ok := c.defaultFor(f); ok {
			values[f.ID] = v
		}
	}
	for _, s := range tpl.Sections {
		values[s.ID] = []model.Row{}
	}
	return values
}

const docNumberDefault = "@generate"

func (c *Catalog) defaultFor(f model.FieldSchema) (any, bool) {
	if f.Default != nil {
		if f.Type == model.TypeText && f.Default == docNumberDefault {
			now := c.clock.Now()
			return fmt.Sprintf("%s-%s", now.Format("20060102"), strings.ToUpper(c.ids())), true
		}
		return f.Default, true
	}

	switch f.Type {
	case model.TypeText, model.TypeTextarea, model.TypeEmail, model.TypeFile:
		return "", true
	case model.TypeDate:
		return c.clock.Now().Format("2006-01-02"), true
	case model.TypeBoolean:
		return false, true
	case model.TypeSelect:
		if len(f.Options) > 0 {
			return f.Options[0].Value, true
		}
		return "", true
	case model.TypeNumber:
		// optional numbers start out undefined, not zero
		return nil, false
	}
	return "", true
}

// Check verifies catalog integrity: unique ids, boolean toggles that
// exist, amount-rule operands that name real columns. Violations are
// configuration defects, caught at startup and in tests rather than at
// request time. All defects are reported at once.
func (c *Catalog) Check() error {
	var errs *multierror.Error
	for _, tpl := range c.templates {
		seen := map[string]bool{}
		for _, f := range tpl.Fields {
			if seen[f.ID] {
				errs = multierror.Append(errs, fmt.Errorf("%s: duplicate field id %q", tpl.ID, f.ID))
			}
			seen[f.ID] = true
			if f.Type == model.TypeSelect && f.Required && len(f.Options) == 0 {
				errs = multierror.Append(errs, fmt.Errorf("%s: required select %q has no options", tpl.ID, f.ID))
			}
		}

		for _, s := range tpl.Sections {
			if seen[s.ID] {
				errs = multierror.Append(errs, fmt.Errorf("%s: duplicate section id %q", tpl.ID, s.ID))
			}
			seen[s.ID] = true

			if s.Toggle != "" {
				f, ok := tpl.Field(s.Toggle)
				if !ok {
					errs = multierror.Append(errs, fmt.Errorf("%s: section %q toggle %q is not a field", tpl.ID, s.ID, s.Toggle))
				} else if f.Type != model.TypeBoolean {
					errs = multierror.Append(errs, fmt.Errorf("%s: section %q toggle %q is not boolean", tpl.ID, s.ID, s.Toggle))
				}
			}

			if _, ok := s.Column(s.Primary); !ok {
				errs = multierror.Append(errs, fmt.Errorf("%s: section %q primary %q is not a column", tpl.ID, s.ID, s.Primary))
			}

			cols := map[string]bool{}
			for _, col := range s.Columns {
				if cols[col.ID] {
					errs = multierror.Append(errs, fmt.Errorf("%s: section %q duplicate column %q", tpl.ID, s.ID, col.ID))
				}
				cols[col.ID] = true
			}

			switch s.Amount.Kind {
			case model.AmountProduct:
				if !cols[s.Amount.X] {
					errs = multierror.Append(errs, fmt.Errorf("%s: section %q amount operand %q is not a column", tpl.ID, s.ID, s.Amount.X))
				}
				if !cols[s.Amount.Y] {
					errs = multierror.Append(errs, fmt.Errorf("%s: section %q amount operand %q is not a column", tpl.ID, s.ID, s.Amount.Y))
				}
			case model.AmountDirect:
				if !cols[s.Amount.Field] {
					errs = multierror.Append(errs, fmt.Errorf("%s: section %q amount field %q is not a column", tpl.ID, s.ID, s.Amount.Field))
				}
			default:
				errs = multierror.Append(errs, fmt.Errorf("%s: section %q has unknown amount kind %q", tpl.ID, s.ID, s.Amount.Kind))
			}
		}
	}
	return errs.ErrorOrNil()
}
