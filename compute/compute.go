// Package compute derives monetary aggregates from a document's
// ValueSet. It is pure and stateless: totals are recomputed from
// scratch on every call, never cached, so they cannot drift from the
// inputs that produced them.
package compute

import (
	"strconv"
	"strings"

	"github.com/mbolis/quick-docs/model"
)

// Field ids shared by every template that carries totals.
const (
	FieldOtherCosts = "otherCosts"
	FieldTaxRate    = "taxRatePercentage"
)

// Totals computes every derived amount for one document. Malformed
// numeric operands never fail: they degrade to 0 (or to 1 for
// quantity-like operands that declare a default), which keeps a
// preview renderable no matter what is typed into a row.
func Totals(tpl model.Template, values model.ValueSet) model.ComputedTotals {
	totals := model.ComputedTotals{
		Sections: make([]model.SectionTotal, 0, len(tpl.Sections)),
	}

	for _, section := range tpl.Sections {
		st := sectionTotal(section, values)
		if st.Enabled {
			totals.ItemsSubtotal += st.Subtotal
		}
		totals.Sections = append(totals.Sections, st)
	}

	totals.OtherCosts = lenientNumber(values[FieldOtherCosts])
	totals.Subtotal = totals.ItemsSubtotal + totals.OtherCosts
	totals.TaxRatePercent = lenientNumber(values[FieldTaxRate])
	totals.TaxAmount = totals.Subtotal * totals.TaxRatePercent / 100
	totals.Total = totals.Subtotal + totals.TaxAmount
	return totals
}

// sectionTotal sums one section's included rows. A disabled section is
// still reported (with its rows) so a renderer can show it greyed out,
// but it contributes nothing to the items subtotal.
func sectionTotal(section model.SectionSchema, values model.ValueSet) model.SectionTotal {
	st := model.SectionTotal{
		ID:      section.ID,
		Label:   section.Label,
		Enabled: section.Toggle == "" || values.Bool(section.Toggle),
	}

	for i, row := range values.Rows(section.ID) {
		if strings.TrimSpace(rowString(row, section.Primary)) == "" {
			// an empty row is not an error, it just doesn't count
			continue
		}
		amount := RowAmount(section.Amount, row)
		st.Rows = append(st.Rows, model.RowAmount{Index: i, Amount: amount})
		st.Subtotal += amount
	}
	return st
}

// RowAmount applies a section's amount rule to one row.
func RowAmount(rule model.AmountRule, row model.Row) float64 {
	switch rule.Kind {
	case model.AmountProduct:
		x, ok := toNumber(row[rule.X])
		if !ok {
			if rule.XDefaultsOne {
				x = 1
			} else {
				x = 0
			}
		}
		y, _ := toNumber(row[rule.Y])
		return x * y
	case model.AmountDirect:
		return lenientNumber(row[rule.Field])
	}
	return 0
}

// lenientNumber is the aggregation-side numeric policy: anything that
// does not parse contributes 0.
func lenientNumber(v any) float64 {
	f, _ := toNumber(v)
	return f
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
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func rowString(row model.Row, col string) string {
	s, _ := row[col].(string)
	return s
}
