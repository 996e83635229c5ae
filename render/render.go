// Package render produces the printable HTML document for a finalized
// ValueSet and its matching ComputedTotals. Printing to PDF and sharing
// happen in the browser; this surface only guarantees a complete,
// internally consistent document.
package render

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"github.com/mbolis/quick-docs/compute"
	"github.com/mbolis/quick-docs/model"
)

// Input is the deterministic input of one render pass.
type Input struct {
	Template model.Template
	Values   model.ValueSet
	Totals   model.ComputedTotals
	Symbol   string
}

type fieldView struct {
	Label   string
	Value   string
	DataURI bool
}

type rowView struct {
	Cells  []string
	Amount string
}

type sectionView struct {
	Label   string
	Headers []string
	Rows    []rowView
	Total   string
}

type docView struct {
	Title       string
	Fields      []fieldView
	Sections    []sectionView
	HasTotals   bool
	ItemsTotal  string
	OtherCosts  string
	Subtotal    string
	TaxRate     string
	TaxAmount   string
	Total       string
}

// HTML renders a document. It assumes values passed validation; it does
// not re-validate.
func HTML(tpl model.Template, values model.ValueSet, totals model.ComputedTotals) (string, error) {
	symbol := currencySymbol(tpl, values)

	view := docView{
		Title:     tpl.Name,
		HasTotals: len(tpl.Sections) > 0,
	}

	for _, f := range tpl.Fields {
		if f.Type == model.TypeBoolean {
			continue // toggles drive layout, they are not document content
		}
		v, ok := values[f.ID]
		if !ok || v == nil {
			continue
		}
		s := stringValue(v)
		if strings.TrimSpace(s) == "" {
			continue
		}
		view.Fields = append(view.Fields, fieldView{
			Label:   f.Label,
			Value:   s,
			DataURI: f.Type == model.TypeFile,
		})
	}

	for _, section := range tpl.Sections {
		st := sectionTotalFor(totals, section.ID)
		if !st.Enabled {
			continue
		}

		sv := sectionView{
			Label: section.Label,
			Total: compute.FormatMoney(symbol, st.Subtotal),
		}
		for _, col := range section.Columns {
			sv.Headers = append(sv.Headers, col.Label)
		}
		sv.Headers = append(sv.Headers, "Amount")

		rows := values.Rows(section.ID)
		for _, ra := range st.Rows {
			if ra.Index >= len(rows) {
				continue
			}
			row := rows[ra.Index]
			rv := rowView{Amount: compute.FormatMoney(symbol, ra.Amount)}
			for _, col := range section.Columns {
				rv.Cells = append(rv.Cells, stringValue(row[col.ID]))
			}
			sv.Rows = append(sv.Rows, rv)
		}
		view.Sections = append(view.Sections, sv)
	}

	if view.HasTotals {
		view.ItemsTotal = compute.FormatMoney(symbol, totals.ItemsSubtotal)
		view.OtherCosts = compute.FormatMoney(symbol, totals.OtherCosts)
		view.Subtotal = compute.FormatMoney(symbol, totals.Subtotal)
		view.TaxRate = formatNumber(totals.TaxRatePercent)
		view.TaxAmount = compute.FormatMoney(symbol, totals.TaxAmount)
		view.Total = compute.FormatMoney(symbol, totals.Total)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func currencySymbol(tpl model.Template, values model.ValueSet) string {
	if s, ok := values["currency"].(string); ok && s != "" {
		return s
	}
	if tpl.Currency != "" {
		return tpl.Currency
	}
	return "$"
}

func sectionTotalFor(totals model.ComputedTotals, id string) model.SectionTotal {
	for _, st := range totals.Sections {
		if st.ID == id {
			return st
		}
	}
	return model.SectionTotal{}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "Yes"
		}
		return "No"
	case float64:
		return formatNumber(s)
	}
	return ""
}

// formatNumber renders a plain (non-monetary) number without trailing
// zero noise.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var documentTemplate = template.Must(template.New("document").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .document { max-width: 820px; margin: 0 auto; }
    h1 {
      border-bottom: 2px solid #111827;
      padding-bottom: 12px;
      font-size: 24px;
    }
    .fields { margin-bottom: 24px; font-size: 14px; }
    .fields .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .fields img { max-height: 64px; display: block; margin: 4px 0; }
    .fields p { white-space: pre-wrap; margin: 4px 0 12px; }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
      margin-bottom: 8px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .section-total, .totals {
      display: flex;
      justify-content: flex-end;
      font-size: 14px;
      margin-bottom: 16px;
    }
    .totals { flex-direction: column; align-items: flex-end; font-size: 15px; }
    .totals div { margin: 2px 0; }
    .totals .grand { font-size: 18px; font-weight: bold; margin-top: 6px; }
    strong { margin-left: 12px; }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="document">
    <h1>{{.Title}}</h1>

    <div class="fields">
      {{range .Fields}}
      <div class="label">{{.Label}}</div>
      {{if .DataURI}}<img src="{{.Value}}" alt="{{.Label}}" />
      {{else}}<p>{{.Value}}</p>{{end}}
      {{end}}
    </div>

    {{range .Sections}}
    <h2>{{.Label}}</h2>
    <table>
      <thead>
        <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>{{range .Cells}}<td>{{.}}</td>{{end}}<td>{{.Amount}}</td></tr>
        {{end}}
      </tbody>
    </table>
    <div class="section-total"><span>Section subtotal</span><strong>{{.Total}}</strong></div>
    {{end}}

    {{if .HasTotals}}
    <div class="totals">
      <div><span>Total items subtotal</span><strong>{{.ItemsTotal}}</strong></div>
      <div><span>Other costs</span><strong>{{.OtherCosts}}</strong></div>
      <div><span>Subtotal</span><strong>{{.Subtotal}}</strong></div>
      <div><span>Tax ({{.TaxRate}}%)</span><strong>{{.TaxAmount}}</strong></div>
      <div class="grand"><span>Total</span><strong>{{.Total}}</strong></div>
    </div>
    {{end}}
  </div>
</body>
</html>
`))
