package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/quick-docs/compute"
	"github.com/mbolis/quick-docs/model"
)

func testTemplate() model.Template {
	return model.Template{
		ID:       "work-order",
		Name:     "Work Order",
		Currency: "$",
		Fields: []model.FieldSchema{
			{ID: "clientName", Label: "Client Name", Type: model.TypeText},
			{ID: "notes", Label: "Notes", Type: model.TypeTextarea},
			{ID: "includeWorkDescriptionTable", Label: "Include Work Description", Type: model.TypeBoolean},
			{ID: "includeMaterialsTable", Label: "Include Materials", Type: model.TypeBoolean},
			{ID: "otherCosts", Label: "Other Costs", Type: model.TypeNumber},
			{ID: "taxRatePercentage", Label: "Tax Rate (%)", Type: model.TypeNumber},
		},
		Sections: []model.SectionSchema{
			{
				ID: "workItems", Label: "Work Description",
				Toggle: "includeWorkDescriptionTable", Primary: "description",
				Columns: []model.FieldSchema{
					{ID: "description", Label: "Description", Type: model.TypeText},
					{ID: "area", Label: "Area", Type: model.TypeNumber},
					{ID: "rate", Label: "Rate", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "area", Y: "rate"},
			},
			{
				ID: "materials", Label: "Materials",
				Toggle: "includeMaterialsTable", Primary: "name",
				Columns: []model.FieldSchema{
					{ID: "name", Label: "Material", Type: model.TypeText},
					{ID: "quantity", Label: "Quantity", Type: model.TypeNumber},
					{ID: "pricePerUnit", Label: "Price / Unit", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "quantity", Y: "pricePerUnit", XDefaultsOne: true},
			},
		},
	}
}

func TestHTMLDocument(t *testing.T) {
	tpl := testTemplate()
	values := model.ValueSet{
		"clientName":                  "ACME Corp",
		"includeWorkDescriptionTable": true,
		"includeMaterialsTable":       false,
		"workItems": []model.Row{
			{"description": "Paint wall", "area": "100", "rate": "20"},
			{"description": "", "area": "9", "rate": "9"},
		},
		"materials": []model.Row{
			{"name": "Hidden", "quantity": "1", "pricePerUnit": "99"},
		},
		"otherCosts":        50.0,
		"taxRatePercentage": 10.0,
	}
	totals := compute.Totals(tpl, values)

	html, err := HTML(tpl, values, totals)
	require.NoError(t, err)

	assert.Contains(t, html, "ACME Corp")
	assert.Contains(t, html, "Paint wall")
	assert.Contains(t, html, "$2000.00")
	assert.Contains(t, html, "$2050.00")
	assert.Contains(t, html, "$205.00")
	assert.Contains(t, html, "$2255.00")
	assert.Contains(t, html, "Tax (10%)")

	assert.NotContains(t, html, "Hidden", "rows of a disabled section are not rendered")
	assert.NotContains(t, html, "Include Work Description", "toggles are layout, not content")
	assert.Equal(t, 1, strings.Count(html, "<tr><td>Paint wall"), "the empty row is dropped from the table")
}

func TestHTMLEscapesContent(t *testing.T) {
	tpl := testTemplate()
	values := model.ValueSet{
		"clientName": "<script>alert(1)</script>",
	}

	html, err := HTML(tpl, values, compute.Totals(tpl, values))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestHTMLWithoutSectionsOmitsTotals(t *testing.T) {
	tpl := model.Template{
		ID:   "letterhead",
		Name: "Letterhead",
		Fields: []model.FieldSchema{
			{ID: "body", Label: "Body", Type: model.TypeTextarea},
		},
	}
	values := model.ValueSet{"body": "Dear reader,\nhello."}

	html, err := HTML(tpl, values, compute.Totals(tpl, values))
	require.NoError(t, err)

	assert.Contains(t, html, "Dear reader,")
	assert.NotContains(t, html, "Total items subtotal")
}
