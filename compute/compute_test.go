package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/quick-docs/model"
)

func workOrderTemplate() model.Template {
	return model.Template{
		ID: "work-order",
		Fields: []model.FieldSchema{
			{ID: "includeWorkDescriptionTable", Type: model.TypeBoolean},
			{ID: "includeMaterialsTable", Type: model.TypeBoolean},
			{ID: "includeLaborTable", Type: model.TypeBoolean},
			{ID: "otherCosts", Type: model.TypeNumber},
			{ID: "taxRatePercentage", Type: model.TypeNumber},
		},
		Sections: []model.SectionSchema{
			{
				ID: "workItems", Label: "Work Description",
				Toggle: "includeWorkDescriptionTable", Primary: "description",
				Columns: []model.FieldSchema{
					{ID: "description", Type: model.TypeText},
					{ID: "area", Type: model.TypeNumber},
					{ID: "rate", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "area", Y: "rate"},
			},
			{
				ID: "materials", Label: "Materials",
				Toggle: "includeMaterialsTable", Primary: "name",
				Columns: []model.FieldSchema{
					{ID: "name", Type: model.TypeText},
					{ID: "quantity", Type: model.TypeNumber},
					{ID: "pricePerUnit", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "quantity", Y: "pricePerUnit", XDefaultsOne: true},
			},
			{
				ID: "labor", Label: "Labor",
				Toggle: "includeLaborTable", Primary: "teamName",
				Columns: []model.FieldSchema{
					{ID: "teamName", Type: model.TypeText},
					{ID: "numPersons", Type: model.TypeNumber},
					{ID: "amount", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountDirect, Field: "amount"},
			},
		},
	}
}

func TestWorkOrderScenario(t *testing.T) {
	values := model.ValueSet{
		"includeWorkDescriptionTable": true,
		"workItems": []model.Row{
			{"description": "Paint wall", "area": "100", "rate": "20"},
		},
		"otherCosts":        50.0,
		"taxRatePercentage": 10.0,
	}

	totals := Totals(workOrderTemplate(), values)

	require.Len(t, totals.Sections, 3)
	assert.Equal(t, 2000.0, totals.Sections[0].Subtotal)
	assert.Equal(t, 2000.0, totals.ItemsSubtotal)
	assert.Equal(t, 2050.0, totals.Subtotal)
	assert.Equal(t, 205.0, totals.TaxAmount)
	assert.Equal(t, 2255.0, totals.Total)
}

func TestMalformedOperandDegradesToZero(t *testing.T) {
	// deliberate leniency: a malformed operand never raises, it counts 0
	values := model.ValueSet{
		"includeWorkDescriptionTable": true,
		"workItems": []model.Row{
			{"description": "X", "area": "abc", "rate": "20"},
		},
	}

	totals := Totals(workOrderTemplate(), values)

	require.Len(t, totals.Sections[0].Rows, 1)
	assert.Equal(t, 0.0, totals.Sections[0].Rows[0].Amount)
	assert.Equal(t, 0.0, totals.Total)
}

func TestEmptyPrimaryRowIsSkipped(t *testing.T) {
	values := model.ValueSet{
		"includeWorkDescriptionTable": true,
		"workItems": []model.Row{
			{"description": "", "area": "100", "rate": "20"},
			{"description": "  ", "area": "5", "rate": "5"},
			{"description": "Real", "area": "10", "rate": "3"},
		},
	}

	totals := Totals(workOrderTemplate(), values)

	st := totals.Sections[0]
	require.Len(t, st.Rows, 1, "empty rows are excluded, not errors")
	assert.Equal(t, 2, st.Rows[0].Index)
	assert.Equal(t, 30.0, st.Subtotal)
}

func TestDisabledSectionContributesNothing(t *testing.T) {
	values := model.ValueSet{
		"includeWorkDescriptionTable": false,
		"workItems": []model.Row{
			{"description": "Valid data underneath", "area": "100", "rate": "20"},
		},
	}

	totals := Totals(workOrderTemplate(), values)

	assert.False(t, totals.Sections[0].Enabled)
	assert.Equal(t, 2000.0, totals.Sections[0].Subtotal, "rows still sum within the section")
	assert.Equal(t, 0.0, totals.ItemsSubtotal, "but a disabled section is excluded from the items subtotal")
	assert.Equal(t, 0.0, totals.Total)
}

func TestQuantityDefaultsToOne(t *testing.T) {
	values := model.ValueSet{
		"includeMaterialsTable": true,
		"materials": []model.Row{
			{"name": "Primer", "pricePerUnit": "40"},
			{"name": "Paint", "quantity": "gallons?", "pricePerUnit": "25"},
			{"name": "Tape", "quantity": "3", "pricePerUnit": "2"},
		},
	}

	totals := Totals(workOrderTemplate(), values)

	st := totals.Sections[1]
	require.Len(t, st.Rows, 3)
	assert.Equal(t, 40.0, st.Rows[0].Amount, "missing quantity counts as 1")
	assert.Equal(t, 25.0, st.Rows[1].Amount, "non-numeric quantity counts as 1")
	assert.Equal(t, 6.0, st.Rows[2].Amount)
	assert.Equal(t, 71.0, st.Subtotal)
}

func TestLaborAmountIsDirect(t *testing.T) {
	values := model.ValueSet{
		"includeLaborTable": true,
		"labor": []model.Row{
			// numPersons is informational only
			{"teamName": "Crew A", "numPersons": "4", "amount": "800"},
			{"teamName": "Crew B", "amount": "450.50"},
		},
	}

	totals := Totals(workOrderTemplate(), values)

	assert.Equal(t, 1250.5, totals.Sections[2].Subtotal)
}

func TestRowOrderDoesNotChangeTotals(t *testing.T) {
	rows := []model.Row{
		{"description": "A", "area": "10", "rate": "2"},
		{"description": "B", "area": "7", "rate": "3"},
		{"description": "C", "area": "1.5", "rate": "4"},
	}
	permuted := []model.Row{rows[2], rows[0], rows[1]}

	tpl := workOrderTemplate()
	a := Totals(tpl, model.ValueSet{"includeWorkDescriptionTable": true, "workItems": rows})
	b := Totals(tpl, model.ValueSet{"includeWorkDescriptionTable": true, "workItems": permuted})

	assert.Equal(t, a.ItemsSubtotal, b.ItemsSubtotal)
	assert.Equal(t, a.Subtotal, b.Subtotal)
	assert.Equal(t, a.Total, b.Total)
}

func TestTotalsAreIdempotent(t *testing.T) {
	values := model.ValueSet{
		"includeWorkDescriptionTable": true,
		"workItems": []model.Row{
			{"description": "Paint wall", "area": "100", "rate": "20"},
		},
		"otherCosts":        "49.99",
		"taxRatePercentage": "7.25",
	}

	tpl := workOrderTemplate()
	first := Totals(tpl, values)
	second := Totals(tpl, values)

	assert.Equal(t, first, second, "recomputation is pure: identical input, identical totals")
}

func TestLenientOtherCostsAndTaxRate(t *testing.T) {
	values := model.ValueSet{
		"otherCosts":        "not a number",
		"taxRatePercentage": map[string]any{"weird": true},
	}

	totals := Totals(workOrderTemplate(), values)

	assert.Equal(t, 0.0, totals.OtherCosts)
	assert.Equal(t, 0.0, totals.TaxRatePercent)
	assert.Equal(t, 0.0, totals.Total)
}

func TestRowsSurviveJSONShapes(t *testing.T) {
	// a ValueSet reloaded from the store arrives as []any of map[string]any
	values := model.ValueSet{
		"includeWorkDescriptionTable": true,
		"workItems": []any{
			map[string]any{"description": "Paint wall", "area": 100.0, "rate": 20.0},
		},
		"otherCosts":        50.0,
		"taxRatePercentage": 10.0,
	}

	totals := Totals(workOrderTemplate(), values)

	assert.Equal(t, 2255.0, totals.Total)
}
