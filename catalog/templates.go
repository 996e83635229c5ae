package catalog

import (
	"github.com/mbolis/quick-docs/compute"
	"github.com/mbolis/quick-docs/model"
)

func currencyOptions() []model.Option {
	opts := make([]model.Option, 0, 8)
	for _, c := range compute.Currencies() {
		opts = append(opts, model.Option{Value: c.Symbol, Label: c.Symbol + " (" + c.Locale + ")"})
	}
	return opts
}

func workOrder() model.Template {
	return model.Template{
		ID:          "work-order",
		Name:        "Work Order",
		Description: "Itemized work order with work description, materials and labor tables.",
		Currency:    "$",
		Fields: []model.FieldSchema{
			{ID: "orderNumber", Label: "Order Number", Type: model.TypeText, Required: true, Default: docNumberDefault},
			{ID: "orderDate", Label: "Order Date", Type: model.TypeDate, Required: true},
			{ID: "clientName", Label: "Client Name", Type: model.TypeText, Required: true},
			{ID: "clientAddress", Label: "Client Address", Type: model.TypeTextarea},
			{ID: "clientEmail", Label: "Client Email", Type: model.TypeEmail},
			{ID: "companyName", Label: "Company Name", Type: model.TypeText, Required: true},
			{ID: "companyLogo", Label: "Company Logo", Type: model.TypeFile},
			{ID: "currency", Label: "Currency", Type: model.TypeSelect, Options: currencyOptions()},
			{ID: "includeWorkDescriptionTable", Label: "Include Work Description", Type: model.TypeBoolean, Default: true},
			{ID: "includeMaterialsTable", Label: "Include Materials", Type: model.TypeBoolean},
			{ID: "includeLaborTable", Label: "Include Labor", Type: model.TypeBoolean},
			{ID: "otherCosts", Label: "Other Costs", Type: model.TypeNumber},
			{ID: "taxRatePercentage", Label: "Tax Rate (%)", Type: model.TypeNumber},
			{ID: "notes", Label: "Notes", Type: model.TypeTextarea},
		},
		Sections: []model.SectionSchema{
			{
				ID:      "workItems",
				Label:   "Work Description",
				Toggle:  "includeWorkDescriptionTable",
				Primary: "description",
				Columns: []model.FieldSchema{
					{ID: "description", Label: "Description", Type: model.TypeText},
					{ID: "area", Label: "Area (sq.)", Type: model.TypeNumber},
					{ID: "rate", Label: "Rate", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "area", Y: "rate"},
			},
			{
				ID:      "materials",
				Label:   "Materials",
				Toggle:  "includeMaterialsTable",
				Primary: "name",
				Columns: []model.FieldSchema{
					{ID: "name", Label: "Material", Type: model.TypeText},
					{ID: "quantity", Label: "Quantity", Type: model.TypeNumber},
					{ID: "unit", Label: "Unit", Type: model.TypeSelect, Options: []model.Option{
						{Value: "Pcs", Label: "Pieces"},
						{Value: "Kg", Label: "Kilograms"},
						{Value: "Sq.ft", Label: "Square feet"},
						{Value: "Ltr", Label: "Litres"},
					}},
					{ID: "pricePerUnit", Label: "Price / Unit", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "quantity", Y: "pricePerUnit", XDefaultsOne: true},
			},
			{
				ID:      "labor",
				Label:   "Labor",
				Toggle:  "includeLaborTable",
				Primary: "teamName",
				Columns: []model.FieldSchema{
					{ID: "teamName", Label: "Team", Type: model.TypeText},
					{ID: "numPersons", Label: "Persons", Type: model.TypeNumber},
					{ID: "amount", Label: "Amount", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountDirect, Field: "amount"},
			},
		},
	}
}

func invoice() model.Template {
	return model.Template{
		ID:          "invoice",
		Name:        "Invoice",
		Description: "General purpose invoice with a single line item table.",
		Currency:    "$",
		Fields: []model.FieldSchema{
			{ID: "invoiceNumber", Label: "Invoice Number", Type: model.TypeText, Required: true, Default: docNumberDefault},
			{ID: "invoiceDate", Label: "Invoice Date", Type: model.TypeDate, Required: true},
			{ID: "dueDate", Label: "Due Date", Type: model.TypeDate},
			{ID: "companyName", Label: "Company Name", Type: model.TypeText, Required: true},
			{ID: "companyLogo", Label: "Company Logo", Type: model.TypeFile},
			{ID: "billToName", Label: "Bill To", Type: model.TypeText, Required: true},
			{ID: "billToAddress", Label: "Billing Address", Type: model.TypeTextarea},
			{ID: "billToEmail", Label: "Billing Email", Type: model.TypeEmail},
			{ID: "currency", Label: "Currency", Type: model.TypeSelect, Options: currencyOptions()},
			{ID: "otherCosts", Label: "Other Costs", Type: model.TypeNumber},
			{ID: "taxRatePercentage", Label: "Tax Rate (%)", Type: model.TypeNumber},
			{ID: "paymentTerms", Label: "Payment Terms", Type: model.TypeSelect, Options: []model.Option{
				{Value: "due-on-receipt", Label: "Due on receipt"},
				{Value: "net-15", Label: "Net 15"},
				{Value: "net-30", Label: "Net 30"},
				{Value: "net-60", Label: "Net 60"},
			}},
			{ID: "notes", Label: "Notes", Type: model.TypeTextarea},
		},
		Sections: []model.SectionSchema{
			{
				ID:      "lineItems",
				Label:   "Line Items",
				Primary: "description",
				Columns: []model.FieldSchema{
					{ID: "description", Label: "Description", Type: model.TypeText},
					{ID: "quantity", Label: "Quantity", Type: model.TypeNumber},
					{ID: "unitCost", Label: "Unit Cost", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "quantity", Y: "unitCost", XDefaultsOne: true},
			},
		},
	}
}

func claimInvoice() model.Template {
	return model.Template{
		ID:          "claim-invoice",
		Name:        "Claim Invoice",
		Description: "Insurance claim invoice tying line items to a claim and policy.",
		Currency:    "$",
		Fields: []model.FieldSchema{
			{ID: "claimNumber", Label: "Claim Number", Type: model.TypeText, Required: true, Default: docNumberDefault},
			{ID: "policyNumber", Label: "Policy Number", Type: model.TypeText, Required: true},
			{ID: "claimDate", Label: "Claim Date", Type: model.TypeDate, Required: true},
			{ID: "dateOfLoss", Label: "Date of Loss", Type: model.TypeDate},
			{ID: "insuredName", Label: "Insured Name", Type: model.TypeText, Required: true},
			{ID: "insuredEmail", Label: "Insured Email", Type: model.TypeEmail},
			{ID: "adjusterName", Label: "Adjuster", Type: model.TypeText},
			{ID: "lossDescription", Label: "Loss Description", Type: model.TypeTextarea},
			{ID: "evidencePhoto", Label: "Evidence Photo", Type: model.TypeFile},
			{ID: "currency", Label: "Currency", Type: model.TypeSelect, Options: currencyOptions()},
			{ID: "otherCosts", Label: "Other Costs", Type: model.TypeNumber},
			{ID: "taxRatePercentage", Label: "Tax Rate (%)", Type: model.TypeNumber},
		},
		Sections: []model.SectionSchema{
			{
				ID:      "lineItems",
				Label:   "Claimed Items",
				Primary: "description",
				Columns: []model.FieldSchema{
					{ID: "description", Label: "Description", Type: model.TypeText},
					{ID: "quantity", Label: "Quantity", Type: model.TypeNumber},
					{ID: "unitCost", Label: "Unit Cost", Type: model.TypeNumber},
				},
				Amount: model.AmountRule{Kind: model.AmountProduct, X: "quantity", Y: "unitCost", XDefaultsOne: true},
			},
		},
	}
}

func letterhead() model.Template {
	return model.Template{
		ID:          "letterhead",
		Name:        "Letterhead",
		Description: "Company letterhead for formal correspondence. No totals.",
		Fields: []model.FieldSchema{
			{ID: "companyName", Label: "Company Name", Type: model.TypeText, Required: true},
			{ID: "companyLogo", Label: "Company Logo", Type: model.TypeFile},
			{ID: "tagline", Label: "Tagline", Type: model.TypeText},
			{ID: "letterDate", Label: "Date", Type: model.TypeDate, Required: true},
			{ID: "recipientName", Label: "Recipient", Type: model.TypeText, Required: true},
			{ID: "recipientAddress", Label: "Recipient Address", Type: model.TypeTextarea},
			{ID: "subject", Label: "Subject", Type: model.TypeText, Required: true},
			{ID: "body", Label: "Body", Type: model.TypeTextarea, Required: true},
			{ID: "signatoryName", Label: "Signatory", Type: model.TypeText},
			{ID: "signatureImage", Label: "Signature", Type: model.TypeFile},
			{ID: "contactEmail", Label: "Contact Email", Type: model.TypeEmail},
		},
	}
}
