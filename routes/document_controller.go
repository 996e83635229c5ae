package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/catalog"
	"github.com/mbolis/quick-docs/compute"
	"github.com/mbolis/quick-docs/httpx"
	"github.com/mbolis/quick-docs/log"
	"github.com/mbolis/quick-docs/model"
	renderdoc "github.com/mbolis/quick-docs/render"
	"github.com/mbolis/quick-docs/validate"
)

// decodeAndValidate runs the full input pipeline for one template:
// JSON body -> legacy numbered-slot flattening -> validation. A false
// return means the response was already written (400 or 422).
func decodeAndValidate(tpl model.Template, w http.ResponseWriter, r *http.Request) (model.ValueSet, bool) {
	raw := map[string]any{}
	err := render.DecodeJSON(r.Body, &raw)
	if err != nil {
		httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
		return nil, false
	}

	for _, section := range tpl.Sections {
		raw = catalog.FlattenNumbered(raw, section, numberedPrefix(section.ID))
	}

	values, fieldErrs := validate.Build(tpl).Validate(raw)
	if fieldErrs != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, map[string]any{
			"error":  "validation_failed",
			"fields": fieldErrs,
		})
		return nil, false
	}
	return values, true
}

// numberedPrefix maps a section id to its legacy flat-field prefix
// ("workItems" rows used to arrive as workItem1Description, ...).
func numberedPrefix(sectionID string) string {
	return strings.TrimSuffix(sectionID, "s")
}

func ValidateDocument(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}

		values, ok := decodeAndValidate(tpl, w, r)
		if !ok {
			return
		}

		render.JSON(w, r, map[string]any{
			"values": values,
		})
	}
}

func ComputeTotals(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}

		values, ok := decodeAndValidate(tpl, w, r)
		if !ok {
			return
		}

		render.JSON(w, r, map[string]any{
			"values": values,
			"totals": compute.Totals(tpl, values),
		})
	}
}

func PreviewDocument(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}

		values, ok := decodeAndValidate(tpl, w, r)
		if !ok {
			return
		}

		totals := compute.Totals(tpl, values)
		html, err := renderdoc.HTML(tpl, values, totals)
		if err != nil {
			httpx.LogInternalError(w, "render.document", err)
			return
		}

		w.Header().Set("content-type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}
}
