package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/model"
)

func ListTemplates(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates := app.Catalog.List()

		type summary struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		out := make([]summary, 0, len(templates))
		for _, t := range templates {
			out = append(out, summary{t.ID, t.Name, t.Description})
		}

		render.JSON(w, r, map[string]any{
			"templates": out,
		})
	}
}

func GetTemplate(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}

		render.JSON(w, r, map[string]any{
			"template": tpl,
			"defaults": app.Catalog.Defaults(tpl),
		})
	}
}

// templateNotFound is the dedicated not-found presentation: a stale or
// mistyped id is a normal navigational outcome, and the front-end turns
// this body into its "document type not found" page.
func templateNotFound(w http.ResponseWriter, r *http.Request, id string) {
	w.WriteHeader(http.StatusNotFound)
	render.JSON(w, r, map[string]any{
		"error":      "template_not_found",
		"templateId": id,
	})
}

// lookupTemplate resolves the {id} route param against the catalog,
// writing the not-found presentation on a miss.
func lookupTemplate(app app.App, w http.ResponseWriter, r *http.Request) (model.Template, bool) {
	id := chi.URLParam(r, "id")
	tpl, ok := app.Catalog.Get(id)
	if !ok {
		templateNotFound(w, r, id)
	}
	return tpl, ok
}
