package routes

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/httpx"
	"github.com/mbolis/quick-docs/log"
	"github.com/mbolis/quick-docs/store"
)

// tierStore picks the retention tier from the ?tier query param:
// "session" hands the draft to the next screen only, "durable" (the
// default) keeps it across browser sessions.
func tierStore(app app.App, r *http.Request) (store.Store, bool) {
	switch r.URL.Query().Get("tier") {
	case "", "durable":
		return app.Drafts, true
	case "session":
		return app.Session, true
	}
	return nil, false
}

func SaveDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}
		drafts, ok := tierStore(app, r)
		if !ok {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_query_param.tier")
			return
		}

		values, ok := decodeAndValidate(tpl, w, r)
		if !ok {
			return
		}

		err := drafts.Save(r.Context(), tpl.ID, values)
		if err != nil {
			// recoverable: the client still holds the values it sent,
			// the editing session goes on locally
			log.Errorf("draft.save: %s", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]any{
				"error":   "draft_not_saved",
				"message": "The draft could not be saved. Your document is unchanged, try again.",
			})
			return
		}

		render.JSON(w, r, map[string]any{
			"templateId": tpl.ID,
			"saved":      true,
		})
	}
}

func LoadDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}

		// the session tier wins: it holds the freshest hand-off
		for _, drafts := range []store.Store{app.Session, app.Drafts} {
			values, ok, err := drafts.Load(r.Context(), tpl.ID)
			if err != nil {
				httpx.LogInternalError(w, "draft.load", err)
				return
			}
			if ok {
				render.JSON(w, r, map[string]any{
					"templateId": tpl.ID,
					"values":     values,
				})
				return
			}
		}

		httpx.LogNotFound(w, "draft.load", tpl.ID)
	}
}

func DeleteDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, ok := lookupTemplate(app, w, r)
		if !ok {
			return
		}

		for _, drafts := range []store.Store{app.Session, app.Drafts} {
			if err := drafts.Delete(r.Context(), tpl.ID); err != nil {
				httpx.LogInternalError(w, "draft.delete", err)
				return
			}
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
