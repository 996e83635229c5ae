package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/httpx"
)

func AdminListDrafts(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drafts, err := app.Drafts.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "admin.drafts.list", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"drafts": drafts,
		})
	}
}

func AdminDeleteDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "id")

		_, ok, err := app.Drafts.Load(r.Context(), templateID)
		if err != nil {
			httpx.LogInternalError(w, "admin.drafts.get", err)
			return
		}
		if !ok {
			httpx.LogNotFound(w, "admin.drafts.get", templateID)
			return
		}

		if err := app.Drafts.Delete(r.Context(), templateID); err != nil {
			httpx.LogInternalError(w, "admin.drafts.delete", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
