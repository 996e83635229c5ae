package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Admin(app.TokenSecret)).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/templates", ListTemplates(app))
	api.Get("/templates/{id}", GetTemplate(app))

	api.Post("/templates/{id}/validate", ValidateDocument(app))
	api.Post("/templates/{id}/totals", ComputeTotals(app))
	api.Post("/templates/{id}/preview", PreviewDocument(app))

	api.Put("/templates/{id}/draft", SaveDraft(app))
	api.Get("/templates/{id}/draft", LoadDraft(app))
	api.Delete("/templates/{id}/draft", DeleteDraft(app))

	api.Post("/files", UploadFile(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		r.Get("/drafts", AdminListDrafts(app))
		r.Delete("/drafts/{id}", AdminDeleteDraft(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
