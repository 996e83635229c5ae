package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/catalog"
	"github.com/mbolis/quick-docs/config"
	"github.com/mbolis/quick-docs/database"
	"github.com/mbolis/quick-docs/httpx"
	"github.com/mbolis/quick-docs/log"
	"github.com/mbolis/quick-docs/routes"
	"github.com/mbolis/quick-docs/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	cat := catalog.New(catalog.SystemClock(), catalog.UUIDGen)
	if err := cat.Check(); err != nil {
		// template definitions are code: an inconsistent catalog is a
		// build defect, not something to limp along with
		log.Fatal("main.catalog:", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	bearerServer := httpx.NewBearerServer(db, cfg)

	app := app.App{
		DB:           db,
		BearerServer: bearerServer,
		Config:       cfg,
		Catalog:      cat,
		Drafts:       store.Sqlite(db),
		Session:      store.Memory(),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
