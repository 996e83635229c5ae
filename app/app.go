package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/mbolis/quick-docs/catalog"
	"github.com/mbolis/quick-docs/config"
	"github.com/mbolis/quick-docs/store"
)

// App bundles the shared collaborators every controller needs.
type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config

	Catalog *catalog.Catalog
	// Drafts is the durable tier, Session the transient hand-off tier.
	Drafts  store.Store
	Session store.Store
}
