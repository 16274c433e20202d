package repositories

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wbvaa/portal/internal/config"
)

// Repositories holds all the repository instances
type Repositories struct {
	CatalogRepository CatalogRepository
}

// NewRepositories selects the catalog source named in the config. The pool is
// only used by the postgres source and may be nil otherwise.
func NewRepositories(cfg *config.Config, db *pgxpool.Pool) (*Repositories, error) {
	var catalog CatalogRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourceEmbedded, "":
		catalog = NewEmbeddedCatalogRepository()
	case config.CatalogSourceFile:
		catalog = NewFileCatalogRepository(cfg.Catalog.Path)
	case config.CatalogSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres catalog source requires a database pool")
		}
		catalog = NewPostgresCatalogRepository(db)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	return &Repositories{CatalogRepository: catalog}, nil
}
