package repositories

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/logger"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// CatalogRepository loads the site's reference data.
type CatalogRepository interface {
	Load(ctx context.Context) (*models.Catalog, error)
}

// YAMLCatalogRepository reads the catalog from a YAML document, either the
// bundled one or a file on disk.
type YAMLCatalogRepository struct {
	path string
	data []byte
}

// NewEmbeddedCatalogRepository returns a repository over the bundled catalog.
func NewEmbeddedCatalogRepository() *YAMLCatalogRepository {
	return &YAMLCatalogRepository{data: embeddedCatalog}
}

// NewFileCatalogRepository returns a repository reading the catalog at path on every Load.
func NewFileCatalogRepository(path string) *YAMLCatalogRepository {
	return &YAMLCatalogRepository{path: path}
}

// Load parses and validates the catalog.
func (r *YAMLCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := r.data
	if r.path != "" {
		b, err := os.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}

	catalog, err := DecodeCatalog(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	source := r.path
	if source == "" {
		source = "embedded"
	}
	logger.Debug().
		Str("source", source).
		Int("districts", len(catalog.Districts)).
		Int("records", len(catalog.ServiceRecords)).
		Int("dictionaryKeys", len(catalog.Dictionary)).
		Msg("Catalog loaded")

	return catalog, nil
}

// DecodeCatalog decodes a YAML catalog document and validates it. Unknown
// fields are rejected so typos in hand-edited catalogs surface at boot.
func DecodeCatalog(r io.Reader) (*models.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	catalog := &models.Catalog{}
	if err := dec.Decode(catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog document is empty")
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// EmbeddedCatalog decodes the bundled catalog. The seed uses it to populate
// a fresh database.
func EmbeddedCatalog() (*models.Catalog, error) {
	return DecodeCatalog(bytes.NewReader(embeddedCatalog))
}
