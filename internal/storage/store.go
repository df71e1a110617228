package storage

import (
	"context"

	"flowerytools/internal/extractor"
)

// CatalogStore persists the controls extracted by a docs run so other tools
// can query them without re-scanning the sources.
type CatalogStore interface {
	// SaveCatalog replaces the stored snapshot with controls.
	SaveCatalog(ctx context.Context, controls []extractor.ControlRecord) error

	// LoadCatalog returns every stored control sorted by name.
	LoadCatalog(ctx context.Context) ([]extractor.ControlRecord, error)

	// GetControl returns one control by name.
	GetControl(ctx context.Context, name string) (*extractor.ControlRecord, error)

	Close() error
}
