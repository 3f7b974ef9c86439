package ports

import (
	"context"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// CatalogSource loads the full research catalog in its canonical order.
type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Research, error)
}

// CatalogService answers catalog queries.
type CatalogService interface {
	Search(ctx context.Context, filter domain.Filter) ([]domain.Research, error)
	Facets(ctx context.Context) (*domain.Facets, error)
	Get(ctx context.Context, id string) (*domain.Research, error)
}
