package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/filter"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/pkg/metrics"
)

// CatalogService loads the catalog once from its source and answers
// queries from memory. A failed load is retried on the next call.
type CatalogService struct {
	source ports.CatalogSource
	log    zerolog.Logger

	mu      sync.Mutex
	catalog []domain.Research
	loaded  bool
}

func NewCatalogService(source ports.CatalogSource, log zerolog.Logger) *CatalogService {
	return &CatalogService{source: source, log: log}
}

func (s *CatalogService) records(ctx context.Context) ([]domain.Research, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.catalog, nil
	}

	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s.catalog = catalog
	s.loaded = true
	s.log.Info().Int("records", len(catalog)).Msg("catalog loaded")
	return s.catalog, nil
}

// Search applies f to the catalog. An empty result is not an error.
func (s *CatalogService) Search(ctx context.Context, f domain.Filter) ([]domain.Research, error) {
	catalog, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	result := filter.Apply(catalog, f)
	metrics.ResearchQueriesTotal.Inc()
	metrics.ResearchResultSize.Observe(float64(len(result)))
	s.log.Debug().
		Str("search", f.Search).
		Str("field", f.Field).
		Strs("tags", f.Tags).
		Str("date", string(f.Date)).
		Int("results", len(result)).
		Msg("catalog searched")
	return result, nil
}

func (s *CatalogService) Facets(ctx context.Context) (*domain.Facets, error) {
	catalog, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	facets := filter.Facets(catalog)
	return &facets, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Research, error) {
	catalog, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range catalog {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, domain.ErrResearchNotFound
}
