package ports

import (
	"context"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// StatsSource provides the figures shown on each role's dashboard.
type StatsSource interface {
	ResearcherStats(ctx context.Context, userID string) (*domain.ResearcherStats, error)
	CompanyStats(ctx context.Context, userID string) (*domain.CompanyStats, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}

type DashboardService interface {
	Load(ctx context.Context, identity domain.Identity) (*domain.Dashboard, error)
}
