package service

import (
	"context"
	"fmt"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

type DashboardService struct {
	stats ports.StatsSource
}

func NewDashboardService(stats ports.StatsSource) *DashboardService {
	return &DashboardService{stats: stats}
}

// Load returns the dashboard for the identity's role.
func (s *DashboardService) Load(ctx context.Context, identity domain.Identity) (*domain.Dashboard, error) {
	d, err := domain.DispatchRole[*domain.Dashboard](identity.Role, dashboardLoader{
		ctx:      ctx,
		stats:    s.stats,
		identity: identity,
	})
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	return d, nil
}

// dashboardLoader is the per-role dashboard strategy.
type dashboardLoader struct {
	ctx      context.Context
	stats    ports.StatsSource
	identity domain.Identity
}

func (l dashboardLoader) Researcher() (*domain.Dashboard, error) {
	st, err := l.stats.ResearcherStats(l.ctx, l.identity.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{Role: domain.RoleResearcher, Researcher: st}, nil
}

func (l dashboardLoader) Company() (*domain.Dashboard, error) {
	st, err := l.stats.CompanyStats(l.ctx, l.identity.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{Role: domain.RoleCompany, Company: st}, nil
}

func (l dashboardLoader) Admin() (*domain.Dashboard, error) {
	st, err := l.stats.AdminStats(l.ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{Role: domain.RoleAdmin, Admin: st}, nil
}
