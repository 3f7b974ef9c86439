package service

import (
	"context"
	"errors"
	"testing"

	"github.com/researchnexus/nexus/internal/core/domain"
)

type stubStats struct {
	lastUser string
	err      error
}

func (s *stubStats) ResearcherStats(_ context.Context, userID string) (*domain.ResearcherStats, error) {
	s.lastUser = userID
	return &domain.ResearcherStats{TotalUploads: 12}, s.err
}

func (s *stubStats) CompanyStats(_ context.Context, userID string) (*domain.CompanyStats, error) {
	s.lastUser = userID
	return &domain.CompanyStats{Subscribed: 26}, s.err
}

func (s *stubStats) AdminStats(context.Context) (*domain.AdminStats, error) {
	return &domain.AdminStats{TotalUsers: domain.Metric{Value: 1245}}, s.err
}

func TestDashboardService_DispatchesByRole(t *testing.T) {
	stats := &stubStats{}
	svc := NewDashboardService(stats)

	tests := []struct {
		role  domain.Role
		check func(*domain.Dashboard) bool
	}{
		{domain.RoleResearcher, func(d *domain.Dashboard) bool {
			return d.Researcher != nil && d.Researcher.TotalUploads == 12 && d.Company == nil && d.Admin == nil
		}},
		{domain.RoleCompany, func(d *domain.Dashboard) bool {
			return d.Company != nil && d.Company.Subscribed == 26 && d.Researcher == nil && d.Admin == nil
		}},
		{domain.RoleAdmin, func(d *domain.Dashboard) bool {
			return d.Admin != nil && d.Admin.TotalUsers.Value == 1245 && d.Researcher == nil && d.Company == nil
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			d, err := svc.Load(context.Background(), domain.Identity{ID: "user-7", Role: tt.role})
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if d.Role != tt.role || !tt.check(d) {
				t.Fatalf("unexpected dashboard: %+v", d)
			}
		})
	}
	if stats.lastUser != "user-7" {
		t.Fatalf("expected user id to be passed through, got %q", stats.lastUser)
	}
}

func TestDashboardService_UnknownRole(t *testing.T) {
	svc := NewDashboardService(&stubStats{})
	if _, err := svc.Load(context.Background(), domain.Identity{Role: "guest"}); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestDashboardService_StatsError(t *testing.T) {
	boom := errors.New("stats offline")
	svc := NewDashboardService(&stubStats{err: boom})
	if _, err := svc.Load(context.Background(), domain.Identity{Role: domain.RoleAdmin}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped stats error, got %v", err)
	}
}
