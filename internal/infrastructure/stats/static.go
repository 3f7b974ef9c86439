// Package stats serves the fixed dashboard figures. No analytics backend
// exists yet; every user of a role sees the same numbers.
package stats

import (
	"context"
	"time"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/pkg/latency"
)

// Static is a ports.StatsSource returning constant figures after a
// simulated delay.
type Static struct {
	delay time.Duration
}

func NewStatic(delay time.Duration) *Static {
	return &Static{delay: delay}
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}

func (s *Static) ResearcherStats(ctx context.Context, _ string) (*domain.ResearcherStats, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	views := []int{120, 150, 200, 180, 220, 250, 300}
	earnings := []float64{100, 120, 150, 180, 210, 240, 280}

	st := &domain.ResearcherStats{
		TotalUploads:   12,
		TotalViews:     1250,
		TotalDownloads: 345,
		TotalEarnings:  1280,
		RecentViews:    make([]domain.ViewPoint, len(months)),
		RecentEarnings: make([]domain.EarningPoint, len(months)),
	}
	for i, m := range months {
		st.RecentViews[i] = domain.ViewPoint{Date: m, Count: views[i]}
		st.RecentEarnings[i] = domain.EarningPoint{Date: m, Amount: earnings[i]}
	}
	return st, nil
}

func (s *Static) CompanyStats(ctx context.Context, _ string) (*domain.CompanyStats, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return &domain.CompanyStats{
		Subscribed: 26,
		Accessed:   145,
		Favorites:  48,
		RecommendedTopics: []string{
			"Hormonal Therapy",
			"Pregnancy Complications",
			"Autoimmune Disorders in Women",
			"Cardiovascular Health",
			"Endometriosis Research",
		},
		RecentActivity: []domain.Activity{
			{Date: "2023-07-15", Type: "download", Paper: "Molecular Basis of Endometriosis"},
			{Date: "2023-07-14", Type: "view", Paper: "Cardiovascular Risk Assessment in Women"},
			{Date: "2023-07-12", Type: "favorite", Paper: "Hormone Replacement Therapy and Cancer Risk"},
			{Date: "2023-07-10", Type: "download", Paper: "Autoimmune Disorders and Pregnancy"},
			{Date: "2023-07-08", Type: "view", Paper: "Personalized Medicine Approaches for Women"},
		},
	}, nil
}

func (s *Static) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return &domain.AdminStats{
		TotalUsers:       domain.Metric{Value: 1245, Change: 15, IsPositive: true},
		ResearchPapers:   domain.Metric{Value: 3872, Change: 23, IsPositive: true},
		PendingApprovals: domain.Metric{Value: 28, Change: 5, IsPositive: false},
		PlatformRevenue:  domain.Metric{Value: 45280, Change: 18, IsPositive: true},
		AwaitingApproval: []domain.Submission{
			{Title: "Endometriosis and Chronic Pain Management", Author: "Dr. Sarah Johnson", Category: "Women's Health", Date: "2023-07-12"},
			{Title: "Hormonal Contraceptives and Depression Risk", Author: "Dr. Emily Chen", Category: "Reproductive Health", Date: "2023-07-11"},
			{Title: "Gender Differences in Cardiovascular Treatment Outcomes", Author: "Dr. Michael Wong", Category: "Cardiovascular", Date: "2023-07-10"},
		},
	}, nil
}
