package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/pkg/latency"
)

const demoUserID = "user-123"

// DemoIdentityProvider accepts any credentials after a simulated round
// trip. It exists for demos and fixtures only: the role is guessed from the
// email address and the password is never checked.
type DemoIdentityProvider struct {
	delay time.Duration
	now   func() time.Time
}

func NewDemoIdentityProvider(delay time.Duration) *DemoIdentityProvider {
	return &DemoIdentityProvider{delay: delay, now: time.Now}
}

func (p *DemoIdentityProvider) Login(ctx context.Context, email, _ string) (*domain.Identity, error) {
	if err := latency.Wait(ctx, p.delay); err != nil {
		return nil, fmt.Errorf("demo login: %w", err)
	}
	return &domain.Identity{
		ID:        demoUserID,
		Email:     email,
		Name:      localPart(email),
		Role:      RoleFromEmail(email),
		CreatedAt: p.now().UTC(),
	}, nil
}

func (p *DemoIdentityProvider) Signup(ctx context.Context, in ports.SignupInput) (*domain.Identity, error) {
	if err := latency.Wait(ctx, p.delay); err != nil {
		return nil, fmt.Errorf("demo signup: %w", err)
	}
	now := p.now().UTC()
	return &domain.Identity{
		ID:        fmt.Sprintf("user-%d", now.UnixMilli()),
		Email:     in.Email,
		Name:      in.Name,
		Role:      in.Role,
		CreatedAt: now,
	}, nil
}

// RoleFromEmail applies the demo convention: "admin" anywhere in the
// address wins over "company"; everything else is a researcher.
func RoleFromEmail(email string) domain.Role {
	switch {
	case strings.Contains(email, "admin"):
		return domain.RoleAdmin
	case strings.Contains(email, "company"):
		return domain.RoleCompany
	default:
		return domain.RoleResearcher
	}
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
