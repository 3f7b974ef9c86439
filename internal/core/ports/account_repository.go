package ports

import (
	"context"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// AccountRepository defines persistence for registered accounts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
