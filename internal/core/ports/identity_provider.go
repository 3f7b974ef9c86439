package ports

import (
	"context"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// SignupInput carries the fields submitted on the signup form.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// IdentityProvider turns submitted credentials into an Identity. The demo
// provider simulates a remote call; the account provider checks a stored
// password hash.
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Signup(ctx context.Context, in SignupInput) (*domain.Identity, error)
}
