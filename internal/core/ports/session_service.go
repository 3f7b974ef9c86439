package ports

import (
	"context"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// SessionStore is the session of a single browser profile.
type SessionStore interface {
	Snapshot() domain.Session
	Restore(ctx context.Context) domain.Session
	Login(ctx context.Context, email, password string) domain.Session
	Signup(ctx context.Context, in SignupInput) domain.Session
	Logout(ctx context.Context) domain.Session
}

// SessionRegistry hands out the SessionStore for a profile, synced with
// storage on every Open.
type SessionRegistry interface {
	Open(ctx context.Context, profileID string) SessionStore
}

// TokenIssuer signs bearer tokens for authenticated identities.
type TokenIssuer interface {
	Issue(identity *domain.Identity) (string, error)
}
