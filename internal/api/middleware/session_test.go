package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

type fixedStore struct{ snap domain.Session }

func (s fixedStore) Snapshot() domain.Session                                { return s.snap }
func (s fixedStore) Restore(context.Context) domain.Session                  { return s.snap }
func (s fixedStore) Logout(context.Context) domain.Session                   { return s.snap }
func (s fixedStore) Login(context.Context, string, string) domain.Session    { return s.snap }
func (s fixedStore) Signup(context.Context, ports.SignupInput) domain.Session { return s.snap }

type fixedRegistry map[string]domain.Session

func (r fixedRegistry) Open(_ context.Context, profileID string) ports.SessionStore {
	snap, ok := r[profileID]
	if !ok {
		snap = domain.Session{State: domain.SessionAnonymous}
	}
	return fixedStore{snap: snap}
}

func runActiveSession(t *testing.T, registry ports.SessionRegistry, profile string, claimed domain.Identity) (*httptest.ResponseRecorder, *domain.Identity, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextProfile, profile)
	c.Set(ContextIdentity, claimed)
	c.Set(ContextRole, string(claimed.Role))

	var got *domain.Identity
	err := ActiveSession(registry)(func(c echo.Context) error {
		identity, _ := c.Get(ContextIdentity).(domain.Identity)
		got = &identity
		if role, _ := c.Get(ContextRole).(string); role != string(identity.Role) {
			t.Fatalf("role %q does not match identity %+v", role, identity)
		}
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, got, err
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func TestActiveSession_AllowsMatchingSession(t *testing.T) {
	stored := domain.Identity{ID: "user-1", Email: "a@company.com", Role: domain.RoleCompany}
	registry := fixedRegistry{"p1": {State: domain.SessionAuthenticated, Identity: &stored}}

	claimed := domain.Identity{ID: "user-1", Email: "a@company.com", Role: domain.RoleResearcher}
	rec, got, err := runActiveSession(t, registry, "p1", claimed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got == nil || got.Role != domain.RoleCompany {
		t.Fatalf("expected the stored identity to replace the claims, got %+v", got)
	}
}

func TestActiveSession_Rejects(t *testing.T) {
	stored := domain.Identity{ID: "user-1", Role: domain.RoleAdmin}
	registry := fixedRegistry{
		"signed-in": {State: domain.SessionAuthenticated, Identity: &stored},
		"loading":   {State: domain.SessionLoading, Identity: &stored, Loading: true},
	}

	cases := []struct {
		name    string
		profile string
		claimed domain.Identity
	}{
		{"logged out profile", "logged-out", domain.Identity{ID: "user-1", Role: domain.RoleAdmin}},
		{"different subject", "signed-in", domain.Identity{ID: "user-2", Role: domain.RoleAdmin}},
		{"operation in flight", "loading", domain.Identity{ID: "user-1", Role: domain.RoleAdmin}},
		{"missing profile", "", domain.Identity{ID: "user-1", Role: domain.RoleAdmin}},
		{"missing claims", "signed-in", domain.Identity{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, got, err := runActiveSession(t, registry, tc.profile, tc.claimed)
			if statusOf(err) != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
			if got != nil {
				t.Fatalf("next handler must not run")
			}
		})
	}
}
