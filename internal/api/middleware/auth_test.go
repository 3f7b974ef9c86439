package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/core/domain"
)

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, *domain.Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.Identity
	handler := Auth("secret")(func(c echo.Context) error {
		identity, _ := c.Get(ContextIdentity).(domain.Identity)
		got = &identity
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, got
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := sign(t, jwt.MapClaims{
		"sub":   "user-123",
		"email": "boss@admin.org",
		"name":  "boss",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, "secret")

	rec, identity := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if identity == nil {
		t.Fatalf("next not called")
	}
	if identity.ID != "user-123" || identity.Role != domain.RoleAdmin || identity.Email != "boss@admin.org" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"missing header", func(*testing.T) string { return "" }},
		{"invalid header format", func(*testing.T) string { return "Token abc" }},
		{"garbage token", func(*testing.T) string { return "Bearer not-a-token" }},
		{"wrong secret", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.MapClaims{"sub": "u", "role": "admin", "exp": future}, "other")
		}},
		{"expired", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.MapClaims{"sub": "u", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}, "secret")
		}},
		{"no expiry", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.MapClaims{"sub": "u", "role": "admin"}, "secret")
		}},
		{"unknown role", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.MapClaims{"sub": "u", "role": "guest", "exp": future}, "secret")
		}},
		{"missing subject", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.MapClaims{"role": "admin", "exp": future}, "secret")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, identity := runAuth(t, tt.header(t))
			if identity != nil {
				t.Fatalf("should not reach next")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
