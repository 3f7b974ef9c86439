package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

// ActiveSession requires the profile's session to be authenticated as the
// token's subject. It must run after Profile and Auth. The stored identity
// replaces the token claims so role changes and logouts apply immediately.
func ActiveSession(registry ports.SessionRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, _ := c.Get(ContextProfile).(string)
			claimed, _ := c.Get(ContextIdentity).(domain.Identity)
			if profile == "" || claimed.ID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}

			snap := registry.Open(c.Request().Context(), profile).Snapshot()
			if !snap.Authenticated() || snap.Identity.ID != claimed.ID {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}

			c.Set(ContextIdentity, *snap.Identity)
			c.Set(ContextRole, string(snap.Identity.Role))
			return next(c)
		}
	}
}
