package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/api/middleware"
	"github.com/researchnexus/nexus/internal/core/domain"
)

// ctxProfile returns the browser profile resolved by the Profile middleware.
func ctxProfile(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextProfile).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing profile")
	}
	return id, nil
}

// ctxIdentity returns the identity injected by the Auth middleware. A
// missing identity means the route was mounted without Auth.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.ContextIdentity).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
