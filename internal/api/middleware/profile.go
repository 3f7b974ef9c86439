package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ProfileCookie = "nexus_profile"
	ProfileHeader = "X-Profile-ID"

	maxProfileIDLen = 128
)

// Profile resolves which browser profile a request belongs to. An explicit
// header wins over the cookie; when neither is present a new id is minted
// and handed back as a long-lived cookie.
func Profile() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(ProfileHeader))
			if id == "" {
				if ck, err := c.Cookie(ProfileCookie); err == nil {
					id = strings.TrimSpace(ck.Value)
				}
			}
			if len(id) > maxProfileIDLen {
				return echo.NewHTTPError(http.StatusBadRequest, "profile id too long")
			}
			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     ProfileCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   365 * 24 * 60 * 60,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextProfile, id)
			c.Response().Header().Set(ProfileHeader, id)
			return next(c)
		}
	}
}
