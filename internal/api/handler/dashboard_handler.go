package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get returns the dashboard for the role of the profile's signed-in user.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        X-Profile-ID  header    string  false  "Browser profile id that holds the session (defaults to the nexus_profile cookie)"
// @Success      200           {object}  domain.Dashboard
// @Failure      401           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	d, err := h.service.Load(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
