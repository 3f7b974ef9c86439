package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

// SessionHandler exposes the per-profile session store over HTTP.
type SessionHandler struct {
	registry ports.SessionRegistry
	tokens   ports.TokenIssuer
	log      zerolog.Logger
}

func NewSessionHandler(registry ports.SessionRegistry, tokens ports.TokenIssuer, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{registry: registry, tokens: tokens, log: log}
}

func (h *SessionHandler) respond(c echo.Context, status int, snap domain.Session) error {
	resp := sessionResponse{Session: snap}
	if snap.Authenticated() {
		token, err := h.tokens.Issue(snap.Identity)
		if err != nil {
			h.log.Error().Err(err).Str("user_id", snap.Identity.ID).Msg("token signing failed")
			return err
		}
		resp.Token = token
	}
	return c.JSON(status, resp)
}

func (h *SessionHandler) store(c echo.Context) (ports.SessionStore, error) {
	profile, err := ctxProfile(c)
	if err != nil {
		return nil, err
	}
	return h.registry.Open(c.Request().Context(), profile), nil
}

// Get returns the profile's session, restoring it on first use.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Param        X-Profile-ID  header    string  false  "Browser profile id (defaults to the nexus_profile cookie)"
// @Success      200           {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	st, err := h.store(c)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, st.Snapshot())
}

// Login authenticates the profile.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  sessionResponse
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	st, err := h.store(c)
	if err != nil {
		return err
	}

	snap := st.Login(c.Request().Context(), req.Email, req.Password)
	if snap.Error != "" {
		return h.respond(c, http.StatusUnauthorized, snap)
	}
	return h.respond(c, http.StatusOK, snap)
}

// Signup registers a new account and authenticates the profile with it.
//
// @Summary      Sign up
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  sessionResponse
// @Router       /v1/session/signup [post]
func (h *SessionHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	st, err := h.store(c)
	if err != nil {
		return err
	}

	snap := st.Signup(c.Request().Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
	})
	if snap.Error != "" {
		return h.respond(c, http.StatusUnauthorized, snap)
	}
	return h.respond(c, http.StatusCreated, snap)
}

// Logout clears the profile's session.
//
// @Summary      Logout
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	st, err := h.store(c)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, st.Logout(c.Request().Context()))
}
