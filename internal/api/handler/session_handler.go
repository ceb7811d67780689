package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toyshare/toyshare-api/internal/api/metrics"
	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// SessionHandler handles the mock authentication surface.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Login authenticates against the fixed roster and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SessionEventsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.SessionEventsTotal.WithLabelValues("login", "ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Token: result.Token, User: result.User})
}

// Signup fabricates a new account and returns a session token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  sessionResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *SessionHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.sessions.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.SessionEventsTotal.WithLabelValues("signup", "error").Inc()
		return err
	}

	metrics.SessionEventsTotal.WithLabelValues("signup", "ok").Inc()
	return c.JSON(http.StatusCreated, sessionResponse{Token: result.Token, User: result.User})
}

// Logout clears the current user.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		metrics.SessionEventsTotal.WithLabelValues("logout", "error").Inc()
		return err
	}
	metrics.SessionEventsTotal.WithLabelValues("logout", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current user.
//
// @Summary      Get the current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	user := h.sessions.Current(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}
