package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"geoguide/internal/apperror"
)

// Handler handles HTTP requests for authentication (signup, login, me).
// Handlers are thin: they bind the request, call the service, and write the
// response. No business logic lives here.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Signup creates a new account (POST /api/auth/signup). Responds 201 with a
// bearer token and the redacted user view.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	user, tok, err := h.service.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   tok,
		"user":    user,
	})
}

// Login authenticates an existing account (POST /api/auth/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	user, tok, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   tok,
		"user":    user,
	})
}

// Me echoes the authenticated user back (GET /api/auth/me). Clients call it
// after a reload to restore a session from a stored token -- there is no
// server-side session, so the token itself is the only state.
func (h *Handler) Me(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return apperror.NewUnauthorized("authentication required")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user": user,
	})
}
