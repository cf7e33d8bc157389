package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"geoguide/internal/apperror"
	"geoguide/internal/token"
)

// contextKeyUser is the Echo context key holding the authenticated user.
const contextKeyUser = "auth_user"

// RequireAuth returns middleware that authenticates requests via a
// `Authorization: Bearer <token>` header. It verifies the token, resolves
// its subject against the user store, and attaches the user (password hash
// never serialized) to the request context. Any failure -- missing header,
// bad signature, expired token, or a subject that no longer exists --
// yields a 401 without distinguishing the cause to the client.
func RequireAuth(service AuthService, tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return apperror.NewUnauthorized("authentication required")
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				return apperror.NewUnauthorized("invalid or expired token")
			}

			user, err := service.UserByID(c.Request().Context(), userID)
			if err != nil {
				// A valid token whose account was since deleted is still
				// unauthenticated; genuine store failures stay 500s.
				var appErr *apperror.AppError
				if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
					return apperror.NewUnauthorized("invalid or expired token")
				}
				return apperror.NewInternal(err)
			}

			c.Set(contextKeyUser, user)
			return next(c)
		}
	}
}

// CurrentUser retrieves the authenticated user from the Echo context.
// Returns nil if the request is not authenticated (middleware not applied).
func CurrentUser(c echo.Context) *User {
	user, ok := c.Get(contextKeyUser).(*User)
	if !ok {
		return nil
	}
	return user
}
