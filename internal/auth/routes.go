package auth

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"geoguide/internal/middleware"
)

// RegisterRoutes sets up the auth routes on the given API group.
//
// The credential endpoints are rate-limited per IP to slow brute-force and
// credential stuffing: 10 attempts per minute for login, 5 for signup.
// /auth/me sits behind the bearer-token gate.
func RegisterRoutes(g *echo.Group, h *Handler, gate echo.MiddlewareFunc, rdb *redis.Client) {
	g.POST("/auth/signup", h.Signup, middleware.RateLimit(rdb, 5, time.Minute))
	g.POST("/auth/login", h.Login, middleware.RateLimit(rdb, 10, time.Minute))
	g.GET("/auth/me", h.Me, gate)
}
