package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"geoguide/internal/auth"
	"geoguide/internal/cities"
	"geoguide/internal/token"
)

// RegisterRoutes sets up all application routes. It constructs each module's
// repository/service/handler chain and delegates to the module's route
// registration function.
//
// This is the single place where all routes are aggregated.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// --- Public Routes ---

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "GeoGuide API is running...")
	})

	// Health check endpoint for Docker health monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- API Routes ---

	tokens := token.New(a.Config.Auth.JWTSecret, a.Config.Auth.TokenTTL)

	userRepo := auth.NewUserRepository(a.DB)
	authService := auth.NewAuthService(userRepo, tokens)
	authHandler := auth.NewHandler(authService)

	cityRepo := cities.NewCityRepository(a.DB)
	cityService := cities.NewCityService(cityRepo)
	cityHandler := cities.NewHandler(cityService)

	api := e.Group("/api")
	auth.RegisterRoutes(api, authHandler, auth.RequireAuth(authService, tokens), a.Redis)
	cities.RegisterRoutes(api, cityHandler)
}
