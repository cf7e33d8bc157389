package cities

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the city routes on the given API group.
//
// City routes are open: records are not bound to an owner, so no auth gate
// is applied to reads or writes. See DESIGN.md for the reasoning.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/cities", h.List)
	g.GET("/cities/:id", h.Get)
	g.POST("/cities", h.Create)
	g.PUT("/cities/:id", h.Update)
	g.DELETE("/cities/:id", h.Delete)
}
