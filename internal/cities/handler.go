package cities

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"geoguide/internal/apperror"
)

// Handler handles HTTP requests for city records. Handlers are thin: they
// bind the request, call the service, and write the response.
type Handler struct {
	service CityService
}

// NewHandler creates a new cities handler with the given service.
func NewHandler(service CityService) *Handler {
	return &Handler{service: service}
}

// List returns all cities (GET /api/cities).
func (h *Handler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get returns a single city (GET /api/cities/:id).
func (h *Handler) Get(c echo.Context) error {
	city, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, city)
}

// Create adds a new city (POST /api/cities).
func (h *Handler) Create(c echo.Context) error {
	var req CreateCityRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	city, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, city)
}

// Update applies a partial update (PUT /api/cities/:id).
func (h *Handler) Update(c echo.Context) error {
	var req UpdateCityRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	city, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, city)
}

// Delete removes a city (DELETE /api/cities/:id). Success has no body.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
