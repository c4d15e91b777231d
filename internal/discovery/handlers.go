package discovery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers provides HTTP handlers for the discovery endpoints.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new discovery handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers discovery routes on an Echo group. The search
// endpoint is expected to sit behind the search rate limit middleware.
func (h *Handlers) RegisterRoutes(g *echo.Group, searchLimit echo.MiddlewareFunc) {
	g.GET("/daily", h.Daily)
	g.GET("/search", h.Search, searchLimit)
}

// Daily returns today's batch of movies.
// GET /api/v1/movies/daily
func (h *Handlers) Daily(c echo.Context) error {
	entries, err := h.service.DailyBatch(c.Request().Context(), nil)
	if err != nil {
		if errors.Is(err, ErrQuotaUnreachable) {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

// Search returns movies for a free-text query.
// GET /api/v1/movies/search?query=...
func (h *Handlers) Search(c echo.Context) error {
	entries, err := h.service.SearchByTerm(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSearchTerm):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrQuotaUnreachable):
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, entries)
}
