package watchlist

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinedaily/cinedaily/internal/users"
)

// Handlers provides HTTP handlers for watchlist operations.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new watchlist handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers watchlist routes on an Echo group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/:providerId/:slug", h.Contains)
	g.POST("/:providerId/:slug", h.Add)
	g.DELETE("/:providerId/:slug", h.Remove)
}

// Contains reports whether a movie is on the user's watchlist.
// GET /api/v1/users/watchlist/:providerId/:slug
func (h *Handlers) Contains(c echo.Context) error {
	inWatchlist, err := h.service.Contains(c.Request().Context(), c.Param("providerId"), c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"inWatchlist": inWatchlist})
}

// Add puts a movie on the user's watchlist.
// POST /api/v1/users/watchlist/:providerId/:slug
func (h *Handlers) Add(c echo.Context) error {
	err := h.service.Add(c.Request().Context(), c.Param("providerId"), c.Param("slug"))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "movie added to watchlist"})
}

// Remove takes a movie off the user's watchlist.
// DELETE /api/v1/users/watchlist/:providerId/:slug
func (h *Handlers) Remove(c echo.Context) error {
	err := h.service.Remove(c.Request().Context(), c.Param("providerId"), c.Param("slug"))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "movie removed from watchlist"})
}
