package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers provides HTTP handlers for catalog CRUD operations.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new catalog handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers catalog routes on an Echo group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:slug", h.Get)
	g.PUT("/:slug", h.Update)
	g.DELETE("/:slug", h.Delete)
}

// List returns all catalog entries.
// GET /api/v1/movies
func (h *Handlers) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

// Get returns a single entry by slug.
// GET /api/v1/movies/:slug
func (h *Handlers) Get(c echo.Context) error {
	entry, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

// Create stores a new entry.
// POST /api/v1/movies
func (h *Handlers) Create(c echo.Context) error {
	var entry Entry
	if err := c.Bind(&entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(c.Request().Context(), &entry)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEntry):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicateSlug):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces an existing entry.
// PUT /api/v1/movies/:slug
func (h *Handlers) Update(c echo.Context) error {
	var entry Entry
	if err := c.Bind(&entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if entry.Slug != c.Param("slug") {
		return echo.NewHTTPError(http.StatusBadRequest, "slug in url does not match request body slug")
	}

	updated, err := h.service.Update(c.Request().Context(), &entry)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an entry.
// DELETE /api/v1/movies/:slug
func (h *Handlers) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("slug")); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
