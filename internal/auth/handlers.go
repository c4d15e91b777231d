package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/users"
)

// Handlers contains the auth HTTP handlers.
type Handlers struct {
	service *Service
	oauth   *OAuthClient
	users   *users.Service
	logger  zerolog.Logger
}

func NewHandlers(service *Service, oauth *OAuthClient, userSvc *users.Service, logger zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		oauth:   oauth,
		users:   userSvc,
		logger:  logger.With().Str("component", "auth-api").Logger(),
	}
}

// RegisterRoutes registers the public auth routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/callback", h.Callback)
}

// RegisterUserRoutes registers the session-protected user routes.
func (h *Handlers) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/active", h.ActiveUser)
	g.POST("/users/save/:providerId", h.SaveUser)
}

type callbackRequest struct {
	Code string `json:"code"`
}

type tokenReply struct {
	Token string `json:"token"`
}

// Callback exchanges an OAuth authorization code for a session token,
// persisting the authenticated user on the way.
func (h *Handlers) Callback(c echo.Context) error {
	var req callbackRequest
	if err := c.Bind(&req); err != nil || req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing authorization code")
	}

	principal, err := h.oauth.Exchange(c.Request().Context(), req.Code)
	if err != nil {
		h.logger.Warn().Err(err).Msg("OAuth exchange failed")
		if errors.Is(err, ErrOAuthExchange) {
			return echo.NewHTTPError(http.StatusUnauthorized, "authorization code rejected")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "identity provider unavailable")
	}

	username, _ := principal.Attribute("login")
	if _, err := h.users.SaveActive(c.Request().Context(), principal.ID(), username); err != nil {
		h.logger.Error().Err(err).Msg("Failed to save authenticated user")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save user")
	}

	token, err := h.service.GenerateToken(principal)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to issue session token")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(http.StatusOK, tokenReply{Token: token})
}

// ActiveUser returns the provider id of the authenticated session.
func (h *Handlers) ActiveUser(c echo.Context) error {
	claims := ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"providerId": claims.ProviderID,
		"username":   claims.Username,
	})
}

// SaveUser re-persists the session user. The path id must match the token's
// identity so one session cannot write another user's row.
func (h *Handlers) SaveUser(c echo.Context) error {
	claims := ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	providerID := c.Param("providerId")
	if providerID != claims.ProviderID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot save a different user")
	}

	user, err := h.users.SaveActive(c.Request().Context(), claims.ProviderID, claims.Username)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to save user")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save user")
	}
	return c.JSON(http.StatusOK, user)
}
