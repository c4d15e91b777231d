package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apimw "github.com/cinedaily/cinedaily/internal/api/middleware"
	"github.com/cinedaily/cinedaily/internal/auth"
	"github.com/cinedaily/cinedaily/internal/catalog"
	"github.com/cinedaily/cinedaily/internal/discovery"
	"github.com/cinedaily/cinedaily/internal/watchlist"
)

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Request ID
	s.echo.Use(middleware.RequestID())

	// Security headers
	s.echo.Use(apimw.SecurityHeaders())

	// Request body size limit (1MB)
	s.echo.Use(middleware.BodyLimit("1M"))

	// CORS
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Request logging
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogMethod:   true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Err(v.Error).
					Msg("request error")
			} else {
				s.logger.Info().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Msg("request")
			}
			return nil
		},
	}))

	// Gzip compression
	s.echo.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
}

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)

	api := s.echo.Group("/api/v1")
	api.GET("/status", s.getStatus)

	// Discovery pipeline (daily batch + on-demand search)
	discoveryHandlers := discovery.NewHandlers(s.discoveryService)
	discoveryHandlers.RegisterRoutes(api.Group("/movies"), s.searchLimiter.Middleware())

	// Catalog CRUD
	catalogHandlers := catalog.NewHandlers(s.catalogService)
	catalogHandlers.RegisterRoutes(api.Group("/movies"))

	// OAuth callback (public)
	authHandlers := auth.NewHandlers(s.authService, s.oauthClient, s.usersService, s.logger)
	authHandlers.RegisterRoutes(api)

	// Session-protected user and watchlist routes
	protected := api.Group("")
	protected.Use(s.authService.Middleware())
	authHandlers.RegisterUserRoutes(protected)

	watchlistHandlers := watchlist.NewHandlers(s.watchlistService)
	watchlistHandlers.RegisterRoutes(protected.Group("/users/watchlist"))
}
