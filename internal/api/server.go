package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/api/ratelimit"
	"github.com/cinedaily/cinedaily/internal/auth"
	"github.com/cinedaily/cinedaily/internal/catalog"
	"github.com/cinedaily/cinedaily/internal/config"
	"github.com/cinedaily/cinedaily/internal/database/sqlc"
	"github.com/cinedaily/cinedaily/internal/discovery"
	"github.com/cinedaily/cinedaily/internal/discovery/netzkino"
	"github.com/cinedaily/cinedaily/internal/discovery/tmdb"
	"github.com/cinedaily/cinedaily/internal/users"
	"github.com/cinedaily/cinedaily/internal/watchlist"
)

// Server handles HTTP requests for the CineDaily API.
type Server struct {
	echo      *echo.Echo
	db        *sql.DB
	logger    zerolog.Logger
	cfg       *config.Config
	startTime time.Time

	// Services
	catalogService   *catalog.Service
	discoveryService *discovery.Service
	usersService     *users.Service
	watchlistService *watchlist.Service
	authService      *auth.Service
	oauthClient      *auth.OAuthClient
	searchLimiter    *ratelimit.SearchLimiter
}

// NewServer creates a new API server instance.
func NewServer(db *sql.DB, cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		db:        db,
		logger:    logger,
		cfg:       cfg,
		startTime: time.Now(),
	}

	// Initialize services
	s.catalogService = catalog.NewService(db, logger)
	s.usersService = users.NewService(db, logger)
	s.watchlistService = watchlist.NewService(s.usersService, logger)

	// Initialize the discovery pipeline with its external clients
	searchClient := netzkino.NewClient(cfg.Discovery.Netzkino, logger)
	artworkClient := tmdb.NewClient(cfg.Discovery.TMDB, logger)
	ledger := discovery.NewSQLSeedLedger(db)
	s.discoveryService = discovery.NewService(s.catalogService, ledger, searchClient, artworkClient, logger)

	// Initialize auth
	authService, err := auth.NewService(sqlc.New(db), cfg.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}
	s.authService = authService
	s.oauthClient = auth.NewOAuthClient(&cfg.Auth, logger)

	// Initialize rate limiter for the on-demand search endpoint
	s.searchLimiter = ratelimit.NewSearchLimiter()

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// DiscoveryService exposes the pipeline for scheduled warmup runs.
func (s *Server) DiscoveryService() *discovery.Service {
	return s.discoveryService
}

// Start begins listening for HTTP requests.
func (s *Server) Start(address string) error {
	s.logger.Info().Str("address", address).Msg("starting HTTP server")
	return s.echo.Start(address)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// --- Handler implementations ---

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStatus(c echo.Context) error {
	entries, err := s.catalogService.List(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to count catalog entries for status")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read catalog")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"version":    config.Version,
		"startTime":  s.startTime.Format(time.RFC3339),
		"entryCount": len(entries),
	})
}
