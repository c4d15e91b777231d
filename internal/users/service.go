package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/database/sqlc"
)

var ErrUserNotFound = errors.New("user not found")

// User is an identified account with its watchlist favorites.
type User struct {
	ID         string   `json:"id"`
	ProviderID string   `json:"providerId"`
	Username   string   `json:"username"`
	Favorites  []string `json:"favorites"`
}

// Service provides user account storage.
type Service struct {
	queries *sqlc.Queries
	logger  zerolog.Logger
}

// NewService creates a new users service.
func NewService(db *sql.DB, logger zerolog.Logger) *Service {
	return &Service{
		queries: sqlc.New(db),
		logger:  logger.With().Str("component", "users").Logger(),
	}
}

// SaveActive upserts the authenticated user by provider id. The insert is
// idempotent, so concurrent first logins for the same identity converge on
// one row without any per-user locking.
func (s *Service) SaveActive(ctx context.Context, providerID, username string) (*User, error) {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		Username:   username,
		Favorites:  "[]",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Debug().Str("providerId", providerID).Msg("saved active user")
	return rowToUser(row)
}

// Get retrieves a user by provider id.
func (s *Service) Get(ctx context.Context, providerID string) (*User, error) {
	row, err := s.queries.GetUserByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return rowToUser(row)
}

// UpdateFavorites replaces a user's favorites list.
func (s *Service) UpdateFavorites(ctx context.Context, providerID string, favorites []string) error {
	if favorites == nil {
		favorites = []string{}
	}
	raw, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	if err := s.queries.UpdateUserFavorites(ctx, sqlc.UpdateUserFavoritesParams{
		Favorites:  string(raw),
		ProviderID: providerID,
	}); err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
	}
	return nil
}

func rowToUser(row *sqlc.User) (*User, error) {
	var favorites []string
	if row.Favorites != "" {
		if err := json.Unmarshal([]byte(row.Favorites), &favorites); err != nil {
			return nil, fmt.Errorf("corrupt favorites for user %q: %w", row.ProviderID, err)
		}
	}
	return &User{
		ID:         row.ID,
		ProviderID: row.ProviderID,
		Username:   row.Username,
		Favorites:  favorites,
	}, nil
}
