package watchlist

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/users"
)

// Service provides per-user watchlist toggling on top of the users store.
type Service struct {
	users  *users.Service
	logger zerolog.Logger
}

// NewService creates a new watchlist service.
func NewService(userService *users.Service, logger zerolog.Logger) *Service {
	return &Service{
		users:  userService,
		logger: logger.With().Str("component", "watchlist").Logger(),
	}
}

// Contains reports whether a movie slug is on the user's watchlist.
// An unknown user simply has nothing on their watchlist.
func (s *Service) Contains(ctx context.Context, providerID, slug string) (bool, error) {
	user, err := s.users.Get(ctx, providerID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return slices.Contains(user.Favorites, slug), nil
}

// Add puts a movie slug on the user's watchlist. Adding an already present
// slug is a no-op.
func (s *Service) Add(ctx context.Context, providerID, slug string) error {
	user, err := s.users.Get(ctx, providerID)
	if err != nil {
		return err
	}

	if slices.Contains(user.Favorites, slug) {
		return nil
	}

	s.logger.Debug().Str("providerId", providerID).Str("slug", slug).Msg("adding to watchlist")
	return s.users.UpdateFavorites(ctx, providerID, append(user.Favorites, slug))
}

// Remove takes a movie slug off the user's watchlist. Removing an absent
// slug is a no-op.
func (s *Service) Remove(ctx context.Context, providerID, slug string) error {
	user, err := s.users.Get(ctx, providerID)
	if err != nil {
		return err
	}

	idx := slices.Index(user.Favorites, slug)
	if idx < 0 {
		return nil
	}

	s.logger.Debug().Str("providerId", providerID).Str("slug", slug).Msg("removing from watchlist")
	return s.users.UpdateFavorites(ctx, providerID, slices.Delete(user.Favorites, idx, idx+1))
}
