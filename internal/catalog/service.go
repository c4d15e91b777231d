package catalog

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

var (
	ErrEntryNotFound = errors.New("catalog entry not found")
	ErrDuplicateSlug = errors.New("catalog entry with this slug already exists")
	ErrInvalidEntry  = errors.New("invalid catalog entry")
)

// Service provides catalog entry storage and lookups.
type Service struct {
	db      *sql.DB
	queries *sqlc.Queries
	logger  zerolog.Logger
}

// NewService creates a new catalog service.
func NewService(db *sql.DB, logger zerolog.Logger) *Service {
	return &Service{
		db:      db,
		queries: sqlc.New(db),
		logger:  logger.With().Str("component", "catalog").Logger(),
	}
}

// List returns all catalog entries in creation order.
func (s *Service) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.queries.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return rowsToEntries(rows)
}

// GetBySlug retrieves a catalog entry by slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Entry, error) {
	row, err := s.queries.GetEntryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return rowToEntry(row)
}

// Create creates a new catalog entry. The store-assigned id is generated
// when the input carries none.
func (s *Service) Create(ctx context.Context, entry *Entry) (*Entry, error) {
	if entry == nil || entry.Slug == "" || entry.Title == "" {
		return nil, ErrInvalidEntry
	}

	exists, err := s.queries.EntryExistsBySlug(ctx, entry.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists != 0 {
		return nil, ErrDuplicateSlug
	}

	row, err := s.queries.CreateEntry(ctx, createParams(entry))
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.logger.Debug().Str("slug", entry.Slug).Msg("created catalog entry")
	return rowToEntry(row)
}

// Update replaces the content fields of an existing entry. The slug is the
// identity and cannot change; provenance fields are not touched here.
func (s *Service) Update(ctx context.Context, entry *Entry) (*Entry, error) {
	if entry == nil || entry.Slug == "" {
		return nil, ErrInvalidEntry
	}

	exists, err := s.queries.EntryExistsBySlug(ctx, entry.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists == 0 {
		return nil, ErrEntryNotFound
	}

	row, err := s.queries.UpdateEntry(ctx, sqlc.UpdateEntryParams{
		Title:          entry.Title,
		Year:           entry.Year,
		Overview:       entry.Overview,
		Director:       entry.Director,
		CastList:       entry.Cast,
		ImagePrimary:   entry.ImagePrimary,
		ImageSecondary: entry.ImageSecondary,
		ArtworkUrl:     entry.ArtworkURL,
		Slug:           entry.Slug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return rowToEntry(row)
}

// Delete removes an entry by slug.
func (s *Service) Delete(ctx context.Context, slug string) error {
	exists, err := s.queries.EntryExistsBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if exists == 0 {
		return ErrEntryNotFound
	}

	if err := s.queries.DeleteEntryBySlug(ctx, slug); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Debug().Str("slug", slug).Msg("deleted catalog entry")
	return nil
}

// FindByFetchedDate returns entries whose fetchedDates contains the given
// ISO date (YYYY-MM-DD).
func (s *Service) FindByFetchedDate(ctx context.Context, date string) ([]*Entry, error) {
	rows, err := s.queries.ListEntriesByFetchedDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries by date: %w", err)
	}
	return rowsToEntries(rows)
}

// FindBySeedTerm returns entries whose seedTerms contains the given term.
func (s *Service) FindBySeedTerm(ctx context.Context, term string) ([]*Entry, error) {
	rows, err := s.queries.ListEntriesBySeedTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries by seed term: %w", err)
	}
	return rowsToEntries(rows)
}

// SaveBatch persists a discovery batch in a single transaction. Entries are
// upserted by slug: a new slug is inserted, an existing one keeps its stored
// content and only has the new seed terms and fetched dates appended to its
// provenance. Two runs racing on the same date therefore converge on one row
// per title instead of duplicating it.
func (s *Service) SaveBatch(ctx context.Context, entries []*Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.queries.WithTx(tx)

	for _, entry := range entries {
		existing, err := qtx.GetEntryBySlug(ctx, entry.Slug)
		switch {
		case err == nil:
			terms, derr := appendJSONList(existing.SeedTerms, entry.SeedTerms)
			if derr != nil {
				return derr
			}
			dates, derr := appendJSONList(existing.FetchedDates, entry.FetchedDates)
			if derr != nil {
				return derr
			}
			if err := qtx.UpdateEntryProvenance(ctx, sqlc.UpdateEntryProvenanceParams{
				SeedTerms:    terms,
				FetchedDates: dates,
				Slug:         entry.Slug,
			}); err != nil {
				return fmt.Errorf("failed to merge entry %q: %w", entry.Slug, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			if _, err := qtx.CreateEntry(ctx, createParams(entry)); err != nil {
				return fmt.Errorf("failed to insert entry %q: %w", entry.Slug, err)
			}
		default:
			return fmt.Errorf("failed to look up entry %q: %w", entry.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	s.logger.Info().Int("count", len(entries)).Msg("persisted catalog batch")
	return nil
}

func createParams(entry *Entry) sqlc.CreateEntryParams {
	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}
	return sqlc.CreateEntryParams{
		ID:             id,
		ExternalID:     entry.ExternalID,
		Slug:           entry.Slug,
		Title:          entry.Title,
		Year:           entry.Year,
		Overview:       entry.Overview,
		Director:       entry.Director,
		CastList:       entry.Cast,
		ImagePrimary:   entry.ImagePrimary,
		ImageSecondary: entry.ImageSecondary,
		ArtworkUrl:     entry.ArtworkURL,
		SeedTerms:      mustJSONList(entry.SeedTerms),
		FetchedDates:   mustJSONList(entry.FetchedDates),
	}
}

func rowToEntry(row *sqlc.Entry) (*Entry, error) {
	terms, err := jsonList(row.SeedTerms)
	if err != nil {
		return nil, fmt.Errorf("corrupt seed terms for %q: %w", row.Slug, err)
	}
	dates, err := jsonList(row.FetchedDates)
	if err != nil {
		return nil, fmt.Errorf("corrupt fetched dates for %q: %w", row.Slug, err)
	}
	return &Entry{
		ID:             row.ID,
		ExternalID:     row.ExternalID,
		Slug:           row.Slug,
		Title:          row.Title,
		Year:           row.Year,
		Overview:       row.Overview,
		Director:       row.Director,
		Cast:           row.CastList,
		ImagePrimary:   row.ImagePrimary,
		ImageSecondary: row.ImageSecondary,
		ArtworkURL:     row.ArtworkUrl,
		SeedTerms:      terms,
		FetchedDates:   dates,
	}, nil
}

func rowsToEntries(rows []*sqlc.Entry) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := rowToEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func jsonList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}

func mustJSONList(values []string) string {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return string(raw)
}

func appendJSONList(raw string, add []string) (string, error) {
	values, err := jsonList(raw)
	if err != nil {
		return "", fmt.Errorf("corrupt provenance list: %w", err)
	}
	return mustJSONList(append(values, add...)), nil
}
