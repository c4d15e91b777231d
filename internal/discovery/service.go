package discovery

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/catalog"
	"github.com/cinedaily/cinedaily/internal/discovery/netzkino"
	"github.com/cinedaily/cinedaily/internal/discovery/tmdb"
)

const (
	// DefaultQuota is the number of fully enriched entries a fetch run
	// must assemble before it may return success.
	DefaultQuota = 5

	// MaxAttempts bounds the number of search rounds per fetch run.
	MaxAttempts = 10

	dateLayout = "2006-01-02"
)

var (
	ErrQuotaUnreachable  = fmt.Errorf("failed to assemble %d entries after %d attempts", DefaultQuota, MaxAttempts)
	ErrInvalidSearchTerm = errors.New("search term must contain only lowercase letters (a-z)")
)

var searchTermPattern = regexp.MustCompile(`^[a-z]+$`)

// ArtworkPolicy decides what happens to a candidate whose artwork could not
// be resolved.
type ArtworkPolicy int

const (
	// DropMissingArtwork discards the candidate entirely. The daily batch
	// only ever contains fully enriched entries.
	DropMissingArtwork ArtworkPolicy = iota

	// KeepMissingArtwork stores the candidate with the artwork sentinel in
	// place of a URL. Used by the search path, where a sparse result beats
	// no result.
	KeepMissingArtwork
)

// Service runs the movie discovery pipeline: pick a seed term, search,
// enrich, normalize and persist a batch of catalog entries.
type Service struct {
	store   EntryStore
	ledger  SeedLedger
	search  SearchClient
	artwork ArtworkResolver
	logger  zerolog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewService creates a new discovery service.
func NewService(store EntryStore, ledger SeedLedger, search SearchClient, artwork ArtworkResolver, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		ledger:  ledger,
		search:  search,
		artwork: artwork,
		logger:  logger.With().Str("component", "discovery").Logger(),
		now:     time.Now,
	}
}

// DailyBatch returns today's batch of entries, fetching a fresh one from the
// external services only when neither today's date nor the selected seed
// term has been seen before. Store and ledger errors propagate unmodified.
func (s *Service) DailyBatch(ctx context.Context, seedTerms []string) ([]*catalog.Entry, error) {
	today := s.now().Format(dateLayout)

	existing, err := s.store.FindByFetchedDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.logger.Info().
			Str("date", today).
			Int("count", len(existing)).
			Msg("returning cached daily batch")
		return truncate(existing, DefaultQuota), nil
	}

	if len(seedTerms) == 0 {
		seedTerms = defaultSeedTerms
	}
	term := randomTerm(seedTerms)

	used, err := s.ledger.Contains(ctx, term)
	if err != nil {
		return nil, err
	}
	if used {
		s.logger.Info().Str("term", term).Msg("seed term already consumed, serving from store")
		cached, err := s.store.FindBySeedTerm(ctx, term)
		if err != nil {
			return nil, err
		}
		return truncate(cached, DefaultQuota), nil
	}

	s.logger.Info().Str("term", term).Str("date", today).Msg("fetching fresh daily batch")
	return s.fetchBatch(ctx, term, []string{today}, DropMissingArtwork)
}

// SearchByTerm returns entries for a caller-supplied search term, serving
// from the store when the term has produced entries before. Fresh fetches
// carry no fetched date: search results are not a daily batch.
func (s *Service) SearchByTerm(ctx context.Context, term string) ([]*catalog.Entry, error) {
	if !searchTermPattern.MatchString(term) {
		return nil, ErrInvalidSearchTerm
	}

	existing, err := s.store.FindBySeedTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.logger.Info().
			Str("term", term).
			Int("count", len(existing)).
			Msg("returning cached search results")
		return truncate(existing, DefaultQuota), nil
	}

	return s.fetchBatch(ctx, term, nil, KeepMissingArtwork)
}

// fetchBatch runs up to MaxAttempts search rounds, accumulating usable
// entries until the quota is met. Transport failures cost a round but are
// never fatal. On success exactly one batch write and one ledger write
// happen; on failure nothing is persisted.
func (s *Service) fetchBatch(ctx context.Context, term string, fetchedDates []string, policy ArtworkPolicy) ([]*catalog.Entry, error) {
	var collected []*catalog.Entry
	current := term

	for attempt := 0; len(collected) < DefaultQuota && attempt < MaxAttempts; attempt++ {
		posts, err := s.search.Search(ctx, current)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("term", current).
				Int("attempt", attempt+1).
				Msg("search round failed, retrying with new term")
		} else {
			for _, post := range posts {
				entry := s.processCandidate(ctx, post, current, fetchedDates, policy)
				if entry != nil {
					collected = append(collected, entry)
				}
			}
		}

		if len(collected) >= DefaultQuota {
			break
		}

		current = randomTerm(defaultSeedTerms)
		s.logger.Debug().
			Str("term", current).
			Int("collected", len(collected)).
			Int("attempt", attempt+1).
			Msg("quota not met, trying new term")
	}

	if len(collected) < DefaultQuota {
		s.logger.Error().
			Int("collected", len(collected)).
			Msg("quota unreachable, discarding partial batch")
		return nil, ErrQuotaUnreachable
	}

	collected = collected[:DefaultQuota]

	if err := s.store.SaveBatch(ctx, collected); err != nil {
		return nil, err
	}
	// The last term tried produced the batch's tail; that is the one the
	// ledger remembers.
	if err := s.ledger.Record(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("term", current).
		Int("count", len(collected)).
		Msg("persisted discovery batch")
	return collected, nil
}

// processCandidate filters and normalizes one raw candidate. A nil return
// means the candidate was dropped; drops are silent apart from debug logs.
func (s *Service) processCandidate(ctx context.Context, post netzkino.Post, term string, fetchedDates []string, policy ArtworkPolicy) *catalog.Entry {
	if post.CustomFields == nil {
		s.logger.Debug().Str("slug", post.Slug).Msg("candidate has no custom fields, skipping")
		return nil
	}

	link := netzkino.FirstOrDefault(post.CustomFields.IMDbLink, "")
	imdbID := extractIMDbID(link)
	if imdbID == "" {
		s.logger.Debug().Str("slug", post.Slug).Msg("no IMDb id in candidate, skipping")
		return nil
	}

	artworkURL, err := s.artwork.ResolveArtwork(ctx, imdbID)
	if err != nil {
		s.logger.Warn().Err(err).Str("imdbId", imdbID).Msg("artwork resolution failed, skipping candidate")
		return nil
	}
	if artworkURL == tmdb.ArtworkUnavailable && policy == DropMissingArtwork {
		s.logger.Debug().Str("title", post.Title).Msg("no artwork for candidate, skipping")
		return nil
	}

	return normalizeEntry(post, term, fetchedDates, artworkURL)
}

// randomTerm picks a term with a cryptographically strong source so the
// daily selection is not predictable.
func randomTerm(terms []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(terms))))
	if err != nil {
		return terms[0]
	}
	return terms[n.Int64()]
}

func truncate(entries []*catalog.Entry, limit int) []*catalog.Entry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
