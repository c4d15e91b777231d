package discovery

import (
	"context"

	"github.com/cinedaily/cinedaily/internal/catalog"
	"github.com/cinedaily/cinedaily/internal/discovery/netzkino"
)

// SearchClient is the interface for the external free-text search service.
type SearchClient interface {
	Search(ctx context.Context, term string) ([]netzkino.Post, error)
}

// ArtworkResolver is the interface for the external per-title metadata
// service. Implementations return the artwork sentinel instead of an error
// when the id resolves but carries no usable image.
type ArtworkResolver interface {
	ResolveArtwork(ctx context.Context, imdbID string) (string, error)
}

// EntryStore is the catalog persistence surface the pipeline depends on.
type EntryStore interface {
	FindByFetchedDate(ctx context.Context, date string) ([]*catalog.Entry, error)
	FindBySeedTerm(ctx context.Context, term string) ([]*catalog.Entry, error)
	SaveBatch(ctx context.Context, entries []*catalog.Entry) error
}

// SeedLedger records which seed terms have already been consumed.
// Existence alone is the signal.
type SeedLedger interface {
	Contains(ctx context.Context, term string) (bool, error)
	Record(ctx context.Context, term string) error
}
