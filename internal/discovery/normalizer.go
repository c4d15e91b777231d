package discovery

import (
	"strings"

	"github.com/cinedaily/cinedaily/internal/catalog"
	"github.com/cinedaily/cinedaily/internal/discovery/netzkino"
)

// Default values substituted for absent optional fields. Consumers must
// treat them as "unknown", not as real data.
const (
	defaultYear     = "0"
	defaultDirector = "Unknown"
	defaultCast     = "Unknown"
)

// normalizeEntry converts a raw search candidate into a catalog entry.
// It is total over any candidate with a title: every optional field falls
// back to its default instead of failing, and all strings are trimmed.
func normalizeEntry(post netzkino.Post, seedTerm string, fetchedDates []string, artworkURL string) *catalog.Entry {
	fields := post.CustomFields
	if fields == nil {
		fields = &netzkino.CustomFields{}
	}

	dates := make([]string, len(fetchedDates))
	copy(dates, fetchedDates)

	return &catalog.Entry{
		ExternalID:     post.ID,
		Slug:           strings.TrimSpace(post.Slug),
		Title:          strings.TrimSpace(post.Title),
		Year:           strings.TrimSpace(netzkino.FirstOrDefault(fields.Jahr, defaultYear)),
		Overview:       strings.TrimSpace(post.Content),
		Director:       strings.TrimSpace(netzkino.FirstOrDefault(fields.Regisseur, defaultDirector)),
		Cast:           strings.TrimSpace(netzkino.FirstOrDefault(fields.Stars, defaultCast)),
		ImagePrimary:   strings.TrimSpace(netzkino.FirstOrDefault(fields.FeaturedImgAll, "")),
		ImageSecondary: strings.TrimSpace(netzkino.FirstOrDefault(fields.FeaturedImgAllSmall, "")),
		ArtworkURL:     strings.TrimSpace(artworkURL),
		SeedTerms:      []string{seedTerm},
		FetchedDates:   dates,
	}
}
