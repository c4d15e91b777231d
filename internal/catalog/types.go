package catalog

// Entry is a single catalog entry for a title.
//
// SeedTerms and FetchedDates are append-only provenance: which search terms
// produced this entry and on which calendar dates it was selected into a
// daily batch. Both may contain duplicates across fetch runs.
type Entry struct {
	ID             string   `json:"id"`
	ExternalID     int64    `json:"externalId"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Year           string   `json:"year"`
	Overview       string   `json:"overview"`
	Director       string   `json:"director"`
	Cast           string   `json:"cast"`
	ImagePrimary   string   `json:"imagePrimary"`
	ImageSecondary string   `json:"imageSecondary"`
	ArtworkURL     string   `json:"artworkUrl"`
	SeedTerms      []string `json:"seedTerms"`
	FetchedDates   []string `json:"fetchedDates"`
}
