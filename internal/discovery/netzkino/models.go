package netzkino

// SearchResponse represents the Netzkino search API response.
type SearchResponse struct {
	SearchTerm string `json:"searchTerm"`
	Status     string `json:"status"`
	CountTotal int    `json:"count_total"`
	Count      int    `json:"count"`
	Page       int    `json:"page"`
	Posts      []Post `json:"posts"`
}

// Post is a single raw search candidate. Everything beyond id, slug and
// title is optional upstream and may be absent.
type Post struct {
	ID           int64         `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Thumbnail    string        `json:"thumbnail"`
	CustomFields *CustomFields `json:"custom_fields"`
}

// CustomFields is the bag of optional string-list attributes attached to a
// post. The upstream API encodes every attribute as a list, usually with a
// single element, and omits attributes it has no value for.
type CustomFields struct {
	Jahr                []string `json:"Jahr"`
	Regisseur           []string `json:"Regisseur"`
	Stars               []string `json:"Stars"`
	Duration            []string `json:"Duration"`
	FSK                 []string `json:"FSK"`
	IMDbLink            []string `json:"IMDb-Link"`
	FeaturedImgAll      []string `json:"featured_img_all"`
	FeaturedImgAllSmall []string `json:"featured_img_all_small"`
}

// FirstOrDefault returns the first element of an attribute list, or the
// fallback when the list is absent or empty.
func FirstOrDefault(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
