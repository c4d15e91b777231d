package discovery

import "strings"

// imdbIDMarker prefixes every IMDb title id ("tt0133093").
const imdbIDMarker = "tt"

// extractIMDbID pulls an IMDb title id out of an IMDb URL by scanning its
// path segments for one starting with the id marker. Returns "" when the
// link carries no recognizable id.
func extractIMDbID(link string) string {
	if !strings.Contains(link, imdbIDMarker) {
		return ""
	}
	for _, segment := range strings.Split(link, "/") {
		if strings.HasPrefix(segment, imdbIDMarker) {
			return segment
		}
	}
	return ""
}
