package site

import (
	"fmt"
	"strings"

	"art-portfolio/internal/domain/works"
	"art-portfolio/internal/format"
)

/*
	Site / slug helpers
	-------------------
	- Responsible ONLY for:
	  • generating slugs
	  • building public URLs
	- No HTTP, no storage here
*/

// MakeSlug generates the artist's base slug.
// Example: "VALDI D. BUANA" -> "valdi-d-buana"
func MakeSlug(name string) string {
	base := format.Slugify(name)
	if base == "" {
		base = "artist"
	}
	return base
}

// ArtworkSlug is the gallery URL segment of an artwork. Titles that slugify
// to nothing fall back to the numeric id.
func ArtworkSlug(a works.Artwork) string {
	s := format.Slugify(a.Title)
	if s == "" {
		return fmt.Sprintf("artwork-%d", a.ID)
	}
	return s
}

// BuildPublicURL joins the public base URL and an artwork slug.
// Example: ("https://vladaxox.art/", "golden-ratio") -> "https://vladaxox.art/gallery/golden-ratio"
func BuildPublicURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/gallery/" + slug
}
