package site

import (
	"strings"

	"art-portfolio/internal/domain/media"
	"art-portfolio/internal/domain/theme"
	"art-portfolio/internal/domain/works"
	"art-portfolio/internal/format"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	cardImageSize   = 600
	cardTitleLength = 24
	cardsPerSecond  = 10
)

// GalleryRules narrows and orders the gallery. Zero value means every
// artwork in content order.
type GalleryRules struct {
	Order       string // "", "asc" or "desc"
	Category    string // case-insensitive; empty = all
	MaxArtworks int    // 0 = unlimited
}

// Card is an artwork decorated with what the gallery grid renders.
type Card struct {
	works.Artwork
	Slug       string `json:"slug"`
	ShortTitle string `json:"short_title"`
	Category   string `json:"category"`
	Sizes      string `json:"sizes"`
	Animation  string `json:"animation"`
}

// BuildGallery applies rules to artworks and decorates the result. The input
// slice is never modified.
func BuildGallery(artworks []works.Artwork, rules GalleryRules) []Card {
	list := artworks
	switch strings.ToLower(rules.Order) {
	case OrderAsc:
		list = works.SortArtworksByYear(artworks, true)
	case OrderDesc:
		list = works.SortArtworksByYear(artworks, false)
	}

	cards := make([]Card, 0, len(list))
	for _, a := range list {
		if rules.Category != "" && !strings.EqualFold(a.Category(), rules.Category) {
			continue
		}
		if rules.MaxArtworks > 0 && len(cards) >= rules.MaxArtworks {
			break
		}
		cards = append(cards, newCard(a, len(cards)))
	}
	return cards
}

func newCard(a works.Artwork, index int) Card {
	a.Image = media.ImageOrPlaceholder(a.Image, cardImageSize, cardImageSize, a.Title)
	return Card{
		Artwork:    a,
		Slug:       ArtworkSlug(a),
		ShortTitle: format.TruncateText(a.Title, cardTitleLength),
		Category:   a.Category(),
		Sizes:      media.ResponsiveImageSizes(),
		Animation:  theme.SlideUp(float64(index) / cardsPerSecond),
	}
}

// Categories lists the distinct categories present, in first-seen order.
func Categories(artworks []works.Artwork) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, a := range artworks {
		c := a.Category()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
