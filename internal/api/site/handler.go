package siteapi

import (
	"net/http"

	"art-portfolio/internal/content"
	"art-portfolio/internal/domain/site"
	"art-portfolio/internal/domain/social"
	"art-portfolio/internal/domain/theme"
	"art-portfolio/internal/domain/works"
	"art-portfolio/internal/format"
	"art-portfolio/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	// ThemePreferenceKey is where a visitor-chosen theme is remembered.
	ThemePreferenceKey = "pref:theme"

	aboutExcerptLength = 120
)

type Handler struct {
	catalog   *content.Catalog
	store     *storage.Store
	dates     *format.Formatter
	views     *ViewCounter
	publicURL string
}

func NewHandler(catalog *content.Catalog, store *storage.Store, dates *format.Formatter, views *ViewCounter, publicURL string) *Handler {
	if dates == nil {
		dates = format.NewFormatter(format.DefaultLocale)
	}
	return &Handler{catalog: catalog, store: store, dates: dates, views: views, publicURL: publicURL}
}

// GET /portfolio
func (h *Handler) GetPortfolio(c *gin.Context) {
	rules, err := galleryRules(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := h.catalog.Portfolio()

	themeName := c.Query("theme")
	if themeName == "" {
		themeName = storage.Get(c.Request.Context(), h.store, ThemePreferenceKey, p.Theme)
	}
	t := theme.Parse(themeName)

	links := make([]social.Decorated, 0, len(p.Socials))
	for _, l := range p.Socials {
		links = append(links, social.Decorate(l))
	}

	resp := PortfolioResponse{
		Sections: site.Sections,
		Hero: HeroDTO{
			Name:    p.Name,
			Handle:  p.Handle,
			Tagline: p.Tagline,
			Avatar:  p.Avatar,
			Socials: links,
		},
		About: AboutDTO{
			Text:    p.About,
			Excerpt: format.TruncateText(p.About, aboutExcerptLength),
		},
		Gallery: GalleryDTO{
			Order:      rules.Order,
			Category:   rules.Category,
			Categories: site.Categories(p.Artworks),
			Cards:      site.BuildGallery(p.Artworks, rules),
		},
		Contact: ContactDTO{
			Text:  p.ContactText,
			Email: p.ContactEmail,
			Links: links,
		},
		Theme: ThemeDTO{
			Name:    string(t),
			Classes: theme.Classes(string(t)),
			Pattern: theme.Pattern(c.DefaultQuery("pattern", string(theme.PatternKey))),
			Palette: theme.Palette(),
			Intro:   theme.FadeIn(0),
		},
		Views: h.views.Hit(),
	}
	if p.UpdatedOn != "" {
		resp.UpdatedOn = h.dates.FormatDateString(p.UpdatedOn)
	}

	c.JSON(http.StatusOK, resp)
}

// GET /gallery
func (h *Handler) ListGallery(c *gin.Context) {
	rules, err := galleryRules(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artworks := h.catalog.Portfolio().Artworks
	c.JSON(http.StatusOK, GalleryDTO{
		Order:      rules.Order,
		Category:   rules.Category,
		Categories: site.Categories(artworks),
		Cards:      site.BuildGallery(artworks, rules),
	})
}

// GET /gallery/:slug
func (h *Handler) GetArtwork(c *gin.Context) {
	slug := c.Param("slug")

	a, ok := h.catalog.Portfolio().FindArtwork(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	cards := site.BuildGallery([]works.Artwork{a}, site.GalleryRules{})
	c.JSON(http.StatusOK, ArtworkResponse{
		Artwork:   cards[0],
		PublicURL: site.BuildPublicURL(h.publicURL, cards[0].Slug),
	})
}
