package site

import (
	"errors"
	"fmt"
	"strings"

	"art-portfolio/internal/domain/social"
	"art-portfolio/internal/domain/works"
	"art-portfolio/internal/validate"
)

// Section types in page order.
const (
	SectionHero    = "hero"
	SectionAbout   = "about"
	SectionGallery = "gallery"
	SectionContact = "contact"
)

var Sections = []string{SectionHero, SectionAbout, SectionGallery, SectionContact}

// Portfolio is the whole content of the one-page site.
type Portfolio struct {
	Name         string          `json:"name" yaml:"name"`
	Handle       string          `json:"handle" yaml:"handle"`
	Tagline      string          `json:"tagline" yaml:"tagline"`
	Avatar       string          `json:"avatar" yaml:"avatar"`
	About        string          `json:"about" yaml:"about"`
	ContactEmail string          `json:"contact_email" yaml:"contact_email"`
	ContactText  string          `json:"contact_text" yaml:"contact_text"`
	Theme        string          `json:"theme" yaml:"theme"`
	UpdatedOn    string          `json:"updated_on,omitempty" yaml:"updated_on"`
	Socials      []social.Link   `json:"socials" yaml:"socials"`
	Artworks     []works.Artwork `json:"artworks" yaml:"artworks"`
}

// Validate checks the content a page cannot render without. All problems
// are reported together.
func (p Portfolio) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.ContactEmail != "" && !validate.IsValidEmail(p.ContactEmail) {
		errs = append(errs, fmt.Errorf("contact_email %q is not a valid email", p.ContactEmail))
	}
	for i, l := range p.Socials {
		if !validate.IsValidURL(l.URL) {
			errs = append(errs, fmt.Errorf("socials[%d] (%s): invalid url %q", i, l.Platform, l.URL))
		}
	}

	seen := make(map[int]bool, len(p.Artworks))
	slugs := make(map[string]int, len(p.Artworks))
	for i, a := range p.Artworks {
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("artworks[%d]: title is required", i))
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("artworks[%d]: duplicate id %d", i, a.ID))
		}
		seen[a.ID] = true

		// each artwork must stay reachable at /gallery/:slug
		slug := ArtworkSlug(a)
		if id, taken := slugs[slug]; taken {
			errs = append(errs, fmt.Errorf("artworks[%d]: slug %q already used by id %d", i, slug, id))
			continue
		}
		slugs[slug] = a.ID
	}

	return errors.Join(errs...)
}

// FindArtwork looks an artwork up by its title slug.
func (p Portfolio) FindArtwork(slug string) (works.Artwork, bool) {
	for _, a := range p.Artworks {
		if ArtworkSlug(a) == slug {
			return a, true
		}
	}
	return works.Artwork{}, false
}
