package siteapi

import (
	"art-portfolio/internal/domain/site"
	"art-portfolio/internal/domain/social"
	"art-portfolio/internal/domain/theme"
)

type HeroDTO struct {
	Name    string             `json:"name"`
	Handle  string             `json:"handle"`
	Tagline string             `json:"tagline"`
	Avatar  string             `json:"avatar"`
	Socials []social.Decorated `json:"socials"`
}

type AboutDTO struct {
	Text    string `json:"text"`
	Excerpt string `json:"excerpt"`
}

type GalleryDTO struct {
	Order      string      `json:"order"`
	Category   string      `json:"category,omitempty"`
	Categories []string    `json:"categories"`
	Cards      []site.Card `json:"cards"`
}

type ContactDTO struct {
	Text  string             `json:"text"`
	Email string             `json:"email,omitempty"`
	Links []social.Decorated `json:"links"`
}

type ThemeDTO struct {
	Name    string                  `json:"name"`
	Classes theme.ClassSet          `json:"classes"`
	Pattern string                  `json:"pattern"`
	Palette map[string]theme.Shades `json:"palette"`
	Intro   string                  `json:"intro_animation"`
}

type PortfolioResponse struct {
	Sections  []string   `json:"sections"`
	Hero      HeroDTO    `json:"hero"`
	About     AboutDTO   `json:"about"`
	Gallery   GalleryDTO `json:"gallery"`
	Contact   ContactDTO `json:"contact"`
	Theme     ThemeDTO   `json:"theme"`
	UpdatedOn string     `json:"updated_on,omitempty"`
	Views     int64      `json:"views"`
}

type ArtworkResponse struct {
	Artwork   site.Card `json:"artwork"`
	PublicURL string    `json:"public_url"`
}
