package works

import "strings"

const CategoryOther = "Other"

var categories = map[string]string{
	"digital art":   "Digital",
	"oil on canvas": "Painting",
	"acrylic":       "Painting",
	"watercolor":    "Painting",
	"mixed media":   "Mixed Media",
	"sculpture":     "Sculpture",
	"photography":   "Photography",
	"drawing":       "Drawing",
	"printmaking":   "Print",
}

// CategorizeArtwork maps a medium to its gallery category, case-insensitively.
// Unknown media fall into CategoryOther.
func CategorizeArtwork(medium string) string {
	if c, ok := categories[strings.ToLower(medium)]; ok {
		return c
	}
	return CategoryOther
}

// Category is shorthand for CategorizeArtwork(a.Medium).
func (a Artwork) Category() string {
	return CategorizeArtwork(a.Medium)
}
