package siteapi

import (
	"fmt"
	"strconv"
	"strings"

	"art-portfolio/internal/domain/site"

	"github.com/gin-gonic/gin"
)

const maxGalleryLimit = 100

// galleryRules reads ?order=asc|desc, ?category= and ?limit= from the query.
func galleryRules(c *gin.Context) (site.GalleryRules, error) {
	var rules site.GalleryRules

	switch order := strings.ToLower(c.Query("order")); order {
	case "", site.OrderAsc, site.OrderDesc:
		rules.Order = order
	default:
		return rules, fmt.Errorf("order must be %q or %q", site.OrderAsc, site.OrderDesc)
	}

	rules.Category = strings.TrimSpace(c.Query("category"))

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxGalleryLimit {
			return rules, fmt.Errorf("limit must be between 0 and %d", maxGalleryLimit)
		}
		rules.MaxArtworks = n
	}

	return rules, nil
}
