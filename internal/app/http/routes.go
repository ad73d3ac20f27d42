package routes

import (
	contactapi "art-portfolio/internal/api/contact"
	prefsapi "art-portfolio/internal/api/prefs"
	siteapi "art-portfolio/internal/api/site"
	"art-portfolio/internal/app/http/middleware"
	"art-portfolio/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Site    *siteapi.Handler
	Contact *contactapi.Handler
	Prefs   *prefsapi.Handler

	// Writes throttles the public write routes per client. Nil = unthrottled.
	Writes *ratelimit.KeyedThrottler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/portfolio", h.Site.GetPortfolio)
	r.GET("/gallery", h.Site.ListGallery)
	r.GET("/gallery/:slug", h.Site.GetArtwork)

	throttle := middleware.ThrottleWrites(h.Writes)

	r.GET("/preferences/:key", h.Prefs.GetPreference)
	r.PUT("/preferences/:key", throttle, h.Prefs.PutPreference)

	// ✅ Apply input sanitization to visitor-written text only
	public := r.Group("/")
	public.Use(throttle, middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/contact", h.Contact.Submit)
}
