package prefsapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"

	"art-portfolio/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	keyPrefix    = "pref:"
	maxValueSize = 16 << 10
)

var validKey = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,63}$`)

type Handler struct {
	store *storage.Store
}

func NewHandler(store *storage.Store) *Handler {
	return &Handler{store: store}
}

type PreferenceDTO struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func mustKey(c *gin.Context) (string, bool) {
	key := c.Param("key")
	if !validKey.MatchString(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preference key"})
		return "", false
	}
	return key, true
}

// GET /preferences/:key
func (h *Handler) GetPreference(c *gin.Context) {
	key, ok := mustKey(c)
	if !ok {
		return
	}

	v, err := storage.TryGet[json.RawMessage](c.Request.Context(), h.store, keyPrefix+key)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, PreferenceDTO{Key: key, Value: v})
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"error": "Preference not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preference"})
	}
}

// PUT /preferences/:key  (body is any JSON value)
func (h *Handler) PutPreference(c *gin.Context) {
	key, ok := mustKey(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxValueSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	if len(body) > maxValueSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Preference value too large"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	if err := h.store.TrySet(c.Request.Context(), keyPrefix+key, json.RawMessage(body)); err != nil {
		if errors.Is(err, storage.ErrUnavailable) || errors.Is(err, storage.ErrFull) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preferences are not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		return
	}

	c.JSON(http.StatusOK, PreferenceDTO{Key: key, Value: json.RawMessage(body)})
}
