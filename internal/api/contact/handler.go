package contactapi

import (
	"net/http"
	"strings"
	"time"

	"art-portfolio/internal/format"
	"art-portfolio/internal/logger"
	"art-portfolio/internal/storage"
	"art-portfolio/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const keyPrefix = "contact:"

type Handler struct {
	store *storage.Store
	dates *format.Formatter
	log   *logger.Logger
	now   func() time.Time
}

func NewHandler(store *storage.Store, dates *format.Formatter, log *logger.Logger) *Handler {
	if dates == nil {
		dates = format.NewFormatter(format.DefaultLocale)
	}
	return &Handler{
		store: store,
		dates: dates,
		log:   log.WithFields(map[string]any{"component": "contact"}),
		now:   time.Now,
	}
}

// Key returns the storage key of a message id.
func Key(id string) string {
	return keyPrefix + id
}

// POST /contact
func (h *Handler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if !validate.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is empty"})
		return
	}

	msg := Message{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Message:    strings.TrimSpace(req.Message),
		ReceivedAt: h.now().UTC(),
	}

	if err := h.store.TrySet(c.Request.Context(), Key(msg.ID), msg); err != nil {
		h.log.Error(err, "failed to store contact message")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Message could not be saved, please try again later"})
		return
	}

	h.log.WithFields(map[string]any{"id": msg.ID}).Info("contact message received")
	c.JSON(http.StatusCreated, ContactResponse{
		ID:         msg.ID,
		ReceivedOn: h.dates.FormatDate(msg.ReceivedAt),
	})
}
