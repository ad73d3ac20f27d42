package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// maxStripPasses bounds stripTags for input with nested entity encoding.
const maxStripPasses = 4

// SanitizeAndCleanInputMiddleware strips HTML from every string in a JSON
// body (nested objects and arrays included) using bluemonday. Strings come
// out as plain text, not HTML: "Tom & Jerry" stays "Tom & Jerry".
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		// Only for bodies that may carry JSON
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body any
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		newBody, _ := json.Marshal(sanitizeValue(policy, body))
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitizeValue(policy *bluemonday.Policy, v any) any {
	switch t := v.(type) {
	case string:
		return stripTags(policy, t)
	case map[string]any:
		for k, inner := range t {
			t[k] = sanitizeValue(policy, inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = sanitizeValue(policy, inner)
		}
		return t
	default:
		return v
	}
}

// stripTags removes markup and returns plain text. Sanitize escapes the text
// it keeps, so each pass unescapes it again and repeats until nothing changes;
// encoded tags such as "&lt;b&gt;" therefore cannot come back as real ones.
// Input that never settles stays in escaped form.
func stripTags(policy *bluemonday.Policy, s string) string {
	for range maxStripPasses {
		next := html.UnescapeString(policy.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	return policy.Sanitize(s)
}
