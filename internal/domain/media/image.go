package media

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultPlaceholderBG   = "f3f4f6"
	DefaultPlaceholderText = "6b7280"
)

// ResponsiveImageSizes is the `sizes` attribute used for gallery cards:
// full width on phones, half on tablets, a third on desktops.
func ResponsiveImageSizes() string {
	return "(max-width: 768px) 100vw, (max-width: 1200px) 50vw, 33vw"
}

// PlaceholderURL builds the local placeholder image URL. Empty colors fall
// back to the neutral defaults; text is query-escaped.
func PlaceholderURL(width, height int, text, bgColor, textColor string) string {
	if bgColor == "" {
		bgColor = DefaultPlaceholderBG
	}
	if textColor == "" {
		textColor = DefaultPlaceholderText
	}
	return fmt.Sprintf("/placeholder.svg?height=%d&width=%d&text=%s&bg=%s&color=%s",
		height, width, url.QueryEscape(text), bgColor, textColor)
}

// ImageOrPlaceholder returns path, or a placeholder labelled with alt when
// path is blank.
func ImageOrPlaceholder(path string, width, height int, alt string) string {
	if strings.TrimSpace(path) != "" {
		return path
	}
	return PlaceholderURL(width, height, alt, "", "")
}
