package format

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
	edgeDashes = regexp.MustCompile(`^-+|-+$`)
)

// Slugify turns free text into a URL-safe slug. Any Unicode space (NBSP,
// vertical tab, ideographic space) separates words like an ASCII one.
// Example: "Ancient Wisdom (2023)" -> "ancient-wisdom-2023"
func Slugify(text string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return edgeDashes.ReplaceAllString(s, "")
}

// Ellipsis is appended by TruncateText.
const Ellipsis = "..."

// TruncateText cuts text to maxLength runes and appends Ellipsis. The result
// may be up to len(Ellipsis) runes longer than maxLength.
func TruncateText(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	head := strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace)
	return head + Ellipsis
}
