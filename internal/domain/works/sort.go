package works

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ParseYear reads the leading integer of year the way a lenient integer parse
// does: surrounding whitespace and an optional sign are allowed, trailing
// junk is ignored ("2023-ish" -> 2023). Digit runs too long for an int
// clamp to math.MaxInt or math.MinInt. ok is false when no digits lead.
func ParseYear(year string) (int, bool) {
	s := strings.TrimLeftFunc(year, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		// out-of-range digit runs still order as very large (or small) years
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortArtworksByYear returns a new slice ordered by parsed year. The sort is
// stable. Unparseable years count as earlier than any real year, so they lead
// an ascending result and trail a descending one.
func SortArtworksByYear(artworks []Artwork, ascending bool) []Artwork {
	out := slices.Clone(artworks)
	slices.SortStableFunc(out, func(a, b Artwork) int {
		c := compareYears(a.Year, b.Year)
		if ascending {
			return c
		}
		return -c
	})
	return out
}

func compareYears(a, b string) int {
	ya, okA := ParseYear(a)
	yb, okB := ParseYear(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return cmp.Compare(ya, yb)
}
