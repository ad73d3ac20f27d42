package theme

import (
	"fmt"
	"strings"
)

type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"

	DefaultTheme = Light
)

// ClassSet is the set of utility classes the page applies for one theme.
type ClassSet struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Card       string `json:"card"`
	Border     string `json:"border"`
}

var classRegistry = map[Name]ClassSet{
	Light: {
		Background: "bg-gradient-to-br from-slate-50 via-amber-50 to-blue-50",
		Text:       "text-slate-900",
		Card:       "bg-white",
		Border:     "border-slate-200",
	},
	Dark: {
		Background: "bg-gradient-to-br from-slate-900 via-slate-800 to-slate-900",
		Text:       "text-slate-100",
		Card:       "bg-slate-800",
		Border:     "border-slate-700",
	},
}

// Parse normalizes a theme name, falling back to DefaultTheme.
func Parse(s string) Name {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := classRegistry[n]; ok {
		return n
	}
	return DefaultTheme
}

// Classes returns the class set for theme; unknown themes get the light set.
func Classes(theme string) ClassSet {
	return classRegistry[Parse(theme)]
}

// FadeIn and SlideUp build the CSS animation shorthands used to stagger
// gallery cards. delay is in seconds.
func FadeIn(delay float64) string {
	return fmt.Sprintf("fadeIn 0.6s ease-out %gs both", delay)
}

func SlideUp(delay float64) string {
	return fmt.Sprintf("slideUp 0.8s ease-out %gs both", delay)
}
