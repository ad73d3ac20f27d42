package format

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
)

const (
	// DefaultLocale is the locale the portfolio renders dates in.
	DefaultLocale = "id-ID"

	// InvalidDate is rendered for zero or unparseable dates.
	InvalidDate = "Invalid Date"
)

var universal = ut.New(id.New(), id.New(), en.New(), de.New(), fr.New())

// layouts accepted by FormatDateString, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Formatter renders long-form dates ("day month year") for one locale.
type Formatter struct {
	locale string
	trans  locales.Translator
}

// NewFormatter resolves locale ("id-ID", "en_US", "de") against the bundled
// locale data. Region variants fall back to their base language and unknown
// languages fall back to Indonesian.
func NewFormatter(locale string) *Formatter {
	return &Formatter{locale: locale, trans: resolve(locale)}
}

func resolve(locale string) locales.Translator {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
	candidates := []string{normalized}
	if base, _, ok := strings.Cut(normalized, "_"); ok {
		candidates = append(candidates, base)
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if t, found := universal.GetTranslator(strings.ToLower(c)); found {
			return t
		}
		if t, found := universal.GetTranslator(c); found {
			return t
		}
	}
	return universal.GetFallback()
}

// Locale returns the locale the formatter was created with.
func (f *Formatter) Locale() string {
	return f.locale
}

// FormatDate renders t in the formatter's long date form.
func (f *Formatter) FormatDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return f.trans.FmtDateLong(t)
}

// FormatDateString parses s with the accepted layouts and formats it.
// Unparseable input renders InvalidDate; callers needing strictness must
// validate first.
func (f *Formatter) FormatDateString(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return InvalidDate
	}
	return f.FormatDate(t)
}

// ParseDate tries each accepted layout in turn.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var defaultFormatter = NewFormatter(DefaultLocale)

// FormatDate formats t in DefaultLocale.
func FormatDate(t time.Time) string {
	return defaultFormatter.FormatDate(t)
}

// FormatDateString formats a date string in DefaultLocale.
func FormatDateString(s string) string {
	return defaultFormatter.FormatDateString(s)
}
