// Package validate holds the lightweight input checks used by the contact form
// and the content loader.
package validate

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailPattern is a structural heuristic (local@domain.tld, no whitespace),
// not an RFC 5322 parser. It says nothing about deliverability.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	validateOnce sync.Once
	validateInst *validator.Validate
)

// Instance returns the shared validator used for struct and URL checks.
func Instance() *validator.Validate {
	validateOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidURL reports whether raw parses as an absolute URL. No network check.
func IsValidURL(raw string) bool {
	if strings.TrimSpace(raw) == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	return Instance().Var(raw, "url") == nil
}
