// Package validation holds the per-entity form rules. Rules run in a fixed
// order and evaluation stops at the first failure, so callers surface a
// single message at a time. Nothing here mutates state or touches the
// network.
package validation

import (
	"regexp"
	"strings"

	apperrors "github.com/lojahub/backoffice/internal/errors"
)

var (
	anyDigit  = regexp.MustCompile(`\d`)
	allDigits = regexp.MustCompile(`^\d+$`)
	anyLetter = regexp.MustCompile(`[a-zA-Z]`)
	nonDigits = regexp.MustCompile(`\D`)
	spaces    = regexp.MustCompile(`\s`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type rule func() *apperrors.AppError

// firstError runs rules in order and returns the first failure.
func firstError(rules ...rule) *apperrors.AppError {
	for _, r := range rules {
		if err := r(); err != nil {
			return err
		}
	}

	return nil
}

func stripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

func stripSpaces(s string) string {
	return spaces.ReplaceAllString(s, "")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
