package normalize

import (
	"regexp"
	"strings"
)

// nonSlugRun matches a maximal run of characters outside [a-z0-9].
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a title to a URL-safe identifier: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single "-", leading and trailing
// "-" stripped. Total over any input; the empty string maps to itself.
func Slug(title string) string {
	s := strings.ToLower(title)
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
