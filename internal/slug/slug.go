// Package slug derives URL-safe identifiers from display titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
	slugFormat   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Generate lowercases the title, strips everything outside [a-z0-9
// whitespace hyphen], collapses whitespace runs and repeated hyphens to a
// single hyphen, and trims leading/trailing hyphens. A title with no usable
// characters produces an empty slug; callers must reject that.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s is a non-empty slug in canonical form.
func Valid(s string) bool {
	return slugFormat.MatchString(s)
}
