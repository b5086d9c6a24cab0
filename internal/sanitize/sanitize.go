// Package sanitize validates and cleans user-supplied presentation inputs
// before they are persisted.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	slugRe     = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{1,62}[a-z0-9])?$`)

	htmlTagRe   = regexp.MustCompile(`(?is)<[^>]*>`)
	cssImportRe = regexp.MustCompile(`(?i)@import[^;]*;?`)
	cssURLRe    = regexp.MustCompile(`(?i)url\s*\([^)]*\)`)
)

// HexColor reports whether s is a 3- or 6-digit hex color with leading '#'.
func HexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// Slug reports whether s is a valid URL-safe portfolio slug: lowercase
// alphanumerics and hyphens, 3-64 characters, no leading or trailing hyphen.
func Slug(s string) bool {
	return len(s) >= 3 && slugRe.MatchString(s)
}

// CSS strips constructs that would let stored custom CSS reach outside the
// page: HTML tags, @import rules, and url() values. The remaining
// declarations are kept as written.
func CSS(css string) string {
	css = htmlTagRe.ReplaceAllString(css, "")
	css = cssImportRe.ReplaceAllString(css, "")
	css = cssURLRe.ReplaceAllString(css, "")
	return strings.TrimSpace(css)
}
