package util

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxSlugLength bounds generated slugs
const MaxSlugLength = 50

// Slug makes a URL-safe slug from a unicode string, at most MaxSlugLength long.
func Slug(s string) string {
	out := slug.MakeLang(s, "en")
	if len(out) > MaxSlugLength {
		out = out[:MaxSlugLength]
	}
	return strings.Trim(out, "-")
}

// IsSlug reports whether s is a valid slug: letters, digits, hyphens and underscores.
func IsSlug(s string) bool {
	if s == "" || len(s) > MaxSlugLength {
		return false
	}
	for _, r := range s {
		if !(r == '-' || r == '_' || '0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}
