package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()

	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	spaces      = regexp.MustCompile(`\s+`)
)

// SanitizeHTML keeps formatting markup (headings, lists, code, links) and drops scripts and handlers
func SanitizeHTML(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// StripHTML removes every tag
func StripHTML(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// Slugify turns a title into a URL-safe identifier
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeAnswer lowercases, drops punctuation and collapses whitespace so that
// "It's  fine." and "its fine" compare equal.
func NormalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(spaces.ReplaceAllString(b.String(), " "))
}

// Similarity returns 1 - distance/maxLen over normalized strings, in [0, 1],
// together with the raw edit distance.
func Similarity(expected, actual string) (float64, int) {
	a := NormalizeAnswer(expected)
	b := NormalizeAnswer(actual)
	if a == "" && b == "" {
		return 1, 0
	}

	distance := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	return 1 - float64(distance)/float64(maxLen), distance
}

// SnakeCase converts a camelCase JSON field name to its snake_case column
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// OrderClause maps a sort parameter such as "-createdAt" to "created_at desc".
// Fields outside allowed fall back to def.
func OrderClause(sort string, allowed []string, def string) string {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		return def
	}

	direction := "asc"
	if strings.HasPrefix(sort, "-") {
		direction = "desc"
		sort = sort[1:]
	}

	for _, field := range allowed {
		if field == sort {
			return SnakeCase(field) + " " + direction
		}
	}
	return def
}
