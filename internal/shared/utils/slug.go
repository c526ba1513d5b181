package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns = regexp.MustCompile(`-+`)
)

// Letters that survive NFD decomposition with their diacritic attached.
var slugFallback = map[rune]rune{
	'ł': 'l', 'đ': 'd', 'ø': 'o', 'æ': 'a', 'œ': 'o',
}

// Slugify derives a URL-safe slug from a title: unicode-normalize, fold
// diacritics to ASCII, lowercase, hyphen-join words, drop the rest.
func Slugify(input string) string {
	folded := removeDiacritics(strings.ToLower(input))

	hyphenated := strings.ReplaceAll(folded, " ", "-")
	cleaned := slugDisallowed.ReplaceAllString(hyphenated, "")
	collapsed := slugHyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(collapsed, "-")
}

// removeDiacritics strips combining marks after NFD decomposition.
func removeDiacritics(input string) string {
	decomposed := norm.NFD.String(input)

	result := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if base, ok := slugFallback[r]; ok {
			r = base
		}
		result = append(result, r)
	}

	return string(result)
}
