// Package textutil provides text sanitization for search criteria and
// scraped content before it is used in queries or cache keys.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// controlExceptNewlineTab matches Unicode category C runes (control,
// format, surrogate, private use, unassigned) other than newline and
// tab. These carry no meaning for search text and break cache-key
// construction.
var controlExceptNewlineTab = runes.Predicate(func(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.Is(unicode.C, r)
})

// Sanitize normalizes free-form text: canonical Unicode normalization
// (NFKC), control-character stripping (newline and tab survive, though
// whitespace collapsing folds them next), whitespace-run collapsing,
// and trimming. It never returns an error; if the transform chain
// fails the input degrades to an ASCII-only strip. Empty input yields
// an empty string.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(norm.NFKC, runes.Remove(controlExceptNewlineTab))
	normalized, _, err := transform.String(t, text)
	if err != nil {
		return asciiFallback(text)
	}

	return collapseWhitespace(normalized)
}

// collapseWhitespace folds runs of whitespace into single spaces and
// trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// asciiFallback drops every non-ASCII byte and collapses whitespace.
// Best-effort path for inputs the transform chain cannot handle.
func asciiFallback(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 && (!unicode.IsControl(r) || r == '\n' || r == '\t') {
			b.WriteRune(r)
		}
	}
	return collapseWhitespace(b.String())
}
