// Package slug derives URL-safe identifiers from display names. Slugs are
// lowercase, diacritics are stripped, runs of non-alphanumeric characters
// collapse to a single hyphen and leading/trailing hyphens are trimmed, so
// "São Paulo" and "sao  paulo!" both yield "sao-paulo".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make returns the slug for name. The derivation is deterministic: equal
// inputs always produce equal slugs.
func Make(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	// Decompose and drop combining marks (á -> a + U+0301 -> a).
	decomposed := norm.NFD.String(lowered)

	var b strings.Builder
	b.Grow(len(decomposed))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark, skip
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
