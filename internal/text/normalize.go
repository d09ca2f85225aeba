package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining diacritical marks, so that
// "Seca" and "sêca" map to the same token. Headlines from Brazilian
// feeds are accent-heavy; folding keeps the vocabulary stable across
// sloppy source spelling.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		// Malformed input: fall back to plain lowercasing.
		return strings.ToLower(s)
	}
	return folded
}
