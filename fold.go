package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalises s for use as a key or query: diacritics are stripped so that
// Jürgen and Jurgen share a key, and the result is lowercased unless
// caseSensitive is set. The Index never folds on its own, so keys and queries
// must be folded the same way.
func Fold(s string, caseSensitive bool) (string, error) {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, s)
	if err != nil {
		return "", err
	}
	if !caseSensitive {
		normal = strings.ToLower(normal)
	}
	return normal, nil
}
