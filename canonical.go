package prefixtree

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical returns the form s is indexed under, taking into account the
// Tree's settings for normalisation and case. Strings that cannot be
// normalised are returned unchanged.
func (t *Tree) Canonical(s string) string {
	canonical, ok := t.canonical(s)
	if !ok {
		return s
	}
	return canonical
}

func (t *Tree) canonical(s string) (string, bool) {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		normal, _, err := transform.String(transformer, s)
		if err != nil {
			return "", false
		}
		s = normal
	}
	if t.ignoreCase {
		// Each rune is lowered on its own so a prefix folds the same way
		// as the word it starts.
		s = strings.ToLower(s)
	}
	return s, true
}

// key is the canonical, trimmed rune sequence used to add and remove s.
func (t *Tree) key(s string) ([]rune, bool) {
	canonical, ok := t.canonical(s)
	if !ok {
		return nil, false
	}
	return []rune(strings.TrimSpace(canonical)), true
}
