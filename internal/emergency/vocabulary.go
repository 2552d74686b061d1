package emergency

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultTerms is the French trigger list used when no vocabulary file is configured
var DefaultTerms = []string{
	"violence",
	"frappe",
	"battu",
	"menace",
	"danger",
	"urgence",
	"garde a vue",
	"agression",
	"viol",
	"harcelement",
	"suicide",
	"mort",
}

// Vocabulary is an immutable ordered set of lowercase trigger terms
type Vocabulary struct {
	terms []string
}

// NewVocabulary lowercases and trims terms, dropping blanks and repeated
// terms while keeping first-seen order.
func NewVocabulary(terms []string) Vocabulary {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	return Vocabulary{terms: out}
}

// DefaultVocabulary returns the built-in French vocabulary
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(DefaultTerms)
}

// Terms returns a copy of the terms in scan order
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the number of terms
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// foldDiacritics decomposes s and removes combining marks.
// A fresh transformer is built per call since transform.Chain is not safe for concurrent use.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
