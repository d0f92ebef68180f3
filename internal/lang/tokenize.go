// Package lang provides the tokenizer, the fixed-prefix stemmer and the
// language identifier. Prefix stripping is a heuristic approximation of
// Bantu noun-class morphology, not a grammar: a finite ordered affix list is
// tried longest-first and anything unknown passes through untouched.
package lang

import (
	"regexp"
	"sort"
	"strings"
)

// SharedPrefixes are conjunction/preposition prefixes common to both
// languages, appended to every language's own prefix tables.
var SharedPrefixes = []string{"ne-", "na-", "ku-", "kwa-", "wa-", "la-", "lo-", "le-"}

// tokenPattern matches word runs or single punctuation marks.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[.,!?;:]`)

// Tokenize splits text into word tokens and single punctuation marks.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Stemmer strips known prefixes from tokens so lexicon lookups match
// inflected forms.
type Stemmer struct {
	prefixes []string // dash-trimmed, longest first
}

// NewStemmer combines the given prefix groups into one stripper. Prefixes may
// carry a trailing dash; it is removed. Longer prefixes are tried first, and
// equal-length prefixes keep their given order.
func NewStemmer(groups ...[]string) *Stemmer {
	var prefixes []string
	for _, group := range groups {
		for _, p := range group {
			prefixes = append(prefixes, strings.TrimSuffix(p, "-"))
		}
	}
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i]) > len(prefixes[j])
	})
	return &Stemmer{prefixes: prefixes}
}

// IdentifyPrefix finds the longest known prefix of token. It never strips a
// token down to nothing: a token equal to a prefix is left whole. The
// remainder is always lowercased.
func (s *Stemmer) IdentifyPrefix(token string) (prefix, remainder string) {
	lower := strings.ToLower(token)
	for _, p := range s.prefixes {
		if strings.HasPrefix(lower, p) && len(lower) > len(p) {
			return p, lower[len(p):]
		}
	}
	return "", lower
}

// Stem reduces a token to its lookup stem, returning the stem and the token
// as given.
func (s *Stemmer) Stem(token string) (stem, original string) {
	_, remainder := s.IdentifyPrefix(token)
	return remainder, token
}
