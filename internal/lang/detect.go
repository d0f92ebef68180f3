package lang

import (
	"strings"

	"github.com/ithute/ithute/internal/model"
)

// Profile carries the scoring inputs for one language: its function-word
// markers and the gendered-noun words from its lexicon.
type Profile struct {
	Language model.Language
	Markers  []string
	Words    []string
}

// Strategy scores a text against one language profile. It is an interface so
// the known-imperfect substring scoring can be swapped for a stem-based
// variant without touching the rest of the pipeline.
type Strategy interface {
	Score(text string, profile Profile) int
}

// Identifier picks the better-scoring of the two configured languages.
type Identifier struct {
	profiles [2]Profile
	strategy Strategy
}

// NewIdentifier builds an identifier over the two profiles, which must be in
// configured language order. A nil strategy selects SubstringStrategy.
func NewIdentifier(first, second Profile, strategy Strategy) *Identifier {
	if strategy == nil {
		strategy = SubstringStrategy{}
	}
	return &Identifier{profiles: [2]Profile{first, second}, strategy: strategy}
}

// Detect returns the language with the higher score. Ties resolve to the
// first configured language; detection never fails.
func (d *Identifier) Detect(text string) model.Language {
	first := d.strategy.Score(text, d.profiles[0])
	second := d.strategy.Score(text, d.profiles[1])
	if second > first {
		return d.profiles[1].Language
	}
	return d.profiles[0].Language
}

// markerScore counts function-word markers that appear as separated words or
// as the first word of the text. Worth 1 point each.
func markerScore(lower string, markers []string) int {
	padded := " " + lower + " "
	score := 0
	for _, m := range markers {
		if strings.Contains(padded, " "+m+" ") || strings.HasPrefix(lower, m+" ") {
			score++
		}
	}
	return score
}

// SubstringStrategy is the default scoring. Lexicon words score 2 points on a
// bare substring match, which deliberately ignores word boundaries and can
// misfire on short substrings shared between the two languages.
type SubstringStrategy struct{}

func (SubstringStrategy) Score(text string, profile Profile) int {
	lower := strings.ToLower(text)
	score := markerScore(lower, profile.Markers)
	for _, w := range profile.Words {
		if strings.Contains(lower, w) {
			score += 2
		}
	}
	return score
}

// StemStrategy is the corrected variant: lexicon words score only when a
// token of the text stems to the same stem as the lexicon word.
type StemStrategy struct {
	Stemmer *Stemmer
}

func (s StemStrategy) Score(text string, profile Profile) int {
	lower := strings.ToLower(text)
	score := markerScore(lower, profile.Markers)

	stems := make(map[string]bool)
	for _, token := range Tokenize(lower) {
		stem, _ := s.Stemmer.Stem(token)
		stems[stem] = true
	}
	for _, w := range profile.Words {
		stem, _ := s.Stemmer.Stem(w)
		if stems[stem] {
			score += 2
		}
	}
	return score
}
