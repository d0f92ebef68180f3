// Package lexicon holds the hand-curated per-language term tables the
// detection rules match against. The store is read-only after New returns;
// every table is an ordered slice so downstream matching and rewriting stay
// deterministic.
package lexicon

import (
	"fmt"

	"github.com/ithute/ithute/internal/lang"
	"github.com/ithute/ithute/internal/model"
)

// GenderedTerm is a gendered noun with its English gloss.
type GenderedTerm struct {
	Word   string
	Gender model.Gender
	Gloss  string
}

// TitleTerm is an honorific or title. Titles are scanned separately from
// nouns because compound forms carry a hyphenated prefix.
type TitleTerm struct {
	Word   string
	Gender model.Gender
}

// ActionPhrase is a stereotyped role/verb phrase tagged with its category.
type ActionPhrase struct {
	Phrase   string
	Category model.ActionCategory
}

// OccupationMapping maps a gender-marked occupation spelling to its neutral
// form. Several gendered spellings may share one neutral form.
type OccupationMapping struct {
	GenderedForm string
	NeutralForm  string
}

// NeutralTerms are the language's gender-neutral human terms used by the
// rewrite templates.
type NeutralTerms struct {
	Singular string
	Plural   string
	Everyone string
}

// NamedEntity is a personal name with the gender it is culturally coded as.
type NamedEntity struct {
	Name   string
	Gender model.Gender
}

// PronominalizationGroup is a set of culturally loaded terms sharing a theme
// (wealth, leadership, marriage).
type PronominalizationGroup struct {
	Theme string
	Terms []string
}

// LanguageLexicon bundles every table for one language.
type LanguageLexicon struct {
	Nouns       []GenderedTerm
	Titles      []TitleTerm
	Neutral     NeutralTerms
	Actions     []ActionPhrase
	Occupations []OccupationMapping

	Pejoratives             []string
	GeneralizationMarkers   []string
	ContrastiveConjunctions []string
	InfantilizingPatterns   []string // regular expression sources
	Pronominalization       []PronominalizationGroup
	ImplicitPatterns        []string // capability-assumption regex sources

	NounClassPrefixes []string
	VerbPrefixes      []string
	FunctionWords     []string // language-identification markers
}

// Store is the immutable collection of all lexicons.
type Store struct {
	languages map[model.Language]*LanguageLexicon
	names     []NamedEntity
}

// New builds the store from the built-in defaults, applies the optional YAML
// overlay at overlayPath (empty path means defaults only) and validates the
// result. Validation failures are configuration errors and fatal.
func New(overlayPath string) (*Store, error) {
	s := &Store{
		languages: map[model.Language]*LanguageLexicon{
			model.LangSetswana: defaultSetswana(),
			model.LangIsiZulu:  defaultIsiZulu(),
		},
		names: defaultNames(),
	}

	if overlayPath != "" {
		if err := s.applyOverlay(overlayPath); err != nil {
			return nil, fmt.Errorf("lexicon overlay: %w", err)
		}
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	return s, nil
}

// Language returns the lexicon for the given language. The store always
// carries both configured languages, so lookups cannot miss.
func (s *Store) Language(language model.Language) *LanguageLexicon {
	return s.languages[language]
}

// Names returns the shared name-to-gender table used by the named entity rule.
func (s *Store) Names() []NamedEntity {
	return s.names
}

// NewStemmer builds the affix stripper for a language from its prefix tables
// plus the shared conjunction/preposition prefixes.
func (s *Store) NewStemmer(language model.Language) *lang.Stemmer {
	lex := s.languages[language]
	return lang.NewStemmer(lex.NounClassPrefixes, lex.VerbPrefixes, lang.SharedPrefixes)
}

// validate rejects lexicons where one stem is claimed by both gender tables
// of a language. Repeated stems within a single gender are allowed (plural
// and singular forms often reduce to the same stem); the scanner resolves
// those deterministically with the last entry winning.
func (s *Store) validate() error {
	for _, language := range model.Languages {
		lex := s.languages[language]
		stemmer := s.NewStemmer(language)

		byStem := make(map[string]model.Gender)
		for _, noun := range lex.Nouns {
			stem, _ := stemmer.Stem(noun.Word)
			if gender, ok := byStem[stem]; ok && gender != noun.Gender {
				return fmt.Errorf("%s: stem %q of %q appears in both gender tables", language, stem, noun.Word)
			}
			byStem[stem] = noun.Gender
		}
	}
	return nil
}
