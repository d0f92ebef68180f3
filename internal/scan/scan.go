// Package scan locates gendered subjects and stereotyped action phrases in
// input text. Scanners recompute their results on every call; the only state
// is the stem tables and compiled phrase patterns built once from the
// read-only lexicon store.
package scan

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ithute/ithute/internal/lang"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
)

type nounEntry struct {
	word   string
	gender model.Gender
	gloss  string
}

type titleEntry struct {
	word   string
	gender model.Gender
}

type actionPattern struct {
	phrase   string
	category model.ActionCategory
	re       *regexp.Regexp
}

type languageTables struct {
	stemmer    *lang.Stemmer
	nounStems  map[string]nounEntry
	titleStems map[string]titleEntry
	actions    []actionPattern
}

// Scanner finds subjects and actions for both languages.
type Scanner struct {
	tables map[model.Language]*languageTables
}

// NewScanner precomputes stem lookup tables and action phrase patterns from
// the store. Stem collisions within one gender resolve to the last lexicon
// entry; cross-gender collisions were already rejected at store load.
func NewScanner(store *lexicon.Store) *Scanner {
	s := &Scanner{tables: make(map[model.Language]*languageTables, len(model.Languages))}

	for _, language := range model.Languages {
		lex := store.Language(language)
		t := &languageTables{
			stemmer:    store.NewStemmer(language),
			nounStems:  make(map[string]nounEntry, len(lex.Nouns)),
			titleStems: make(map[string]titleEntry, len(lex.Titles)),
		}

		for _, noun := range lex.Nouns {
			stem, _ := t.stemmer.Stem(noun.Word)
			t.nounStems[stem] = nounEntry{word: noun.Word, gender: noun.Gender, gloss: noun.Gloss}
		}
		for _, title := range lex.Titles {
			stem, _ := t.stemmer.Stem(title.Word)
			t.titleStems[stem] = titleEntry{word: title.Word, gender: title.Gender}
		}
		for _, action := range lex.Actions {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(action.Phrase) + `\b`)
			t.actions = append(t.actions, actionPattern{phrase: action.Phrase, category: action.Category, re: re})
		}

		s.tables[language] = t
	}

	return s
}

// Subjects finds gendered noun and title occurrences, sorted by offset.
// Noun stems take priority over title stems. Offsets are byte positions in
// text; repeated tokens get distinct offsets because the forward search
// resumes after the previous match.
func (s *Scanner) Subjects(text string, language model.Language) []model.Subject {
	t := s.tables[language]
	lower := strings.ToLower(text)

	var subjects []model.Subject
	searchFrom := 0
	for _, token := range lang.Tokenize(lower) {
		pos := strings.Index(lower[searchFrom:], token)
		if pos < 0 {
			continue
		}
		pos += searchFrom
		searchFrom = pos + len(token)

		stem, _ := t.stemmer.Stem(token)
		if entry, ok := t.nounStems[stem]; ok {
			subjects = append(subjects, model.Subject{
				Word:     token,
				Gender:   entry.gender,
				Position: pos,
				Surface:  text[pos : pos+len(token)],
				Gloss:    entry.gloss,
				Type:     model.SubjectNoun,
			})
		} else if entry, ok := t.titleStems[stem]; ok {
			subjects = append(subjects, model.Subject{
				Word:     token,
				Gender:   entry.gender,
				Position: pos,
				Surface:  text[pos : pos+len(token)],
				Gloss:    entry.word,
				Type:     model.SubjectTitle,
			})
		}
	}

	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].Position < subjects[j].Position
	})
	return subjects
}

// Actions finds every stereotyped phrase occurrence, sorted by offset.
// Phrases are matched whole-word against the lowercased text; multi-word
// phrases match their literal internal whitespace.
func (s *Scanner) Actions(text string, language model.Language) []model.Action {
	t := s.tables[language]
	lower := strings.ToLower(text)

	var actions []model.Action
	for _, action := range t.actions {
		for _, loc := range action.re.FindAllStringIndex(lower, -1) {
			actions = append(actions, model.Action{
				Phrase:   action.phrase,
				Category: action.category,
				Position: loc[0],
			})
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Position < actions[j].Position
	})
	return actions
}
