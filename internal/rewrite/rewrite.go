// Package rewrite turns a deduplicated explanation list into a corrected
// sentence. Template selection is an ordered list of (predicate, template)
// pairs evaluated top-down with the first match winning, so the precedence
// is explicit rather than buried in nested conditionals.
package rewrite

import (
	"regexp"
	"strings"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/scan"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Generator produces rewritten sentences.
type Generator struct {
	store   *lexicon.Store
	scanner *scan.Scanner
}

// NewGenerator wires the generator against the store and scanner.
func NewGenerator(store *lexicon.Store, scanner *scan.Scanner) *Generator {
	return &Generator{store: store, scanner: scanner}
}

type rewriteContext struct {
	text    string
	lex     *lexicon.LanguageLexicon
	fired   map[string]bool
	males   []model.Subject
	females []model.Subject
	actions []model.Action
}

type strategy struct {
	when  func(*rewriteContext) bool
	apply func(*rewriteContext) string
}

// Rewrite returns text unchanged when no explanations were produced,
// otherwise applies the first matching template strategy.
func (g *Generator) Rewrite(text string, lng model.Language, explanations []model.Explanation) string {
	if len(explanations) == 0 {
		return text
	}

	cx := &rewriteContext{
		text:    text,
		lex:     g.store.Language(lng),
		fired:   make(map[string]bool, len(explanations)),
		actions: g.scanner.Actions(text, lng),
	}
	for _, e := range explanations {
		cx.fired[e.Rule] = true
	}
	for _, s := range g.scanner.Subjects(text, lng) {
		if s.Gender == model.GenderMale {
			cx.males = append(cx.males, s)
		} else {
			cx.females = append(cx.females, s)
		}
	}

	isSetswana := lng == model.LangSetswana

	strategies := []strategy{
		// a. Inclusive reframe, when a contrastive or subject-stereotype
		// finding comes with both genders present and two actions to name.
		{
			when: func(cx *rewriteContext) bool {
				return (cx.fired[model.RuleContrastiveRoles] || cx.fired[model.RuleSubjectStereotype]) &&
					len(cx.males) > 0 && len(cx.females) > 0 && len(cx.actions) >= 2
			},
			apply: func(cx *rewriteContext) string {
				return inclusiveReframe(isSetswana, cx.females[0].Surface, cx.males[0].Surface,
					cx.actions[0].Phrase, cx.actions[1].Phrase)
			},
		},
		// b. Neutral-term replacement, when (a)'s preconditions failed or
		// when infantilizing, pejorative or named-entity findings fired.
		// Pejorative findings additionally strip the pejorative tokens.
		{
			when: func(cx *rewriteContext) bool {
				return cx.fired[model.RuleContrastiveRoles] || cx.fired[model.RuleSubjectStereotype] ||
					cx.fired[model.RuleInfantilizing] || cx.fired[model.RulePejorative] ||
					cx.fired[model.RuleNamedEntity]
			},
			apply: g.neutralThenStrip,
		},
		// c. Occupation gender marking removed.
		{
			when:  func(cx *rewriteContext) bool { return cx.fired[model.RuleGenderMarking] },
			apply: g.removeGenderMarking,
		},
		// d. Generalization softened with the "everyone" phrase.
		{
			when:  func(cx *rewriteContext) bool { return cx.fired[model.RuleGeneralization] },
			apply: g.everyonePhrase,
		},
		// e. Pure ordering findings swap the first male/female pair.
		{
			when: func(cx *rewriteContext) bool {
				return cx.fired[model.RuleAsymmetricalOrdering] && len(cx.males) > 0 && len(cx.females) > 0
			},
			apply: g.swapOrdering,
		},
		// Fallback for everything else (pronominalization, implicit bias).
		{
			when:  func(*rewriteContext) bool { return true },
			apply: g.neutralThenStrip,
		},
	}

	for _, s := range strategies {
		if s.when(cx) {
			return s.apply(cx)
		}
	}
	return text
}

// inclusiveReframe builds the inclusive sentence naming both subjects and
// both actions. The two languages use different surface grammar for this, so
// each is a hand-authored literal template rather than a shared formatter.
func inclusiveReframe(isSetswana bool, femaleSubject, maleSubject, verb1, verb2 string) string {
	female := titleCaser.String(femaleSubject)
	if isSetswana {
		return female + " le " + maleSubject + " ba ka " + verb1 + " kgotsa ba " + verb2 + "."
	}
	return female + " no " + maleSubject + " bangakwazi ukwenza u" + verb1 + " noma u" + verb2 + "."
}

// neutralThenStrip substitutes every gendered noun with the language's
// singular neutral term and, when a pejorative finding fired, strips the
// pejorative tokens as well.
func (g *Generator) neutralThenStrip(cx *rewriteContext) string {
	result := neutralReplacement(cx.text, cx.lex)
	if cx.fired[model.RulePejorative] {
		result = stripPejoratives(result, cx.lex)
	}
	return result
}

// neutralReplacement replaces each gendered noun, whole-word and
// case-insensitive, with the neutral singular term. Terms are applied in
// lexicon order.
func neutralReplacement(text string, lex *lexicon.LanguageLexicon) string {
	result := text
	for _, noun := range lex.Nouns {
		re := wordPattern(noun.Word)
		result = re.ReplaceAllString(result, lex.Neutral.Singular)
	}
	return result
}

// removeGenderMarking replaces every occupation gendered form with its
// neutral form.
func (g *Generator) removeGenderMarking(cx *rewriteContext) string {
	result := cx.text
	for _, occ := range cx.lex.Occupations {
		re := wordPattern(occ.GenderedForm)
		result = re.ReplaceAllString(result, occ.NeutralForm)
	}
	return result
}

// everyonePhrase substitutes the first gendered term present with the
// language's "everyone" phrase and stops; later terms are left alone.
func (g *Generator) everyonePhrase(cx *rewriteContext) string {
	for _, noun := range cx.lex.Nouns {
		re := wordPattern(noun.Word)
		if re.MatchString(cx.text) {
			return re.ReplaceAllString(cx.text, cx.lex.Neutral.Everyone)
		}
	}
	return cx.text
}

// swapOrdering exchanges the first male and female subject surfaces when the
// male one comes first.
func (g *Generator) swapOrdering(cx *rewriteContext) string {
	male, female := cx.males[0], cx.females[0]
	if male.Position >= female.Position {
		return cx.text
	}
	const placeholder = "\x00swap\x00"
	result := strings.ReplaceAll(cx.text, male.Surface, placeholder)
	result = strings.ReplaceAll(result, female.Surface, male.Surface)
	return strings.ReplaceAll(result, placeholder, female.Surface)
}

// stripPejoratives removes every configured pejorative token.
func stripPejoratives(text string, lex *lexicon.LanguageLexicon) string {
	result := text
	for _, p := range lex.Pejoratives {
		re := wordPattern(p)
		result = strings.TrimSpace(re.ReplaceAllString(result, ""))
	}
	return result
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}
