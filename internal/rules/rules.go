// Package rules implements the eleven independent bias detectors. Each rule
// is a pure function of (text, language); rules never read each other's
// output, though several re-invoke the scanners. A rule that fails
// contributes nothing for that call and never aborts the battery.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ithute/ithute/internal/lang"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/scan"
)

// orderingGapLimit is the maximum character gap between a male subject and
// the female subject that follows it for the ordering rule to fire.
const orderingGapLimit = 15

// pejorativeWindow is the character window around a gendered subject within
// which a pejorative token is considered associated with it.
const pejorativeWindow = 40

// Battery evaluates all rules in a fixed order and deduplicates the result.
type Battery struct {
	store   *lexicon.Store
	scanner *scan.Scanner
	rules   []namedRule
}

type ruleFunc func(text string, language model.Language) ([]model.Explanation, error)

type namedRule struct {
	name string
	fn   ruleFunc
}

// NewBattery wires the rules against the given store and scanner.
func NewBattery(store *lexicon.Store, scanner *scan.Scanner) *Battery {
	b := &Battery{store: store, scanner: scanner}
	b.rules = []namedRule{
		{model.RuleSubjectStereotype, b.subjectStereotypeMatch},
		{model.RuleContrastiveRoles, b.contrastiveGenderRoles},
		{model.RuleGenderMarking, b.unnecessaryGenderMarking},
		{model.RuleGeneralization, b.generalizations},
		{model.RuleInfantilizing, b.infantilizing},
		{model.RuleAsymmetricalOrdering, b.asymmetricalOrdering},
		{model.RulePejorative, b.pejorativeAssociation},
		{model.RuleTranslationBias, b.translationBias},
		{model.RuleNamedEntity, b.namedEntityBias},
		{model.RulePronominalization, b.pronominalization},
		{model.RuleImplicitBias, b.implicitBias},
	}
	return b
}

// Run evaluates the battery. Rule evaluation order is fixed; it matters only
// because the dedup step keeps the first writer of an identical (span, rule)
// pair. Failing rules are skipped with their partial output discarded.
func (b *Battery) Run(text string, language model.Language) []model.Explanation {
	var all []model.Explanation
	for _, rule := range b.rules {
		exps, err := b.apply(rule, text, language)
		if err != nil {
			continue
		}
		all = append(all, exps...)
	}
	return Dedupe(all)
}

// apply shields the battery from a single rule failing, whether by error
// return or panic.
func (b *Battery) apply(rule namedRule, text string, language model.Language) (exps []model.Explanation, err error) {
	defer func() {
		if r := recover(); r != nil {
			exps = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.name, r)
		}
	}()
	return rule.fn(text, language)
}

// Dedupe drops later explanations whose (span, rule) pair was already seen.
// Order-preserving, not order-sorting.
func Dedupe(explanations []model.Explanation) []model.Explanation {
	type key struct{ span, rule string }
	seen := make(map[key]bool, len(explanations))
	var unique []model.Explanation
	for _, e := range explanations {
		k := key{e.Span, e.Rule}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, e)
	}
	return unique
}

// Rule 1: a gendered subject followed by a stereotype-congruent action.
func (b *Battery) subjectStereotypeMatch(text string, language model.Language) ([]model.Explanation, error) {
	subjects := b.scanner.Subjects(text, language)
	actions := b.scanner.Actions(text, language)

	var exps []model.Explanation
	for _, subject := range subjects {
		for _, action := range actions {
			if action.Position <= subject.Position {
				continue
			}

			var reason string
			switch {
			case subject.Gender == model.GenderFemale && action.Category == model.CategoryDomestic:
				reason = "Female subject assigned domestic work."
			case subject.Gender == model.GenderMale && action.Category == model.CategoryAcademicLeadership:
				reason = "Male subject assigned intellectual/leadership work."
			default:
				continue
			}

			exps = append(exps, model.Explanation{
				Span:   subject.Surface + " ... " + action.Phrase,
				Rule:   model.RuleSubjectStereotype,
				Reason: reason,
			})
		}
	}
	return exps, nil
}

// Rule 2: a contrastive conjunction splitting domestic work onto a female
// subject and academic/leadership work onto a male subject. Each action is
// assigned to its nearest preceding subject; the rule flags at most once.
func (b *Battery) contrastiveGenderRoles(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)

	subjects := b.scanner.Subjects(text, language)
	actions := b.scanner.Actions(text, language)

	var maleFirst, femaleFirst *model.Subject
	for i := range subjects {
		switch subjects[i].Gender {
		case model.GenderMale:
			if maleFirst == nil {
				maleFirst = &subjects[i]
			}
		case model.GenderFemale:
			if femaleFirst == nil {
				femaleFirst = &subjects[i]
			}
		}
	}
	if maleFirst == nil || femaleFirst == nil || len(actions) < 2 {
		return nil, nil
	}

	padded := " " + lower + " "
	for _, conj := range lex.ContrastiveConjunctions {
		if !strings.Contains(padded, " "+conj+" ") {
			continue
		}

		femaleDomestic := false
		maleAcademic := false
		for _, action := range actions {
			nearest := nearestPrecedingSubject(subjects, action.Position)
			if nearest == nil {
				continue
			}
			if nearest.Gender == model.GenderFemale && action.Category == model.CategoryDomestic {
				femaleDomestic = true
			}
			if nearest.Gender == model.GenderMale && action.Category == model.CategoryAcademicLeadership {
				maleAcademic = true
			}
		}

		if femaleDomestic && maleAcademic {
			return []model.Explanation{{
				Span:   femaleFirst.Surface + " ... " + conj + " ... " + maleFirst.Surface,
				Rule:   model.RuleContrastiveRoles,
				Reason: "Female subject assigned domestic work while male subject assigned academic/leadership work.",
			}}, nil
		}
	}
	return nil, nil
}

// nearestPrecedingSubject returns the subject with the smallest positive
// offset delta before position, or nil when no subject precedes it.
func nearestPrecedingSubject(subjects []model.Subject, position int) *model.Subject {
	var nearest *model.Subject
	closest := -1
	for i := range subjects {
		delta := position - subjects[i].Position
		if delta > 0 && (closest < 0 || delta < closest) {
			closest = delta
			nearest = &subjects[i]
		}
	}
	return nearest
}

// Rule 3: occupation spellings that mark gender unnecessarily.
func (b *Battery) unnecessaryGenderMarking(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)

	var exps []model.Explanation
	for _, occ := range lex.Occupations {
		if strings.Contains(lower, occ.GenderedForm) {
			exps = append(exps, model.Explanation{
				Span: occ.GenderedForm,
				Rule: model.RuleGenderMarking,
				Reason: fmt.Sprintf("Occupation '%s' unnecessarily marked with gender. Use neutral form '%s' instead.",
					occ.GenderedForm, occ.NeutralForm),
			})
		}
	}
	return exps, nil
}

// Rule 4: a gendered subject co-occurring with a generalization marker in
// either order.
func (b *Battery) generalizations(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)
	subjects := b.scanner.Subjects(text, language)

	var exps []model.Explanation
	for _, subject := range subjects {
		for _, marker := range lex.GeneralizationMarkers {
			word := regexp.QuoteMeta(subject.Word)
			m := regexp.QuoteMeta(marker)
			re, err := regexp.Compile(`\b` + word + `\b.*\b` + m + `\b|\b` + m + `\b.*\b` + word + `\b`)
			if err != nil {
				return nil, err
			}
			if re.MatchString(lower) {
				exps = append(exps, model.Explanation{
					Span:   subject.Surface + " ... " + marker,
					Rule:   model.RuleGeneralization,
					Reason: fmt.Sprintf("Making generalized claim about %ss using '%s'.", subject.Gender, marker),
				})
			}
		}
	}
	return exps, nil
}

// Rule 5: child-coded terms applied to adults.
func (b *Battery) infantilizing(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)

	var exps []model.Explanation
	for _, pattern := range lex.InfantilizingPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		if match := re.FindString(lower); match != "" {
			exps = append(exps, model.Explanation{
				Span:   match,
				Rule:   model.RuleInfantilizing,
				Reason: "Using child-coded terms for adults.",
			})
		}
	}
	return exps, nil
}

// Rule 6: a male subject immediately followed by a female subject within a
// small character gap. This flags ordering, not content.
func (b *Battery) asymmetricalOrdering(text string, language model.Language) ([]model.Explanation, error) {
	subjects := b.scanner.Subjects(text, language)

	var exps []model.Explanation
	for i := 0; i+1 < len(subjects); i++ {
		s1, s2 := subjects[i], subjects[i+1]
		if s1.Gender != model.GenderMale || s2.Gender != model.GenderFemale {
			continue
		}
		if s2.Position-(s1.Position+len(s1.Word)) < orderingGapLimit {
			exps = append(exps, model.Explanation{
				Span:   s1.Surface + " ... " + s2.Surface,
				Rule:   model.RuleAsymmetricalOrdering,
				Reason: "Male term consistently placed before female term.",
			})
		}
	}
	return exps, nil
}

// Rule 7: a stem-matched pejorative token within a fixed window of a
// gendered subject.
func (b *Battery) pejorativeAssociation(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)
	subjects := b.scanner.Subjects(text, language)
	stemmer := b.store.NewStemmer(language)

	pejStems := make(map[string]bool, len(lex.Pejoratives))
	for _, p := range lex.Pejoratives {
		stem, _ := stemmer.Stem(p)
		pejStems[stem] = true
	}

	type hit struct {
		word string
		pos  int
	}
	var found []hit
	searchFrom := 0
	for _, token := range lang.Tokenize(lower) {
		pos := strings.Index(lower[searchFrom:], token)
		if pos < 0 {
			continue
		}
		pos += searchFrom
		searchFrom = pos + len(token)

		stem, _ := stemmer.Stem(token)
		if pejStems[stem] {
			found = append(found, hit{word: token, pos: pos})
		}
	}

	var exps []model.Explanation
	for _, subject := range subjects {
		for _, pej := range found {
			delta := subject.Position - pej.pos
			if delta < 0 {
				delta = -delta
			}
			if delta >= pejorativeWindow {
				continue
			}
			start := min(subject.Position, pej.pos)
			end := max(subject.Position+len(subject.Word), pej.pos+len(pej.word))
			exps = append(exps, model.Explanation{
				Span:   text[start:end],
				Rule:   model.RulePejorative,
				Reason: fmt.Sprintf("Gendered subject '%s' associated with pejorative term '%s'.", subject.Word, pej.word),
			})
		}
	}
	return exps, nil
}

// Rule 8: reserved. The signal it needs, a parallel translation, is never
// supplied to this pipeline, so it always reports nothing.
func (b *Battery) translationBias(string, model.Language) ([]model.Explanation, error) {
	return nil, nil
}

// Rule 9: a culturally gender-coded name co-occurring with a stereotyped
// action of the category associated with that gender.
func (b *Battery) namedEntityBias(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)

	var exps []model.Explanation
	for _, entity := range b.store.Names() {
		if !strings.Contains(lower, entity.Name) {
			continue
		}

		category := model.CategoryAcademicLeadership
		if entity.Gender == model.GenderFemale {
			category = model.CategoryDomestic
		}

		for _, action := range lex.Actions {
			if action.Category != category {
				continue
			}
			if strings.Contains(lower, action.Phrase) {
				exps = append(exps, model.Explanation{
					Span:   entity.Name + " ... " + action.Phrase,
					Rule:   model.RuleNamedEntity,
					Reason: fmt.Sprintf("Name '%s' associated with gendered stereotype '%s'.", entity.Name, action.Phrase),
				})
			}
		}
	}
	return exps, nil
}

// Rule 10: culturally loaded wealth/leadership/marriage terms.
func (b *Battery) pronominalization(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)

	var exps []model.Explanation
	for _, group := range lex.Pronominalization {
		for _, term := range group.Terms {
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
			if err != nil {
				return nil, err
			}
			for _, match := range re.FindAllString(lower, -1) {
				exps = append(exps, model.Explanation{
					Span:   match,
					Rule:   model.RulePronominalization,
					Reason: fmt.Sprintf("Term '%s' carries %s-coded gender expectations.", term, group.Theme),
				})
			}
		}
	}
	return exps, nil
}

// Rule 11: capability-assumption patterns from the auxiliary lexicon.
func (b *Battery) implicitBias(text string, language model.Language) ([]model.Explanation, error) {
	lower := strings.ToLower(text)
	lex := b.store.Language(language)

	var exps []model.Explanation
	for _, pattern := range lex.ImplicitPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range re.FindAllString(lower, -1) {
			exps = append(exps, model.Explanation{
				Span:   match,
				Rule:   model.RuleImplicitBias,
				Reason: "Statement assumes capability based on gender.",
			})
		}
	}
	return exps, nil
}
