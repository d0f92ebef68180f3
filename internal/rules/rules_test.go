package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/scan"
)

func newTestBattery(t *testing.T) *Battery {
	t.Helper()
	store, err := lexicon.New("")
	if err != nil {
		t.Fatalf("lexicon.New: %v", err)
	}
	return NewBattery(store, scan.NewScanner(store))
}

func findRule(exps []model.Explanation, rule string) []model.Explanation {
	var out []model.Explanation
	for _, e := range exps {
		if e.Rule == rule {
			out = append(out, e)
		}
	}
	return out
}

func TestRule_SubjectStereotypeMatch(t *testing.T) {
	b := newTestBattery(t)

	tests := []struct {
		name     string
		text     string
		language model.Language
		want     bool
	}{
		{
			name:     "female subject with domestic action",
			text:     "Mosadi o apea dijo.",
			language: model.LangSetswana,
			want:     true,
		},
		{
			name:     "male subject with leadership action",
			text:     "Monna o etelela pele setlhopha.",
			language: model.LangSetswana,
			want:     true,
		},
		{
			name:     "female subject with leadership action is congruent-free",
			text:     "Mosadi o etelela pele setlhopha.",
			language: model.LangSetswana,
			want:     false,
		},
		{
			name:     "action before subject does not count",
			text:     "apea dijo mosadi",
			language: model.LangSetswana,
			want:     false,
		},
		{
			name:     "isizulu female with domestic action",
			text:     "Umfazi uyapheka ekhaya.",
			language: model.LangIsiZulu,
			want:     false, // "uyapheka" is not a whole-word phrase match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exps := b.Run(tt.text, tt.language)
			got := len(findRule(exps, model.RuleSubjectStereotype)) > 0
			if got != tt.want {
				t.Errorf("text %q: rule fired = %v, want %v (%v)", tt.text, got, tt.want, exps)
			}
		})
	}
}

func TestRule_ContrastiveGenderRoles(t *testing.T) {
	b := newTestBattery(t)

	text := "Mosetsana o apea dijo fa mosimane a bala buka."
	exps := b.Run(text, model.LangSetswana)

	hits := findRule(exps, model.RuleContrastiveRoles)
	if len(hits) != 1 {
		t.Fatalf("Expected exactly one contrastive finding, got %d (%v)", len(hits), exps)
	}
	span := hits[0].Span
	if !strings.Contains(span, "Mosetsana") || !strings.Contains(span, "mosimane") {
		t.Errorf("Expected span to name both subjects, got %q", span)
	}
	if !strings.Contains(span, " fa ") {
		t.Errorf("Expected span to include the conjunction, got %q", span)
	}
}

func TestRule_ContrastiveNeedsBothRoles(t *testing.T) {
	b := newTestBattery(t)

	// Both subjects do domestic work: no contrast.
	text := "Mosetsana o apea dijo fa mosimane a pheha."
	exps := b.Run(text, model.LangSetswana)
	if hits := findRule(exps, model.RuleContrastiveRoles); len(hits) != 0 {
		t.Errorf("Expected no contrastive finding, got %v", hits)
	}
}

func TestRule_UnnecessaryGenderMarking(t *testing.T) {
	b := newTestBattery(t)

	exps := b.Run("ke bone mosadi-ngaka", model.LangSetswana)
	hits := findRule(exps, model.RuleGenderMarking)
	if len(hits) != 1 {
		t.Fatalf("Expected one gender marking finding, got %d (%v)", len(hits), exps)
	}
	if hits[0].Span != "mosadi-ngaka" {
		t.Errorf("Expected span 'mosadi-ngaka', got %q", hits[0].Span)
	}
	if !strings.Contains(hits[0].Reason, "ngaka") {
		t.Errorf("Expected reason to name the neutral form, got %q", hits[0].Reason)
	}
}

func TestRule_Generalization(t *testing.T) {
	b := newTestBattery(t)

	// Marker after the subject.
	exps := b.Run("basadi ga ba kgone go kgweetsa", model.LangSetswana)
	if hits := findRule(exps, model.RuleGeneralization); len(hits) == 0 {
		t.Errorf("Expected generalization finding, got %v", exps)
	}

	// Marker before the subject fires too.
	exps = b.Run("ka metlha basadi ba lela", model.LangSetswana)
	if hits := findRule(exps, model.RuleGeneralization); len(hits) == 0 {
		t.Errorf("Expected generalization with leading marker, got %v", exps)
	}
}

func TestRule_Infantilizing(t *testing.T) {
	b := newTestBattery(t)

	exps := b.Run("basetsana ba bagolo ba tla", model.LangSetswana)
	hits := findRule(exps, model.RuleInfantilizing)
	if len(hits) != 1 {
		t.Fatalf("Expected one infantilizing finding, got %d (%v)", len(hits), exps)
	}
	if hits[0].Span != "basetsana ba bagolo" {
		t.Errorf("Expected matched span, got %q", hits[0].Span)
	}
}

func TestRule_AsymmetricalOrderingGapBoundary(t *testing.T) {
	b := newTestBattery(t)

	// Gap is the character distance between the end of the male token and
	// the start of the female one. pad of n letters gives a gap of n+2.
	makeText := func(pad int) string {
		return "monna " + strings.Repeat("k", pad) + " mosadi"
	}

	// Gap 14: inside the limit, fires.
	exps := b.Run(makeText(12), model.LangSetswana)
	if hits := findRule(exps, model.RuleAsymmetricalOrdering); len(hits) != 1 {
		t.Errorf("Expected ordering finding at gap 14, got %v", exps)
	}

	// Gap 15: at the limit, must not fire.
	exps = b.Run(makeText(13), model.LangSetswana)
	if hits := findRule(exps, model.RuleAsymmetricalOrdering); len(hits) != 0 {
		t.Errorf("Expected no ordering finding at gap 15, got %v", hits)
	}
}

func TestRule_AsymmetricalOrderingDirection(t *testing.T) {
	b := newTestBattery(t)

	// Female first is not flagged.
	exps := b.Run("mosadi le monna", model.LangSetswana)
	if hits := findRule(exps, model.RuleAsymmetricalOrdering); len(hits) != 0 {
		t.Errorf("Expected no finding for female-first order, got %v", hits)
	}

	exps = b.Run("monna le mosadi", model.LangSetswana)
	if hits := findRule(exps, model.RuleAsymmetricalOrdering); len(hits) != 1 {
		t.Errorf("Expected finding for male-first order, got %v", exps)
	}
}

func TestRule_PejorativeAssociationWindow(t *testing.T) {
	b := newTestBattery(t)

	exps := b.Run("Mosadi ke setlaela.", model.LangSetswana)
	hits := findRule(exps, model.RulePejorative)
	if len(hits) != 1 {
		t.Fatalf("Expected one pejorative finding, got %d (%v)", len(hits), exps)
	}
	if !strings.Contains(hits[0].Reason, "setlaela") {
		t.Errorf("Expected reason to name the pejorative, got %q", hits[0].Reason)
	}

	// Same tokens separated beyond the window: silent.
	far := "mosadi " + strings.Repeat("k ", 25) + "setlaela"
	exps = b.Run(far, model.LangSetswana)
	if hits := findRule(exps, model.RulePejorative); len(hits) != 0 {
		t.Errorf("Expected no finding outside the window, got %v", hits)
	}
}

func TestRule_NamedEntityBias(t *testing.T) {
	b := newTestBattery(t)

	// Female-coded name with a domestic action.
	exps := b.Run("Thandi o apea dijo.", model.LangSetswana)
	if hits := findRule(exps, model.RuleNamedEntity); len(hits) == 0 {
		t.Errorf("Expected named entity finding, got %v", exps)
	}

	// Male-coded name with a domestic action: not the associated category.
	exps = b.Run("Thabo o apea dijo.", model.LangSetswana)
	if hits := findRule(exps, model.RuleNamedEntity); len(hits) != 0 {
		t.Errorf("Expected no finding for male name with domestic action, got %v", hits)
	}

	// Male-coded name with a leadership action.
	exps = b.Run("Thabo o ruta bana.", model.LangSetswana)
	if hits := findRule(exps, model.RuleNamedEntity); len(hits) == 0 {
		t.Errorf("Expected finding for male name with leadership action, got %v", exps)
	}
}

func TestRule_Pronominalization(t *testing.T) {
	b := newTestBattery(t)

	exps := b.Run("ba duela lobola", model.LangSetswana)
	hits := findRule(exps, model.RulePronominalization)
	if len(hits) != 1 {
		t.Fatalf("Expected one pronominalization finding, got %d (%v)", len(hits), exps)
	}
	if hits[0].Span != "lobola" {
		t.Errorf("Expected span 'lobola', got %q", hits[0].Span)
	}
	if !strings.Contains(hits[0].Reason, "marriage") {
		t.Errorf("Expected marriage theme in reason, got %q", hits[0].Reason)
	}
}

func TestRule_ImplicitBias(t *testing.T) {
	b := newTestBattery(t)

	exps := b.Run("akakwazi ukupheka", model.LangIsiZulu)
	if hits := findRule(exps, model.RuleImplicitBias); len(hits) == 0 {
		t.Errorf("Expected implicit bias finding, got %v", exps)
	}
}

func TestRule_TranslationBiasInert(t *testing.T) {
	b := newTestBattery(t)

	exps, err := b.translationBias("monna mosadi", model.LangSetswana)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if exps != nil {
		t.Errorf("Expected inert rule to report nothing, got %v", exps)
	}
}

func TestDedupe(t *testing.T) {
	in := []model.Explanation{
		{Span: "a", Rule: "R1", Reason: "first"},
		{Span: "a", Rule: "R1", Reason: "duplicate dropped"},
		{Span: "a", Rule: "R2", Reason: "different rule kept"},
		{Span: "b", Rule: "R1", Reason: "different span kept"},
	}

	out := Dedupe(in)
	if len(out) != 3 {
		t.Fatalf("Expected 3 unique explanations, got %d", len(out))
	}
	if out[0].Reason != "first" {
		t.Errorf("Expected first writer kept, got %q", out[0].Reason)
	}
	if out[1].Rule != "R2" || out[2].Span != "b" {
		t.Errorf("Expected input order preserved, got %v", out)
	}
}

func TestBattery_RuleFailureIsSkipped(t *testing.T) {
	b := newTestBattery(t)

	failing := namedRule{name: "failing", fn: func(string, model.Language) ([]model.Explanation, error) {
		return []model.Explanation{{Span: "x", Rule: "failing"}}, errors.New("boom")
	}}
	panicking := namedRule{name: "panicking", fn: func(string, model.Language) ([]model.Explanation, error) {
		panic("boom")
	}}
	b.rules = append(b.rules, failing, panicking)

	exps := b.Run("Mosadi o apea dijo.", model.LangSetswana)
	if len(findRule(exps, "failing")) != 0 {
		t.Error("Expected failing rule's partial output discarded")
	}
	// The healthy rules still report.
	if len(findRule(exps, model.RuleSubjectStereotype)) == 0 {
		t.Errorf("Expected healthy rules to survive a failing sibling, got %v", exps)
	}
}

func TestBattery_PanicRecovered(t *testing.T) {
	b := newTestBattery(t)

	_, err := b.apply(namedRule{name: "bad", fn: func(string, model.Language) ([]model.Explanation, error) {
		panic("kaboom")
	}}, "text", model.LangSetswana)
	if err == nil {
		t.Fatal("Expected panic converted to error")
	}
	if !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("Expected panic value in error, got %v", err)
	}
}
