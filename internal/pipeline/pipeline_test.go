package pipeline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ithute/ithute/internal/model"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(model.DefaultConfig())
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	return a
}

func TestAnalyze_StereotypeDetectedAndRewritten(t *testing.T) {
	a := newTestAnalyzer(t)

	result, err := a.Analyze("Mosetsana o apea dijo fa mosimane a bala buka.", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Language != model.LangSetswana {
		t.Errorf("Expected setswana detected, got %s", result.Language)
	}
	if !result.DetectedBias {
		t.Fatal("Expected bias detected")
	}

	found := false
	for _, e := range result.Explanations {
		if e.Rule == model.RuleSubjectStereotype {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a subject-stereotype explanation, got %v", result.Explanations)
	}
	if result.Rewrite == result.InputText {
		t.Error("Expected rewrite to differ from input")
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := newTestAnalyzer(t)

	result, err := a.Analyze("", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.DetectedBias {
		t.Error("Expected no bias on empty input")
	}
	if len(result.Explanations) != 0 {
		t.Errorf("Expected empty explanations, got %v", result.Explanations)
	}
	if result.Explanations == nil {
		t.Error("Expected explanations to be an empty slice, not nil")
	}
	if result.Rewrite != "" {
		t.Errorf("Expected empty rewrite, got %q", result.Rewrite)
	}
}

func TestAnalyze_OccupationGenderMarkingOnly(t *testing.T) {
	a := newTestAnalyzer(t)

	result, err := a.Analyze("ke bone mosadi-ngaka", "tn")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(result.Explanations) != 1 {
		t.Fatalf("Expected exactly one explanation, got %v", result.Explanations)
	}
	if result.Explanations[0].Rule != model.RuleGenderMarking {
		t.Errorf("Expected gender marking rule, got %s", result.Explanations[0].Rule)
	}
	if result.Rewrite != "ke bone ngaka" {
		t.Errorf("Expected only the compound replaced, got %q", result.Rewrite)
	}
}

func TestAnalyze_OrderingGapBeyondThreshold(t *testing.T) {
	a := newTestAnalyzer(t)

	// Two male subjects, then a female one past the gap limit.
	text := "monna le ntate " + strings.Repeat("k", 20) + " mosadi"
	result, err := a.Analyze(text, "tn")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, e := range result.Explanations {
		if e.Rule == model.RuleAsymmetricalOrdering {
			t.Errorf("Expected no ordering explanation, got %v", e)
		}
	}
}

func TestAnalyze_PejorativeNeutralizedAndStripped(t *testing.T) {
	a := newTestAnalyzer(t)

	result, err := a.Analyze("Mosadi ke setlaela.", "tn")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !result.DetectedBias {
		t.Fatal("Expected bias detected")
	}
	if got := strings.TrimSpace(result.Rewrite); got != "motho ke ." {
		t.Errorf("Expected 'motho ke .', got %q", got)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	text := "Mosetsana o apea dijo fa mosimane a bala buka."
	first, err := a.Analyze(text, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for i := 0; i < 5; i++ {
		next, err := a.Analyze(text, "")
		if err != nil {
			t.Fatalf("Analyze run %d: %v", i, err)
		}
		if diff := cmp.Diff(first, next); diff != "" {
			t.Fatalf("Results differ between runs (-first +next):\n%s", diff)
		}
	}
}

func TestAnalyze_ExplicitLanguageNeverOverridden(t *testing.T) {
	a := newTestAnalyzer(t)

	// A clearly Setswana sentence analyzed as isiZulu stays isiZulu.
	result, err := a.Analyze("Mosadi o apea dijo.", "zu")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Language != model.LangIsiZulu {
		t.Errorf("Expected explicit language honored, got %s", result.Language)
	}
}

func TestAnalyze_LanguageAliases(t *testing.T) {
	a := newTestAnalyzer(t)

	for alias, want := range map[string]model.Language{
		"tn":       model.LangSetswana,
		"st":       model.LangSetswana,
		"setswana": model.LangSetswana,
		"zu":       model.LangIsiZulu,
		"zulu":     model.LangIsiZulu,
		"isizulu":  model.LangIsiZulu,
	} {
		result, err := a.Analyze("text", alias)
		if err != nil {
			t.Fatalf("alias %q: %v", alias, err)
		}
		if result.Language != want {
			t.Errorf("alias %q resolved to %s, want %s", alias, result.Language, want)
		}
	}
}

func TestAnalyze_UnknownLanguageRejected(t *testing.T) {
	a := newTestAnalyzer(t)

	_, err := a.Analyze("text", "fr")
	if err == nil {
		t.Fatal("Expected error for unknown language")
	}
	if !strings.Contains(err.Error(), "unknown language") {
		t.Errorf("Expected language error, got %v", err)
	}
}

func TestAnalyze_InputNormalizedToNFC(t *testing.T) {
	a := newTestAnalyzer(t)

	// "e" followed by a combining acute normalizes to a single rune.
	decomposed := "mosadi é"
	result, err := a.Analyze(decomposed, "tn")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if strings.Contains(result.InputText, "́") {
		t.Errorf("Expected NFC-normalized input text, got %q", result.InputText)
	}
	if !strings.Contains(result.InputText, "é") {
		t.Errorf("Expected composed rune in input text, got %q", result.InputText)
	}
}

func TestAnalyze_CleanTextRewriteIdentical(t *testing.T) {
	a := newTestAnalyzer(t)

	text := "dipalo di thata thata"
	result, err := a.Analyze(text, "tn")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.DetectedBias {
		t.Fatalf("Expected clean text, got %v", result.Explanations)
	}
	if result.Rewrite != text {
		t.Errorf("Expected byte-identical rewrite, got %q", result.Rewrite)
	}
}
