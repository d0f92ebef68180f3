// Package pipeline sequences language identification, scanning, the rule
// battery and rewrite generation into the single synchronous entry point the
// CLI, batch processor and HTTP server all consume.
package pipeline

import (
	"fmt"

	"github.com/ithute/ithute/internal/lang"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/rewrite"
	"github.com/ithute/ithute/internal/rules"
	"github.com/ithute/ithute/internal/scan"
	"golang.org/x/text/unicode/norm"
)

// Analyzer is the pipeline orchestrator. It is safe for concurrent use: the
// lexicon store is read-only after construction and every call recomputes
// its scan results fresh.
type Analyzer struct {
	store      *lexicon.Store
	scanner    *scan.Scanner
	battery    *rules.Battery
	rewriter   *rewrite.Generator
	identifier *lang.Identifier
}

// New builds an analyzer from configuration, loading the lexicon overlay
// when one is configured.
func New(cfg *model.Config) (*Analyzer, error) {
	store, err := lexicon.New(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("build lexicon store: %w", err)
	}
	return NewWithStore(store), nil
}

// NewWithStore builds an analyzer over an already validated store.
func NewWithStore(store *lexicon.Store) *Analyzer {
	scanner := scan.NewScanner(store)
	identifier := lang.NewIdentifier(
		profileFor(store, model.Languages[0]),
		profileFor(store, model.Languages[1]),
		nil,
	)
	return &Analyzer{
		store:      store,
		scanner:    scanner,
		battery:    rules.NewBattery(store, scanner),
		rewriter:   rewrite.NewGenerator(store, scanner),
		identifier: identifier,
	}
}

func profileFor(store *lexicon.Store, language model.Language) lang.Profile {
	lex := store.Language(language)
	words := make([]string, 0, len(lex.Nouns))
	for _, noun := range lex.Nouns {
		words = append(words, noun.Word)
	}
	return lang.Profile{Language: language, Markers: lex.FunctionWords, Words: words}
}

// Analyze runs the full pipeline over one text. languageAlias selects the
// language explicitly (any accepted alias); when empty the identifier picks
// one. An unrecognized alias is the only error this returns; rule failures
// degrade to missing explanations.
//
// Input is normalized to NFC before analysis; all offsets and the returned
// InputText refer to the normalized form.
func (a *Analyzer) Analyze(text, languageAlias string) (*model.AnalysisResult, error) {
	text = norm.NFC.String(text)

	var lng model.Language
	if languageAlias == "" {
		lng = a.identifier.Detect(text)
	} else {
		parsed, err := model.ParseLanguage(languageAlias)
		if err != nil {
			return nil, err
		}
		lng = parsed
	}

	explanations := a.battery.Run(text, lng)
	if explanations == nil {
		explanations = []model.Explanation{}
	}

	result := &model.AnalysisResult{
		InputText:    text,
		Language:     lng,
		DetectedBias: len(explanations) > 0,
		Explanations: explanations,
		Rewrite:      text,
	}
	if result.DetectedBias {
		result.Rewrite = a.rewriter.Rewrite(text, lng, explanations)
	}
	return result, nil
}

// DetectLanguage exposes the identifier for callers that want the resolved
// language without a full analysis.
func (a *Analyzer) DetectLanguage(text string) model.Language {
	return a.identifier.Detect(norm.NFC.String(text))
}

// Subjects returns the gendered subject scan for verbose front-end display.
func (a *Analyzer) Subjects(text string, language model.Language) []model.Subject {
	return a.scanner.Subjects(norm.NFC.String(text), language)
}

// Actions returns the stereotyped action scan for verbose front-end display.
func (a *Analyzer) Actions(text string, language model.Language) []model.Action {
	return a.scanner.Actions(norm.NFC.String(text), language)
}
