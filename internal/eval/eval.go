// Package eval scores the analyzer against a ground-truth corpus of
// biased sentences with reference rewrites. It is consumed only by the
// eval command; the detection core never reads ground truth.
package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ithute/ithute/internal/model"
)

// Bias categories used by the ground-truth corpus.
const (
	CategoryOccupational     = "Occupational & Role Stereotyping"
	CategoryGenderedWording  = "Gendered Wording"
	CategoryPronominal       = "Stereotypical Pronominalization"
	CategoryHonorific        = "Honorific & Title Asymmetry"
	CategoryDerogation       = "Semantic Derogation"
	CategoryGender           = "Gender"
)

// Example is one ground-truth record.
type Example struct {
	ID           string `json:"id"`
	Language     string `json:"language"`
	BiasCategory string `json:"bias_category"`
	BiasedText   string `json:"biased_text"`
	BiasFreeText string `json:"bias_free_text"`
}

// GroundTruth holds the evaluation corpus in a stable order.
type GroundTruth struct {
	Examples []Example
}

// LoadGroundTruth reads a ground-truth file: a JSON object keyed by
// example id. Records are sorted by id so runs are reproducible.
func LoadGroundTruth(path string) (*GroundTruth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ground truth: %w", err)
	}

	var keyed map[string]Example
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	gt := &GroundTruth{Examples: make([]Example, 0, len(keyed))}
	for id, ex := range keyed {
		if ex.ID == "" {
			ex.ID = id
		}
		gt.Examples = append(gt.Examples, ex)
	}
	sort.Slice(gt.Examples, func(i, j int) bool { return gt.Examples[i].ID < gt.Examples[j].ID })
	return gt, nil
}

// ByLanguage returns the examples for one language code.
func (gt *GroundTruth) ByLanguage(lang string) []Example {
	var out []Example
	for _, ex := range gt.Examples {
		if ex.Language == lang {
			out = append(out, ex)
		}
	}
	return out
}

// RuleCategory maps a triggered rule name to the corpus bias category it
// most closely corresponds to.
func RuleCategory(rule string) string {
	switch rule {
	case model.RulePejorative:
		return CategoryDerogation
	case model.RulePronominalization:
		return CategoryPronominal
	case model.RuleGenderMarking:
		return CategoryHonorific
	case model.RuleSubjectStereotype, model.RuleContrastiveRoles, model.RuleImplicitBias:
		return CategoryOccupational
	case model.RuleAsymmetricalOrdering:
		return CategoryGenderedWording
	default:
		return CategoryGender
	}
}

// PredictedCategory derives the predicted category of an analysis result
// from its first explanation.
func PredictedCategory(res *model.AnalysisResult) string {
	if res == nil || len(res.Explanations) == 0 {
		return ""
	}
	return RuleCategory(res.Explanations[0].Rule)
}
