package eval

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Prediction is the analyzer's verdict on one ground-truth example.
type Prediction struct {
	ExampleID string
	HasBias   bool
	Category  string
	Rewrite   string
}

// Counts are raw confusion counts.
type Counts struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	FN int `json:"fn"`
}

// Metrics are derived scores over a set of counts.
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Counts
}

func computeMetrics(c Counts) Metrics {
	m := Metrics{Counts: c}
	if c.TP+c.FP > 0 {
		m.Precision = float64(c.TP) / float64(c.TP+c.FP)
	}
	if c.TP+c.FN > 0 {
		m.Recall = float64(c.TP) / float64(c.TP+c.FN)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// DetectionReport summarizes detection quality.
type DetectionReport struct {
	Overall    Metrics            `json:"overall"`
	ByCategory map[string]Metrics `json:"by_category"`
	MacroF1    float64            `json:"macro_f1"`
}

// ComputeDetectionMetrics scores predictions against the ground truth.
// Every ground-truth example is biased, so overall true positives count
// any detection; the per-category split additionally requires the
// predicted category to match.
func (gt *GroundTruth) ComputeDetectionMetrics(predictions []Prediction) DetectionReport {
	byID := make(map[string]Example, len(gt.Examples))
	for _, ex := range gt.Examples {
		byID[ex.ID] = ex
	}

	var overall Counts
	catCounts := make(map[string]*Counts)
	counts := func(cat string) *Counts {
		c, ok := catCounts[cat]
		if !ok {
			c = &Counts{}
			catCounts[cat] = c
		}
		return c
	}

	for _, pred := range predictions {
		gtEx, ok := byID[pred.ExampleID]
		if !ok {
			continue
		}
		gtCategory := gtEx.BiasCategory
		if gtCategory == "" {
			gtCategory = "Unknown"
		}

		if pred.HasBias {
			overall.TP++
			if pred.Category == gtCategory {
				counts(gtCategory).TP++
			} else {
				counts(pred.Category).FP++
				counts(gtCategory).FN++
			}
		} else {
			overall.FN++
			counts(gtCategory).FN++
		}
	}

	report := DetectionReport{
		Overall:    computeMetrics(overall),
		ByCategory: make(map[string]Metrics, len(catCounts)),
	}
	var sum float64
	for cat, c := range catCounts {
		m := computeMetrics(*c)
		report.ByCategory[cat] = m
		sum += m.F1
	}
	if len(catCounts) > 0 {
		report.MacroF1 = sum / float64(len(catCounts))
	}
	return report
}

// TokenF1 computes an F1 score over whitespace token overlap between a
// candidate rewrite and its reference, case-insensitive.
func TokenF1(prediction, reference string) float64 {
	predTokens := strings.Fields(strings.ToLower(prediction))
	refTokens := strings.Fields(strings.ToLower(reference))
	if len(predTokens) == 0 || len(refTokens) == 0 {
		return 0
	}

	refCounts := make(map[string]int, len(refTokens))
	for _, t := range refTokens {
		refCounts[t]++
	}
	common := 0
	predCounts := make(map[string]int, len(predTokens))
	for _, t := range predTokens {
		predCounts[t]++
	}
	for t, n := range predCounts {
		if m := refCounts[t]; m < n {
			common += m
		} else {
			common += n
		}
	}

	precision := float64(common) / float64(len(predTokens))
	recall := float64(common) / float64(len(refTokens))
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// CorrectionReport summarizes rewrite quality against the references.
type CorrectionReport struct {
	Total          int     `json:"total"`
	ExactMatches   int     `json:"exact_matches"`
	ExactMatchRate float64 `json:"exact_match_rate"`
	AverageTokenF1 float64 `json:"average_token_f1"`
}

// ComputeCorrectionMetrics scores rewrites against the reference texts.
func (gt *GroundTruth) ComputeCorrectionMetrics(predictions []Prediction) CorrectionReport {
	byID := make(map[string]Example, len(gt.Examples))
	for _, ex := range gt.Examples {
		byID[ex.ID] = ex
	}

	var report CorrectionReport
	var totalF1 float64
	for _, pred := range predictions {
		gtEx, ok := byID[pred.ExampleID]
		if !ok {
			continue
		}
		reference := strings.TrimSpace(gtEx.BiasFreeText)
		candidate := strings.TrimSpace(pred.Rewrite)
		report.Total++
		if strings.EqualFold(candidate, reference) {
			report.ExactMatches++
		}
		totalF1 += TokenF1(candidate, reference)
	}
	if report.Total > 0 {
		report.ExactMatchRate = float64(report.ExactMatches) / float64(report.Total)
		report.AverageTokenF1 = totalF1 / float64(report.Total)
	}
	return report
}

// WriteReport renders a human-readable evaluation report.
func WriteReport(w io.Writer, gt *GroundTruth, detection DetectionReport, correction CorrectionReport) {
	rule := strings.Repeat("=", 72)
	line := strings.Repeat("-", 72)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "EVALUATION REPORT")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nDETECTION (overall)")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Precision: %.3f\n", detection.Overall.Precision)
	fmt.Fprintf(w, "Recall:    %.3f\n", detection.Overall.Recall)
	fmt.Fprintf(w, "F1:        %.3f\n", detection.Overall.F1)
	fmt.Fprintf(w, "Macro-F1:  %.3f\n", detection.MacroF1)

	fmt.Fprintln(w, "\nDETECTION (by category)")
	fmt.Fprintln(w, line)
	cats := make([]string, 0, len(detection.ByCategory))
	for cat := range detection.ByCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		m := detection.ByCategory[cat]
		fmt.Fprintf(w, "%s:\n", cat)
		fmt.Fprintf(w, "  Precision: %.3f  Recall: %.3f  F1: %.3f  (TP %d, FP %d, FN %d)\n",
			m.Precision, m.Recall, m.F1, m.TP, m.FP, m.FN)
	}

	fmt.Fprintln(w, "\nCORRECTION")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total:            %d\n", correction.Total)
	fmt.Fprintf(w, "Exact match rate: %.3f\n", correction.ExactMatchRate)
	fmt.Fprintf(w, "Avg token F1:     %.3f\n", correction.AverageTokenF1)

	fmt.Fprintln(w, "\nDATASET")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total examples: %d\n", len(gt.Examples))
	langCounts := make(map[string]int)
	for _, ex := range gt.Examples {
		langCounts[ex.Language]++
	}
	langs := make([]string, 0, len(langCounts))
	for lang := range langCounts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		fmt.Fprintf(w, "  %s: %d\n", lang, langCounts[lang])
	}
	fmt.Fprintln(w, rule)
}
