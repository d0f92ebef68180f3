package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ithute/ithute/internal/model"
)

// Analyzer is the slice of the pipeline the batch processor needs.
type Analyzer interface {
	Analyze(text, languageAlias string) (*model.AnalysisResult, error)
}

// Item is one entry of a batch input file.
type Item struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`

	// Accepted aliases in input files.
	Lang       string `json:"lang,omitempty"`
	BiasedText string `json:"biased_text,omitempty"`
}

// InputText resolves the two accepted text keys.
func (it Item) InputText() string {
	if it.Text != "" {
		return it.Text
	}
	return it.BiasedText
}

// languageAlias resolves the two accepted language keys.
func (it Item) languageAlias() string {
	if it.Lang != "" {
		return it.Lang
	}
	return it.Language
}

// ItemResult pairs an input item with its analysis outcome.
type ItemResult struct {
	Index  int                   `json:"-"`
	ID     string                `json:"id"`
	Input  string                `json:"original_text"`
	Result *model.AnalysisResult `json:"analysis,omitempty"`
	Err    error                 `json:"-"`
	Error  string                `json:"error,omitempty"`
}

// GetError implements Result.
func (r *ItemResult) GetError() error {
	return r.Err
}

// Summary aggregates a batch run.
type Summary struct {
	Total  int `json:"total"`
	Biased int `json:"biased"`
	Clean  int `json:"clean"`
}

// AnalyzeJob analyzes one batch item.
type AnalyzeJob struct {
	Index    int
	Item     Item
	Analyzer Analyzer
}

// Execute implements Job. Cancellation is caller-level: a canceled context
// skips the analysis, since no individual call can hang.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	res := &ItemResult{Index: j.Index, ID: j.Item.ID, Input: j.Item.InputText()}

	if err := ctx.Err(); err != nil {
		res.Err = err
		res.Error = err.Error()
		return res
	}

	result, err := j.Analyzer.Analyze(j.Item.InputText(), j.Item.languageAlias())
	if err != nil {
		res.Err = err
		res.Error = err.Error()
		return res
	}
	res.Result = result
	return res
}

// BatchProcessor analyzes many independent texts concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessItems analyzes all items and returns results in input order along
// with a summary.
func (b *BatchProcessor) ProcessItems(ctx context.Context, items []Item) ([]*ItemResult, Summary) {
	if len(items) == 0 {
		return []*ItemResult{}, Summary{}
	}

	pool := NewSizedPool(b.concurrency, len(items))
	pool.Start()

	for i, item := range items {
		if item.ID == "" {
			item.ID = fmt.Sprintf("%d", i+1)
		}
		pool.Submit(&AnalyzeJob{Index: i, Item: item, Analyzer: b.analyzer})
	}

	raw := pool.Wait()

	results := make([]*ItemResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*ItemResult))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	var summary Summary
	summary.Total = len(results)
	for _, r := range results {
		if r.Result != nil && r.Result.DetectedBias {
			summary.Biased++
		} else {
			summary.Clean++
		}
	}
	return results, summary
}

// ProcessFile reads items from a JSON file and processes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*ItemResult, Summary, error) {
	items, err := ReadItemsFromFile(path)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("read items: %w", err)
	}
	results, summary := b.ProcessItems(ctx, items)
	return results, summary, nil
}

// ReadItemsFromFile reads a batch input file. Both a wrapped object
// {"items": [...]} and a bare list [...] are accepted.
func ReadItemsFromFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	var wrapped struct {
		Items []Item `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items, nil
	}

	var list []Item
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse %s: expected {\"items\": [...]} or a JSON list: %w", path, err)
	}
	return list, nil
}

// WriteResults writes batch output as indented JSON: a summary block
// followed by per-item results.
func WriteResults(path string, results []*ItemResult, summary Summary) error {
	out := struct {
		Summary Summary       `json:"summary"`
		Results []*ItemResult `json:"results"`
	}{Summary: summary, Results: results}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
