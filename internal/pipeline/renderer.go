package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ithute/ithute/internal/model"
)

// Renderer writes analysis results to files and terminals. The JSON field
// names are the renderer's concern, not the core contract; they follow the
// model's serialization tags.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the result as indented JSON to path.
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes the result as indented JSON to w.
func (r *Renderer) WriteJSON(w io.Writer, result *model.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

// RenderSummary prints a human-readable result summary to w.
func (r *Renderer) RenderSummary(w io.Writer, result *model.AnalysisResult) {
	fmt.Fprintf(w, "Bias Detected: %v\n", result.DetectedBias)
	fmt.Fprintf(w, "Language:      %s\n", result.Language)
	if len(result.Explanations) > 0 {
		fmt.Fprintf(w, "\nExplanations:\n")
		for _, e := range result.Explanations {
			fmt.Fprintf(w, "  - Rule:   %s\n", e.Rule)
			fmt.Fprintf(w, "    Span:   %s\n", e.Span)
			fmt.Fprintf(w, "    Reason: %s\n", e.Reason)
		}
	}
	fmt.Fprintf(w, "\nOriginal:  %s\n", result.InputText)
	fmt.Fprintf(w, "Rewritten: %s\n", result.Rewrite)
}
