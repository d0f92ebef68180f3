package cli

import (
	"fmt"
	"os"

	"github.com/ithute/ithute/internal/eval"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	groundTruthPath string
	evalOutput      string
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the analyzer against a ground-truth corpus",
	Long: `Eval runs the analyzer over every example in a ground-truth file
(a JSON object keyed by example id, each record carrying language,
bias_category, biased_text and bias_free_text) and reports detection
precision/recall/F1 overall and per category, plus rewrite quality as
token-level F1 against the reference texts.

Example:
  ithute eval --ground-truth ground_truth.json
  ithute eval --ground-truth ground_truth.json --output report.txt`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&groundTruthPath, "ground-truth", "ground_truth.json", "ground-truth JSON file")
	evalCmd.Flags().StringVar(&evalOutput, "output", "", "write the report to a file instead of stdout")
	evalCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon overlay file")
}

func runEval(cmd *cobra.Command, args []string) error {
	gt, err := eval.LoadGroundTruth(groundTruthPath)
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Lexicon.Path = lexiconPath
	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating %d examples\n", len(gt.Examples))
	}

	predictions := make([]eval.Prediction, 0, len(gt.Examples))
	for _, ex := range gt.Examples {
		result, err := analyzer.Analyze(ex.BiasedText, ex.Language)
		if err != nil {
			fmt.Fprintf(os.Stderr, "example %s: %v\n", ex.ID, err)
			continue
		}
		predictions = append(predictions, eval.Prediction{
			ExampleID: ex.ID,
			HasBias:   result.DetectedBias,
			Category:  eval.PredictedCategory(result),
			Rewrite:   result.Rewrite,
		})
	}

	detection := gt.ComputeDetectionMetrics(predictions)
	correction := gt.ComputeCorrectionMetrics(predictions)

	out := os.Stdout
	if evalOutput != "" {
		f, err := os.Create(evalOutput)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		out = f
	}
	eval.WriteReport(out, gt, detection, correction)
	return nil
}
