package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
	"github.com/ithute/ithute/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	batchOutput  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze a JSON file of texts in parallel",
	Long: `Batch processes a JSON input file concurrently:
- Read items from the file ({"items": [...]} or a bare JSON list)
- Each item carries "text" plus optional "id" and "language"
- Analyze items in parallel with a configurable worker count
- Write per-item results and a summary as JSON

Example:
  ithute batch sentences.json
  ithute batch sentences.json --concurrency 8 --output results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutput, "output", "results.json", "output JSON path")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon overlay file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output:     %s\n", batchOutput)
	fmt.Fprintln(os.Stderr)

	cfg := model.DefaultConfig()
	cfg.Lexicon.Path = lexiconPath
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose

	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	processor := worker.NewBatchProcessor(analyzer, concurrency)
	results, summary, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if err := worker.WriteResults(batchOutput, results, summary); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Processed %d items: %d biased, %d clean\n",
		summary.Total, summary.Biased, summary.Clean)
	fmt.Fprintf(os.Stderr, "Results saved to %s\n", batchOutput)
	return nil
}
