package cli

import (
	"fmt"
	"os"

	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	analyzeLang string
	outJSON     string
	summaryOut  bool
	lexiconPath string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze a single text for gender bias and rewrite it",
	Long: `Analyze runs the rule battery over a single text:
- Identify the language (or honor --lang)
- Find gendered subjects and stereotyped actions
- Apply the detection rules and explain every finding
- Rewrite the text when bias is detected

Example:
  ithute analyze "Mosetsana o apea dijo mme mosimane o bala dibuka."
  ithute analyze --lang zu "Intombazane ipheka ukudla."
  ithute analyze "..." --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "", "input language (tn, zu); auto-detected when empty")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&summaryOut, "summary", false, "print a human-readable summary instead of JSON")
	analyzeCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon overlay file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := args[0]

	cfg := model.DefaultConfig()
	cfg.Lexicon.Path = lexiconPath
	cfg.Output.Verbose = verbose

	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	if verbose {
		language := model.Language(analyzeLang)
		if analyzeLang == "" {
			language = analyzer.DetectLanguage(text)
			fmt.Fprintf(os.Stderr, "Detected language: %s\n", language)
		} else {
			language, err = model.ParseLanguage(analyzeLang)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Language: %s\n", language)
		}
		fmt.Fprintf(os.Stderr, "Gendered subjects: %d\n", len(analyzer.Subjects(text, language)))
		fmt.Fprintf(os.Stderr, "Stereotyped actions: %d\n", len(analyzer.Actions(text, language)))
		fmt.Fprintln(os.Stderr)
	}

	result, err := analyzer.Analyze(text, analyzeLang)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Rules triggered: %d\n", len(result.Explanations))
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer()
	if outJSON != "" {
		return renderer.RenderJSON(result, outJSON)
	}
	if summaryOut {
		renderer.RenderSummary(os.Stdout, result)
		return nil
	}
	return renderer.WriteJSON(os.Stdout, result)
}
