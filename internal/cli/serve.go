package cli

import (
	"fmt"

	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
	"github.com/ithute/ithute/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveRPS  float64
	noCache   bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bias correction HTTP API",
	Long: `Serve starts an HTTP server exposing the analyzer:
- POST /correct       single-text correction
- POST /batch-correct batch correction from a JSON item list
- GET  /health        health check
- GET  /              usage page

Example:
  ithute serve
  ithute serve --addr :9090 --rps 50 --no-cache`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().Float64Var(&serveRPS, "rps", 0, "per-client requests per second (default from config)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	serveCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon overlay file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Lexicon.Path = lexiconPath
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveRPS > 0 {
		cfg.Server.RequestsPerSecond = serveRPS
	}

	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	return server.New(cfg, analyzer).Run()
}
