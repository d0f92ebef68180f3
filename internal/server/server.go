// Package server exposes the analyzer over HTTP: a single-text correction
// endpoint, a batch endpoint for JSON item files, and a health check.
package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/ithute/ithute/internal/cache"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
	"github.com/ithute/ithute/internal/worker"
)

type Server struct {
	analyzer *pipeline.Analyzer
	batch    *worker.BatchProcessor
	cache    cache.Cache
	limiter  *worker.Limiter
	cfg      *model.Config
	log      *slog.Logger

	HttpServer *http.Server
}

// New creates an HTTP server around an analyzer.
func New(cfg *model.Config, analyzer *pipeline.Analyzer) *Server {
	s := &Server{
		analyzer: analyzer,
		batch:    worker.NewBatchProcessor(analyzer, cfg.Concurrency.Workers),
		limiter:  worker.NewLimiter(cfg.Server.RequestsPerSecond, cfg.Server.Burst),
		cfg:      cfg,
		log:      slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	if cfg.Cache.Enabled {
		s.cache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	s.HttpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.RegisterRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}
