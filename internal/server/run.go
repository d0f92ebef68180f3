package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// Run makes the HTTP server listen and serve, and blocks until it is
// shut down by SIGINT or SIGTERM.
func (s *Server) Run() error {
	done := make(chan struct{})
	go s.shutdown(done)

	s.log.Info("server listening", "addr", s.HttpServer.Addr)

	err := s.HttpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	<-done
	s.log.Info("graceful shutdown complete")
	return nil
}

// shutdown waits for an interrupt signal, gives in-flight requests a few
// seconds to finish and informs the main goroutine when done.
func (s *Server) shutdown(done chan<- struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	s.log.Info("shutting down, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.HttpServer.Shutdown(ctx); err != nil {
		s.log.Error("forced shutdown", "error", err)
	}
	close(done)
}
