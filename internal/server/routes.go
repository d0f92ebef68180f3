package server

import (
	"net/http"
)

func (s *Server) RegisterRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.indexHandler)
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("POST /correct", s.correctHandler)
	mux.HandleFunc("POST /batch-correct", s.batchCorrectHandler)

	return s.recoverPanic(s.logRequests(s.rateLimit(mux)))
}
