package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ithute/ithute/internal/cache"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/worker"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Ithute Bias Correction API</title></head>
<body>
<h1>Ithute Bias Correction API</h1>
<p>Rule-based gender bias detection and rewriting for Setswana and isiZulu.</p>
<ul>
<li><code>POST /correct</code> with JSON <code>{"text": "...", "language": "tn|zu"}</code> (language optional, auto-detected when absent)</li>
<li><code>POST /batch-correct</code> with a JSON list of items, either as the request body or as a multipart upload under the <code>file</code> field</li>
<li><code>GET /health</code></li>
</ul>
</body>
</html>
`

type correctRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type batchEntry struct {
	ID         string          `json:"id"`
	Original   string          `json:"original,omitempty"`
	Correction json.RawMessage `json:"correction,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.log.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexPage)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "bias-correction-api",
	})
}

func (s *Server) correctHandler(w http.ResponseWriter, r *http.Request) {
	var req correctRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "Missing 'text' field in request body")
		return
	}

	key := cache.CacheKey(req.Language, req.Text)
	if s.cache != nil {
		if data, ok := s.cache.Get(key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(data)
			return
		}
	}

	result, err := s.analyzer.Analyze(req.Text, req.Language)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err.Error())
		return
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			s.cache.Set(key, append(data, '\n'), s.cfg.Cache.TTL)
		}
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) batchCorrectHandler(w http.ResponseWriter, r *http.Request) {
	body, err := s.batchBody(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var items []worker.Item
	if err := json.Unmarshal(body, &items); err != nil {
		var wrapped struct {
			Items []worker.Item `json:"items"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil || wrapped.Items == nil {
			s.writeError(w, http.StatusBadRequest, "JSON must be a list of items")
			return
		}
		items = wrapped.Items
	}

	// Items without text are dropped rather than reported as errors.
	kept := items[:0]
	for _, item := range items {
		if item.InputText() != "" {
			kept = append(kept, item)
		}
	}

	results, _ := s.batch.ProcessItems(r.Context(), kept)

	entries := make([]batchEntry, 0, len(results))
	for _, res := range results {
		entry := batchEntry{ID: res.ID}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		} else {
			entry.Original = res.Input
			correction, err := json.Marshal(res.Result)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Correction = correction
			}
		}
		entries = append(entries, entry)
	}

	s.writeJSON(w, http.StatusOK, entries)
}

// batchBody returns the JSON payload of a batch request, from either a
// multipart upload under the "file" field or a plain JSON body.
func (s *Server) batchBody(r *http.Request) ([]byte, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("No file part")
		}
		defer func(f multipart.File) { f.Close() }(file)
		return io.ReadAll(file)
	}
	return io.ReadAll(r.Body)
}
