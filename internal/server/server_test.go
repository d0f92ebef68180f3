package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
)

func newTestServer(t *testing.T, mutate func(*model.Config)) http.Handler {
	t.Helper()
	cfg := model.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	analyzer, err := pipeline.New(cfg)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	return New(cfg, analyzer).RegisterRoutes()
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", body)
	}
}

func TestIndexPage(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/correct") {
		t.Error("Expected usage page to document the correct endpoint")
	}
}

func TestCorrectEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	payload := `{"text": "Mosadi o apea dijo.", "language": "tn"}`
	req := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("parse result: %v", err)
	}
	if !result.DetectedBias {
		t.Error("Expected bias detected")
	}
	if result.Language != model.LangSetswana {
		t.Errorf("Expected setswana, got %s", result.Language)
	}
	if result.Rewrite == result.InputText {
		t.Error("Expected a rewrite")
	}
}

func TestCorrectEndpoint_MissingText(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(`{"language": "tn"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "text") {
		t.Errorf("Expected error naming the missing field, got %s", rec.Body.String())
	}
}

func TestCorrectEndpoint_UnknownLanguage(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(`{"text": "x", "language": "fr"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestCorrectEndpoint_CachedResponseStable(t *testing.T) {
	h := newTestServer(t, nil)

	run := func() string {
		req := httptest.NewRequest(http.MethodPost, "/correct",
			strings.NewReader(`{"text": "Mosadi ke setlaela.", "language": "tn"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		return rec.Body.String()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("Expected identical cached response, got %q then %q", first, second)
	}
}

func TestBatchCorrectEndpoint_JSONBody(t *testing.T) {
	h := newTestServer(t, nil)

	payload := `[
		{"id": "s1", "text": "Mosadi o apea dijo.", "lang": "tn"},
		{"id": "s2", "biased_text": "dipalo di thata", "lang": "tn"},
		{"id": "s3"}
	]`
	req := httptest.NewRequest(http.MethodPost, "/batch-correct", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var entries []struct {
		ID         string          `json:"id"`
		Original   string          `json:"original"`
		Correction json.RawMessage `json:"correction"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	// The textless item is dropped, not errored.
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "s1" || entries[1].ID != "s2" {
		t.Errorf("Unexpected order %v", entries)
	}

	var correction model.AnalysisResult
	if err := json.Unmarshal(entries[0].Correction, &correction); err != nil {
		t.Fatalf("parse correction: %v", err)
	}
	if !correction.DetectedBias {
		t.Error("Expected bias in first item")
	}
}

func TestBatchCorrectEndpoint_MultipartUpload(t *testing.T) {
	h := newTestServer(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "items.json")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte(`[{"id": "s1", "text": "Mosadi o apea dijo.", "lang": "tn"}]`))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/batch-correct", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "s1") {
		t.Errorf("Expected item result, got %s", rec.Body.String())
	}
}

func TestBatchCorrectEndpoint_InvalidBody(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/batch-correct", strings.NewReader(`"not a list"`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	h := newTestServer(t, func(cfg *model.Config) {
		cfg.Server.RequestsPerSecond = 1
		cfg.Server.Burst = 1
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.1.1.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected first request allowed, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.1.1.1:5678"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected second request throttled, got %d", rec.Code)
	}

	// A different client IP has its own bucket.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.2.2.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected other client allowed, got %d", rec.Code)
	}
}
