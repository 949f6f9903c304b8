package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aware/internal/analyzer"
	"aware/internal/config"
	"aware/internal/scoring"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := analyzer.New(scoring.Default(), log)
	if err != nil {
		t.Fatalf("analyzer: %v", err)
	}
	return New(a, config.Default().Server, log).Router()
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["version"] == "" {
		t.Fatalf("body=%+v", body)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	payload := `{"text":"Furthermore, the robust landscape underscores a pivotal paradigm — one that is crucial: holistic synergy. Moreover, comprehensive methodologies foster nuanced outcomes across every intricate realm.","filename":"sample.txt"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var res analyzer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Meta.ID == "" || res.Meta.Filename != "sample.txt" {
		t.Fatalf("meta=%+v", res.Meta)
	}
	if res.Score < 0 || res.Score > 100 {
		t.Fatalf("score=%.1f", res.Score)
	}
}

// TestAnalyzePayloadFieldNames pins the wire-level keys downstream consumers
// parse; renaming any of them is a breaking change.
func TestAnalyzePayloadFieldNames(t *testing.T) {
	srv := newTestServer(t)
	payload := `{"text":"Moreover, the comprehensive landscape fosters robust synergy in every pivotal realm. Furthermore, holistic paradigms underscore nuanced methodologies throughout."}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{
		"score", "classification", "confidence", "categories",
		"composite_patterns", "human_indicators", "advanced_analysis",
		"scoring_breakdown", "recommendation",
	} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("payload missing %q: %s", key, rec.Body.String())
		}
	}

	var conf string
	if err := json.Unmarshal(raw["confidence"], &conf); err != nil {
		t.Fatalf("confidence is not a string label: %v", err)
	}
	switch conf {
	case "LOW", "MEDIUM", "HIGH":
	default:
		t.Fatalf("confidence=%q", conf)
	}

	var breakdown map[string]float64
	if err := json.Unmarshal(raw["scoring_breakdown"], &breakdown); err != nil {
		t.Fatalf("scoring_breakdown: %v", err)
	}
	for _, key := range []string{
		"base_score", "composite_bonus", "correlation_bonus",
		"bayesian_adjusted", "contextual_adjusted", "final_score",
	} {
		if _, ok := breakdown[key]; !ok {
			t.Fatalf("scoring_breakdown missing %q", key)
		}
	}

	var cats map[string]struct {
		Score   float64           `json:"score"`
		Markers []json.RawMessage `json:"markers"`
	}
	if err := json.Unmarshal(raw["categories"], &cats); err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 10 {
		t.Fatalf("got %d categories, want 10", len(cats))
	}
	if _, ok := cats["A"]; !ok {
		t.Fatalf("category A missing: %v", cats)
	}
}

func TestAnalyzeRejectsMissingText(t *testing.T) {
	srv := newTestServer(t)
	for _, payload := range []string{`{}`, `{"text":"   "}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %q: status=%d, want 400", payload, rec.Code)
		}
	}
}

func TestAnalyzeRejectsUnknownType(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"text":"some words","document_type":"poetry"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestUploadEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "essay.txt")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	io.WriteString(fw, "A short essay about the harvest season and the people who worked it, written plainly and without flourish across several honest sentences.")
	mw.WriteField("document_type", "general")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var res analyzer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Meta.Filename != "essay.txt" {
		t.Fatalf("filename=%s", res.Meta.Filename)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	srv := newTestServer(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("document_type", "general")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}
