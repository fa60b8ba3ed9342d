package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 5 * time.Second,
			want:     "5.00s",
		},
		{
			name:     "minutes",
			duration: 2*time.Minute + 30*time.Second,
			want:     "2m 30s",
		},
		{
			name:     "hours",
			duration: 1*time.Hour + 15*time.Minute,
			want:     "1h 15m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentageString(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  string
	}{
		{
			name:  "50 percent",
			part:  1,
			total: 2,
			want:  "50.00%",
		},
		{
			name:  "100 percent",
			part:  5,
			total: 5,
			want:  "100.00%",
		},
		{
			name:  "division by zero",
			part:  5,
			total: 0,
			want:  "0.00%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentageString(tt.part, tt.total)
			if got != tt.want {
				t.Errorf("percentageString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusEmoji(t *testing.T) {
	tests := []struct {
		name   string
		passed int
		failed int
		want   string
	}{
		{
			name:   "failed",
			passed: 1,
			failed: 1,
			want:   "❌",
		},
		{
			name:   "passed",
			passed: 5,
			want:   "✅",
		},
		{
			name: "none",
			want: "⚪",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusEmoji(tt.passed, tt.failed)
			if got != tt.want {
				t.Errorf("statusEmoji() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	if got := formatRate(20, 10*time.Second); got != "2.00/s" {
		t.Errorf("formatRate() = %v, want 2.00/s", got)
	}
	if got := formatRate(10, 0); got != "N/A" {
		t.Errorf("formatRate() = %v, want N/A", got)
	}
}

func TestPercentile(t *testing.T) {
	var durations []time.Duration
	for i := 100; i >= 1; i-- {
		durations = append(durations, time.Duration(i)*time.Millisecond)
	}

	tests := []struct {
		name string
		p    float64
		want time.Duration
	}{
		{name: "p50", p: 50, want: 50 * time.Millisecond},
		{name: "p95", p: 95, want: 95 * time.Millisecond},
		{name: "p100", p: 100, want: 100 * time.Millisecond},
		{name: "p0", p: 0, want: 1 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentile(durations, tt.p); got != tt.want {
				t.Errorf("percentile() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile(nil) = %v, want 0", got)
	}
	if durations[0] != 100*time.Millisecond {
		t.Errorf("percentile() reordered its input")
	}
}

// fakeMarketplace answers the round trip the way the API does
func fakeMarketplace(t *testing.T, failPay bool) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var paid atomic.Int32

	writeJSON := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/buyers/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": map[string]any{"id": "b-1", "name": "Buyer"}})
	})
	mux.HandleFunc("POST /api/sellers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": map[string]any{"id": "s-1", "name": "Seller"}})
	})
	mux.HandleFunc("POST /api/quotes", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["sellerId"] != "s-1" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad quote", "code": "validation_failed"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "quote": map[string]any{"id": "q-1"}})
	})
	mux.HandleFunc("POST /api/quotes/q-1/offer", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "offer": map[string]any{"offerId": "o-1"}})
	})
	mux.HandleFunc("POST /api/quotes/q-1/accept", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["offerId"] != "o-1" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Offer not found", "code": "not_found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	mux.HandleFunc("POST /api/quotes/q-1/pay", func(w http.ResponseWriter, r *http.Request) {
		if failPay {
			writeJSON(w, http.StatusConflict, map[string]any{"error": "Quote is not awaiting payment", "code": "conflict"})
			return
		}
		paid.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &paid
}

func TestRun(t *testing.T) {
	srv, paid := fakeMarketplace(t, false)

	cfg := &Config{BaseURL: srv.URL + "/api/", Scenarios: 8, Concurrency: 3}
	stats := run(context.Background(), newAPIClient(cfg.BaseURL, 5*time.Second), cfg)

	if stats.Scenarios != 8 || stats.Completed != 8 || stats.Failed != 0 {
		t.Fatalf("run() scenarios = %d completed = %d failed = %d, want 8/8/0", stats.Scenarios, stats.Completed, stats.Failed)
	}
	if got := paid.Load(); got != 8 {
		t.Errorf("paid = %d, want 8", got)
	}
	for _, name := range steps {
		s := stats.Steps[name]
		if s.Count != 8 || len(s.Durations) != 8 {
			t.Errorf("step %s count = %d durations = %d, want 8", name, s.Count, len(s.Durations))
		}
	}
}

func TestRun_FailedStep(t *testing.T) {
	srv, _ := fakeMarketplace(t, true)

	cfg := &Config{BaseURL: srv.URL + "/api", Scenarios: 2, Concurrency: 2}
	stats := run(context.Background(), newAPIClient(cfg.BaseURL, 5*time.Second), cfg)

	if stats.Failed != 2 {
		t.Fatalf("run() failed = %d, want 2", stats.Failed)
	}
	pay := stats.Steps["mark-paid"]
	if pay.Failed != 2 {
		t.Errorf("mark-paid failed = %d, want 2", pay.Failed)
	}
	if pay.Errors["HTTP 409 conflict: Quote is not awaiting payment"] != 2 {
		t.Errorf("mark-paid errors = %v", pay.Errors)
	}
}

func TestWriteMarkdownReport(t *testing.T) {
	rec := newRecorder("http://localhost:5000/api")
	rec.step("create-quote", 120*time.Millisecond, nil)
	rec.scenario(nil)
	stats := rec.finish()

	path := filepath.Join(t.TempDir(), "report.md")
	if err := writeMarkdownReport(path, stats); err != nil {
		t.Fatalf("writeMarkdownReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(data)
	if !strings.Contains(report, "# Marketplace Benchmark Report") {
		t.Errorf("report is missing its title")
	}
	if !strings.Contains(report, "| ✅ create-quote | 1 | 0 | 120ms | 120ms | 120ms |") {
		t.Errorf("report is missing the create-quote row:\n%s", report)
	}
	if strings.Contains(report, "submit-offer") {
		t.Errorf("report lists a step that never ran")
	}
}
