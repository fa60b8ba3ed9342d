package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
)

const (
	defaultBaseURL = "http://localhost:5000/api"
	offeredPrice   = 45000
)

// Steps of one request-for-quote round trip, in order
var steps = []string{
	"register-buyer",
	"register-seller",
	"create-quote",
	"submit-offer",
	"accept-offer",
	"mark-paid",
}

type Config struct {
	BaseURL     string
	Scenarios   int           // Number of full quote round trips to run
	Concurrency int           // Number of concurrent workers
	Timeout     time.Duration // Timeout for each API call
	OutputFile  string        // Output markdown file path (optional)
	Debug       bool
}

// StepStats holds the outcome of one step across all scenarios
type StepStats struct {
	Name      string
	Count     int
	Failed    int
	Durations []time.Duration
	Errors    map[string]int
}

// RunStats holds the outcome of a benchmark run
type RunStats struct {
	BaseURL   string
	StartTime time.Time
	Duration  time.Duration
	Scenarios int
	Completed int
	Failed    int
	Steps     map[string]*StepStats
}

// recorder collects step timings from concurrent scenarios
type recorder struct {
	mu    sync.Mutex
	stats *RunStats
}

func newRecorder(baseURL string) *recorder {
	stats := &RunStats{
		BaseURL:   baseURL,
		StartTime: time.Now(),
		Steps:     make(map[string]*StepStats, len(steps)),
	}
	for _, name := range steps {
		stats.Steps[name] = &StepStats{Name: name, Errors: make(map[string]int)}
	}
	return &recorder{stats: stats}
}

func (r *recorder) step(name string, d time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats.Steps[name]
	s.Count++
	if err != nil {
		s.Failed++
		s.Errors[err.Error()]++
		return
	}
	s.Durations = append(s.Durations, d)
}

func (r *recorder) scenario(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Scenarios++
	if err != nil {
		r.stats.Failed++
		return
	}
	r.stats.Completed++
}

func (r *recorder) finish() *RunStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Duration = time.Since(r.stats.StartTime)
	return r.stats
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	fmt.Printf("Benchmarking %s with %d scenarios (concurrency %d)\n", cfg.BaseURL, cfg.Scenarios, cfg.Concurrency)

	client := newAPIClient(cfg.BaseURL, cfg.Timeout)
	stats := run(ctx, client, cfg)

	fmt.Println("\n" + strings.Repeat("=", 80))
	if ctx.Err() != nil {
		fmt.Println("INTERRUPTED - PARTIAL RESULTS")
	} else {
		fmt.Println("BENCHMARK RESULTS")
	}
	fmt.Println(strings.Repeat("=", 80))
	printRunStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.BaseURL, "base-url", defaultBaseURL, "API base URL including the base path")
	flag.IntVar(&cfg.Scenarios, "scenarios", 50, "Number of quote round trips to run (default: 50)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent workers (default: 5)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Print every failed step")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "timeout", 10, "Timeout for each API call in seconds (default: 10)")

	configFile := flag.String("config", "", "Path to config file (optional, default: "+GetDefaultConfigPath()+")")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.Scenarios <= 0 {
		cfg.Scenarios = 1
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Concurrency > 50 {
		cfg.Concurrency = 50 // Cap at 50 to stay under the database pool
	}

	// Load from config file if specified
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.BaseURL == defaultBaseURL && fileCfg.BaseURL != "" {
				cfg.BaseURL = fileCfg.BaseURL
			}
			if fileCfg.Concurrency > 0 && cfg.Concurrency == 5 {
				cfg.Concurrency = fileCfg.Concurrency
			}
		}
	}

	return cfg
}

// run executes the scenarios on a bounded worker pool
func run(ctx context.Context, client *apiClient, cfg *Config) *RunStats {
	rec := newRecorder(cfg.BaseURL)
	pool := pond.NewPool(cfg.Concurrency)

	for i := 0; i < cfg.Scenarios; i++ {
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			err := runScenario(ctx, client, rec)
			rec.scenario(err)
			if err != nil && cfg.Debug {
				fmt.Printf("scenario failed: %v\n", err)
			}
		})
	}
	pool.StopAndWait()

	return rec.finish()
}

// runScenario walks one quote from registration to payment
func runScenario(ctx context.Context, client *apiClient, rec *recorder) error {
	suffix := strings.ToLower(ulid.Make().String())

	var buyer struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := client.timed(ctx, rec, "register-buyer", http.MethodPost, "/buyers/register", map[string]any{
		"name":     "Bench Buyer " + suffix,
		"email":    "buyer-" + suffix + "@bench.test",
		"username": "buyer-" + suffix,
		"password": "bench-secret",
	}, &buyer); err != nil {
		return err
	}

	var seller struct {
		User struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := client.timed(ctx, rec, "register-seller", http.MethodPost, "/sellers", map[string]any{
		"name":     "Bench Seller " + suffix,
		"email":    "seller-" + suffix + "@bench.test",
		"username": "seller-" + suffix,
		"password": "bench-secret",
	}, &seller); err != nil {
		return err
	}

	var created struct {
		Quote struct {
			ID string `json:"id"`
		} `json:"quote"`
	}
	if err := client.timed(ctx, rec, "create-quote", http.MethodPost, "/quotes", map[string]any{
		"buyerId":   buyer.User.ID,
		"buyerName": "Bench Buyer " + suffix,
		"items": []map[string]any{
			{"productName": "TMT 500 D 12mm", "quantity": 10, "unit": "ton"},
		},
		"sellerId":   seller.User.ID,
		"sellerName": seller.User.Name,
	}, &created); err != nil {
		return err
	}
	quotePath := "/quotes/" + created.Quote.ID

	var offered struct {
		Offer struct {
			ID string `json:"offerId"`
		} `json:"offer"`
	}
	if err := client.timed(ctx, rec, "submit-offer", http.MethodPost, quotePath+"/offer", map[string]any{
		"sellerId":     seller.User.ID,
		"sellerName":   seller.User.Name,
		"offeredPrice": offeredPrice,
	}, &offered); err != nil {
		return err
	}

	if err := client.timed(ctx, rec, "accept-offer", http.MethodPost, quotePath+"/accept", map[string]any{
		"offerId":  offered.Offer.ID,
		"sellerId": seller.User.ID,
	}, nil); err != nil {
		return err
	}

	return client.timed(ctx, rec, "mark-paid", http.MethodPost, quotePath+"/pay", nil, nil)
}

// apiClient is a minimal JSON client for the marketplace API
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// timed performs one call and records its latency under step
func (c *apiClient) timed(ctx context.Context, rec *recorder, step, method, path string, body, out any) error {
	start := time.Now()
	err := c.do(ctx, method, path, body, out)
	rec.step(step, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	return nil
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("HTTP %d %s: %s", resp.StatusCode, apiErr.Code, apiErr.Error)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.New("unexpected response body")
	}
	return nil
}

func printRunStats(stats *RunStats) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Target:      %s\n", stats.BaseURL)
	fmt.Printf("Start Time:  %s\n", stats.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Duration:    %s\n", formatDuration(stats.Duration))
	fmt.Printf("Scenarios:   %d\n", stats.Scenarios)
	fmt.Printf("Completed:   %d (%s)\n", stats.Completed, percentageString(stats.Completed, stats.Scenarios))
	if stats.Failed > 0 {
		fmt.Printf("Failed:      %d (%s)\n", stats.Failed, percentageString(stats.Failed, stats.Scenarios))
	}
	fmt.Printf("Throughput:  %s\n", formatRate(stats.Completed, stats.Duration))
	fmt.Println()

	fmt.Println("Steps Breakdown:")
	fmt.Println()
	for _, name := range steps {
		s := stats.Steps[name]
		if s == nil || s.Count == 0 {
			continue
		}
		fmt.Printf("  %s %s\n", statusEmoji(s.Count-s.Failed, s.Failed), s.Name)
		fmt.Printf("    Calls:   %d\n", s.Count)
		if s.Failed > 0 {
			fmt.Printf("    Failed:  %d (%s)\n", s.Failed, percentageString(s.Failed, s.Count))
			for msg, n := range s.Errors {
				fmt.Printf("      %dx %s\n", n, msg)
			}
		}
		fmt.Printf("    p50:     %s\n", formatDuration(percentile(s.Durations, 50)))
		fmt.Printf("    p95:     %s\n", formatDuration(percentile(s.Durations, 95)))
		fmt.Printf("    p99:     %s\n", formatDuration(percentile(s.Durations, 99)))
		fmt.Println()
	}

	fmt.Println(strings.Repeat("-", 80))
}

// writeMarkdownReport writes a markdown report of the run
func writeMarkdownReport(filepath string, stats *RunStats) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	// Write header
	_, _ = fmt.Fprintf(file, "# Marketplace Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	// Summary section
	_, _ = fmt.Fprintf(file, "## Summary\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Target** | `%s` |\n", stats.BaseURL)
	_, _ = fmt.Fprintf(file, "| **Start Time** | %s |\n", stats.StartTime.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(file, "| **Duration** | %s |\n", formatDuration(stats.Duration))
	_, _ = fmt.Fprintf(file, "| **Scenarios** | %d |\n", stats.Scenarios)
	_, _ = fmt.Fprintf(file, "| **Completed** | %d (%s) |\n", stats.Completed, percentageString(stats.Completed, stats.Scenarios))
	if stats.Failed > 0 {
		_, _ = fmt.Fprintf(file, "| **Failed** | %d (%s) |\n", stats.Failed, percentageString(stats.Failed, stats.Scenarios))
	}
	_, _ = fmt.Fprintf(file, "| **Throughput** | %s |\n", formatRate(stats.Completed, stats.Duration))
	_, _ = fmt.Fprintf(file, "\n")

	// Step latencies
	_, _ = fmt.Fprintf(file, "## Steps\n\n")
	_, _ = fmt.Fprintf(file, "| Step | Calls | Failed | p50 | p95 | p99 |\n")
	_, _ = fmt.Fprintf(file, "|------|-------|--------|-----|-----|-----|\n")
	for _, name := range steps {
		s := stats.Steps[name]
		if s == nil || s.Count == 0 {
			continue
		}
		_, _ = fmt.Fprintf(file, "| %s %s | %d | %d | %s | %s | %s |\n",
			statusEmoji(s.Count-s.Failed, s.Failed), s.Name, s.Count, s.Failed,
			formatDuration(percentile(s.Durations, 50)),
			formatDuration(percentile(s.Durations, 95)),
			formatDuration(percentile(s.Durations, 99)),
		)
	}

	return nil
}
