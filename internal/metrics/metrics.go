package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login attempt results
const (
	LoginSuccess   = "success"
	LoginFailure   = "failure"
	LoginThrottled = "throttled"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint", "status"},
	)
	quotesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Total number of quote requests created, by broadcast outcome.",
		},
		[]string{"broadcast_status"},
	)
	offersSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "offers_submitted_total",
			Help: "Total number of seller offers submitted, re-bids included.",
		},
	)
	loginAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts, by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(quotesCreatedTotal)
	prometheus.MustRegister(offersSubmittedTotal)
	prometheus.MustRegister(loginAttemptsTotal)
}

// RecordRequest records the metrics of one HTTP request
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordQuoteCreated counts a created quote. Bound quotes have no broadcast status.
func RecordQuoteCreated(broadcastStatus string) {
	if broadcastStatus == "" {
		broadcastStatus = "DIRECT"
	}
	quotesCreatedTotal.WithLabelValues(broadcastStatus).Inc()
}

// RecordOfferSubmitted counts a submitted offer
func RecordOfferSubmitted() {
	offersSubmittedTotal.Inc()
}

// RecordLoginAttempt counts a login attempt
func RecordLoginAttempt(result string) {
	loginAttemptsTotal.WithLabelValues(result).Inc()
}

// classifyStatus buckets an HTTP status code
func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// Handler returns the HTTP handler exposing the Prometheus metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
