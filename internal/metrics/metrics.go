package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "invoice_hub",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoice_hub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "invoice_hub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	invoicesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "invoice_hub",
			Subsystem: "invoices",
			Name:      "created_total",
			Help:      "Total number of invoices created.",
		},
	)

	invoicesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "invoice_hub",
			Subsystem: "invoices",
			Name:      "deleted_total",
			Help:      "Total number of invoice delete requests served.",
		},
	)

	invoiceGrandTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "invoice_hub",
			Subsystem: "invoices",
			Name:      "grand_total",
			Help:      "Grand total of created invoices.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 10), // 10 to ~2.6M
		},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoice_hub",
			Subsystem: "validation",
			Name:      "failures_total",
			Help:      "Rejected payloads by message code.",
		},
		[]string{"code"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		invoicesCreated,
		invoicesDeleted,
		invoiceGrandTotal,
		validationFailures,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := CanonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordInvoiceCreated counts a created invoice and observes its grand total.
func RecordInvoiceCreated(grandTotal float64) {
	invoicesCreated.Inc()
	invoiceGrandTotal.Observe(grandTotal)
}

func RecordInvoiceDeleted() {
	invoicesDeleted.Inc()
}

// RecordValidationFailure counts a rejected payload by its message code.
func RecordValidationFailure(code string) {
	if code == "" {
		code = "unknown"
	}
	validationFailures.WithLabelValues(code).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// CanonicalPath collapses ids so label cardinality stays bounded:
// /api/invoices/12/pdf becomes /api/invoices/:id/pdf.
func CanonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if parts[0] == "static" {
		return "/static"
	}
	for i, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 64); err == nil {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
