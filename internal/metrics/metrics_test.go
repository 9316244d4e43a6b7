package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPath(t *testing.T) {
	tests := map[string]string{
		"":                      "/",
		"/":                     "/",
		"/api/invoices":         "/api/invoices",
		"/api/invoices/12":      "/api/invoices/:id",
		"/api/invoices/12/pdf":  "/api/invoices/:id/pdf",
		"/static/js/app.js":     "/static",
		"/api/invoices/abc/pdf": "/api/invoices/abc/pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalPath(in), in)
	}
}

func TestInstrumentHandlerCountsRequests(t *testing.T) {
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	counter := httpRequests.WithLabelValues("GET", "/api/invoices/:id", "404")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/invoices/5", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/invoices/6", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}

func TestRecordInvoiceCreatedAndDeleted(t *testing.T) {
	created := testutil.ToFloat64(invoicesCreated)
	deleted := testutil.ToFloat64(invoicesDeleted)

	RecordInvoiceCreated(1180)
	RecordInvoiceDeleted()

	assert.Equal(t, created+1, testutil.ToFloat64(invoicesCreated))
	assert.Equal(t, deleted+1, testutil.ToFloat64(invoicesDeleted))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordValidationFailure("line.out_of_range")
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "invoice_hub_invoices_created_total"))
	assert.True(t, strings.Contains(body, `invoice_hub_validation_failures_total{code="line.out_of_range"}`))
}
