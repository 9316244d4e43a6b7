package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diewo77/invoice-hub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func langEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(LangFrom(r)))
	})
}

func TestPrefsLanguageResolution(t *testing.T) {
	h := Prefs(langEcho())

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{"default", "/", "", "", "en"},
		{"accept-language", "/", "", "fr-FR,fr;q=0.9", "fr"},
		{"cookie beats header", "/", "en", "fr-FR", "en"},
		{"query beats cookie", "/?lang=fr", "en", "", "fr"},
		{"unsupported query ignored", "/?lang=de", "", "fr", "fr"},
		{"unsupported cookie ignored", "/", "xx", "", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Body.String())
		})
	}
}

func TestPrefsPersistsQueryLanguage(t *testing.T) {
	rr := httptest.NewRecorder()
	Prefs(langEcho()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "lang", cookies[0].Name)
	assert.Equal(t, "fr", cookies[0].Value)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithOutput(&buf, "info", "json")
	var seen string
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/clients", nil))
	id := rr.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seen)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
	assert.EqualValues(t, 201, entry["status"])
	assert.Equal(t, "/api/clients", entry["path"])
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	h := RequestLogger(logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestRecoverWritesJSON500(t *testing.T) {
	h := Recover(logging.Discard())(Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Server error", body["message"])
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set("Origin", "http://spa.test")
		rr := httptest.NewRecorder()
		CORS([]string{"*"})(next).ServeHTTP(rr, req)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/invoices", nil)
		req.Header.Set("Origin", "http://spa.test")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rr := httptest.NewRecorder()
		CORS([]string{"http://spa.test"})(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "http://spa.test", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("origin not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set("Origin", "http://evil.test")
		rr := httptest.NewRecorder()
		CORS([]string{"http://spa.test"})(next).ServeHTTP(rr, req)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("outside api", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
		req.Header.Set("Origin", "http://spa.test")
		rr := httptest.NewRecorder()
		CORS([]string{"*"})(next).ServeHTTP(rr, req)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, logging.Discard())
	h := Prefs(rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	post := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/clients", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	assert.Equal(t, http.StatusCreated, post("10.0.0.1:1000"))
	assert.Equal(t, http.StatusCreated, post("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:1002"))
	assert.Equal(t, http.StatusCreated, post("10.0.0.2:1000"), "buckets are per client")

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.RemoteAddr = "10.0.0.1:1000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code, "reads are not limited")
	}
}
