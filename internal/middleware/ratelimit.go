package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/diewo77/invoice-hub/httpx"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// maxLimiters bounds the per-client map; it is reset when exceeded.
const maxLimiters = 10000

// RateLimiter throttles writes (POST, DELETE) under /api/ per client address.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	log      logrus.FieldLogger
}

func NewRateLimiter(requestsPerSecond float64, burst int, log logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		log:      log,
	}
}

// getLimiter returns a rate limiter for the given key.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxLimiters {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

func limited(r *http.Request) bool {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	return r.Method == http.MethodPost || r.Method == http.MethodDelete
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Handler returns the rate limiting middleware handler.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limited(r) || rl.rate <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		key := clientKey(r)
		if !rl.getLimiter(key).Allow() {
			Entry(rl.log, r).WithFields(logrus.Fields{
				"key":    key,
				"path":   r.URL.Path,
				"method": r.Method,
			}).Warn("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			httpx.Fail(w, http.StatusTooManyRequests, T(r, "rate_limited"), nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
