package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/diewo77/invoice-hub/httpx"
	"github.com/sirupsen/logrus"
)

// Recover turns a panic into a JSON 500 and logs the stack.
func Recover(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					Entry(log, r).WithFields(logrus.Fields{
						"panic": rec,
						"stack": string(debug.Stack()),
					}).Error("panic while serving request")
					httpx.Fail(w, http.StatusInternalServerError, T(r, "server_error"), nil)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
