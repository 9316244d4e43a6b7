package middleware

import (
	"context"
	"net/http"

	"github.com/diewo77/invoice-hub/i18n"
)

type ctxKey string

const (
	ctxLang      ctxKey = "pref_lang"
	ctxRequestID ctxKey = "request_id"
)

// Prefs resolves the response language (query > cookie > Accept-Language) and
// stores it in the request context. A query-provided language is persisted in
// a cookie for ~30 days.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			lang = c.Value
		}
		if ql := r.URL.Query().Get("lang"); ql != "" && i18n.Supported(ql) {
			lang = ql
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30})
		}
		if !i18n.Supported(lang) {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}
		ctx := context.WithValue(r.Context(), ctxLang, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LangFrom returns language preference from context or fallback.
func LangFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxLang).(string); ok && v != "" {
		return v
	}
	return i18n.DefaultLang
}

// T translates code in the request's language.
func T(r *http.Request, code string) string {
	return i18n.T(LangFrom(r), code)
}
