// Package i18n negotiates the response language. The engine ships content in
// English and Odia; everything else falls back or is rejected.
package i18n

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	dErrors "kisan/pkg/domain-errors"
	"kisan/pkg/platform/httputil"
	"kisan/pkg/requestcontext"
)

// Lang is a supported content language tag.
type Lang string

const (
	English Lang = "en"
	Odia    Lang = "or"
)

// Supported lists languages in matcher preference order; English is the
// matcher default.
var Supported = []Lang{English, Odia}

var matcher = language.NewMatcher([]language.Tag{language.English, language.MustParse("or")})

// Parse maps a BCP 47 tag such as "en-IN" or "or-IN" onto a supported Lang.
func Parse(tag string) (Lang, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", dErrors.New(dErrors.CodeUnsupportedLang, fmt.Sprintf("invalid language tag %q", tag))
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return "", dErrors.New(dErrors.CodeUnsupportedLang, fmt.Sprintf("language %q is not supported; use en or or", tag))
	}
	return Supported[idx], nil
}

// Negotiate picks the language from an explicit query value, then the
// Accept-Language header, then fallback. Only an explicit query value can fail.
func Negotiate(query, acceptLanguage string, fallback Lang) (Lang, error) {
	if query != "" {
		return Parse(query)
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if _, idx, conf := matcher.Match(tags...); conf != language.No {
				return Supported[idx], nil
			}
		}
	}
	return fallback, nil
}

// Middleware stores the negotiated language in the request context.
func Middleware(fallback Lang) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, err := Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), fallback)
			if err != nil {
				httputil.WriteError(w, err)
				return
			}
			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(requestcontext.WithLang(r.Context(), string(lang))))
		})
	}
}

// FromContext returns the negotiated language or fallback.
func FromContext(r *http.Request, fallback Lang) Lang {
	if l := requestcontext.Lang(r.Context()); l != "" {
		return Lang(l)
	}
	return fallback
}
