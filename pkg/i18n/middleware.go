package i18n

import (
	"net/http"
	"strings"
	"time"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	fallback     string
	cookieName   string
	queryParam   string
	cookieMaxAge time.Duration
}

// WithFallbackLanguage sets the locale used when the extractor finds none.
// Pass the translator's default so both agree.
func WithFallbackLanguage(lang string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if lang != "" {
			c.fallback = strings.ToLower(lang)
		}
	}
}

// WithLanguageCookie stores a language picked through queryParam in the
// cookieName cookie, so later requests without the parameter keep it. The
// extractor must read the same cookie.
func WithLanguageCookie(cookieName, queryParam string, maxAge time.Duration) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.cookieName = cookieName
		c.queryParam = queryParam
		c.cookieMaxAge = maxAge
	}
}

// Middleware stores the negotiated language in the request context and sets
// the Content-Language response header. A nil extractor uses
// DefaultLangExtractor; an empty result falls back to DefaultLanguage unless
// WithFallbackLanguage says otherwise.
func Middleware(extr LangExtractor, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	cfg := &middlewareConfig{fallback: DefaultLanguage}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = cfg.fallback
			}
			if cfg.requested(r, lang) {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.cookieName,
					Value:    lang,
					Path:     "/",
					MaxAge:   int(cfg.cookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// requested reports whether lang came from the query parameter and differs
// from the stored cookie.
func (c *middlewareConfig) requested(r *http.Request, lang string) bool {
	if c.cookieName == "" || c.queryParam == "" {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(c.queryParam)))
	if query == "" {
		return false
	}
	if base, _, _ := strings.Cut(query, "-"); query != lang && base != lang {
		return false
	}
	if cookie, err := r.Cookie(c.cookieName); err == nil && cookie.Value == lang {
		return false
	}
	return true
}
