package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor returns the language code for a request, or "" when undetermined.
type LangExtractor func(r *http.Request) string

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

type extractorConfig struct {
	cookieName     string
	queryParamName string
	supportedLangs []string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

// WithCookieName changes the cookie read by the extractor.
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithQueryParamName changes the query parameter read by the extractor.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.queryParamName = name
		}
	}
}

// WithSupportedLanguages restricts detected languages to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *extractorConfig) {
		if len(langs) == 0 {
			return
		}
		c.supportedLangs = make([]string, len(langs))
		for i, l := range langs {
			c.supportedLangs[i] = strings.ToLower(l)
		}
	}
}

// normalize lowercases lang and checks it against the supported list,
// falling back to the base language of a regional tag.
func (c *extractorConfig) normalize(lang string) string {
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if len(c.supportedLangs) == 0 || slices.Contains(c.supportedLangs, lang) {
		return lang
	}
	if base, _, ok := strings.Cut(lang, "-"); ok && slices.Contains(c.supportedLangs, base) {
		return base
	}
	return ""
}

// DefaultLangExtractor checks, in order: the "lang" query parameter, the
// "lang" cookie, the Language header and the Accept-Language header. An
// explicit query choice overrides the one stored in the cookie.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{cookieName: "lang", queryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if lang := cfg.normalize(r.URL.Query().Get(cfg.queryParamName)); lang != "" {
			return lang
		}

		if cookie, err := r.Cookie(cfg.cookieName); err == nil {
			if lang := cfg.normalize(cookie.Value); lang != "" {
				return lang
			}
		}

		if lang := cfg.normalize(r.Header.Get("Language")); lang != "" {
			return lang
		}

		acceptLang := r.Header.Get("Accept-Language")
		if acceptLang == "" {
			return ""
		}
		if len(cfg.supportedLangs) > 0 {
			return ParseAcceptLanguage(acceptLang, cfg.supportedLangs, "")
		}
		if langs := parseAcceptLanguageHeader(acceptLang); len(langs) > 0 {
			return langs[0].lang
		}
		return ""
	}
}
