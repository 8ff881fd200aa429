package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header size that gets parsed.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader returns tags ordered by descending quality.
// Malformed q values count as 1.0.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, _ := strings.Cut(part, ";")
		lang := strings.ToLower(strings.TrimSpace(tag))
		if lang == "" {
			continue
		}

		q := 1.0
		if qPart, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(qPart, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the best supported language from an
// Accept-Language header: exact tags first, then base languages ("es-MX" -> "es").
// Returns defaultLang when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	languages := parseAcceptLanguageHeader(header)
	for _, lq := range languages {
		if lq.q > 0 && slices.Contains(supported, lq.lang) {
			return lq.lang
		}
	}
	for _, lq := range languages {
		if base, _, ok := strings.Cut(lq.lang, "-"); ok && lq.q > 0 && slices.Contains(supported, base) {
			return base
		}
	}
	return defaultLang
}
