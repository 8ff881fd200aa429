// Package i18n translates message keys into the request's language.
//
// Translations are nested YAML maps keyed by language code at the root:
//
//	en:
//	  validation:
//	    required: "The %{field} is a required field"
//
// Keys are addressed with dots ("validation.required") and placeholders use
// the named %{param} form. A Translator is loaded once through a
// TranslationAdapter (MapAdapter for tests, FSAdapter for embedded locale
// files) and is safe for concurrent use.
//
// Middleware negotiates the language per request (query parameter, cookie,
// Language header, Accept-Language) and stores it in the context, where Tc
// and GetLocale pick it up. With WithLanguageCookie a language chosen through
// the query parameter is remembered in the cookie.
package i18n
