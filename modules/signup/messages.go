package signup

import (
	"context"
	"embed"
	"fmt"

	"github.com/dmitrymomot/signupform/pkg/i18n"
	"github.com/dmitrymomot/signupform/pkg/validator"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the embedded locales.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"), opts...)
}

// messages resolves UI strings for one language.
type messages struct {
	tr   *i18n.Translator
	lang string
}

func newMessages(tr *i18n.Translator, lang string) messages {
	return messages{tr: tr, lang: lang}
}

func (m messages) T(key string, args ...string) string {
	return m.tr.T(m.lang, key, args...)
}

func (m messages) fieldText(field, part string) string {
	return m.tr.Td(m.lang, "signup.fields."+field+"."+part, "")
}

// Error translates a validation error. The "field" value is replaced by the
// localized field name used inside sentences.
func (m messages) Error(ve validator.ValidationError) string {
	args := make([]string, 0, len(ve.TranslationValues)*2)
	for k, v := range ve.TranslationValues {
		if k == "field" {
			if name, ok := v.(string); ok {
				args = append(args, k, m.fieldText(name, "name"))
				continue
			}
		}
		args = append(args, k, fmt.Sprint(v))
	}
	if ve.TranslationKey == "" {
		return ve.Message
	}
	return m.tr.Td(m.lang, ve.TranslationKey, ve.Message, args...)
}
