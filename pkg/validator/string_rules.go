package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLen and MaxLen count runes, so "Ñuñoa" has length 5.
func MinLen(field, value string, minLen int) Rule {
	return lengthRule(field, "min", minLen, func() bool {
		return utf8.RuneCountInString(value) >= minLen
	})
}

func MaxLen(field, value string, maxLen int) Rule {
	return lengthRule(field, "max", maxLen, func() bool {
		return utf8.RuneCountInString(value) <= maxLen
	})
}

func lengthRule(field, bound string, limit int, check func() bool) Rule {
	qualifier := "least"
	if bound == "max" {
		qualifier = "most"
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at %s %d characters long", qualifier, limit),
			TranslationKey: "validation." + bound + "_length",
			TranslationValues: map[string]any{
				"field": field,
				bound:   limit,
			},
		},
	}
}
