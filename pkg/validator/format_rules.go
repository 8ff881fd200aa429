package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// usPhoneRegex accepts exactly "(###) ###-####".
var usPhoneRegex = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

// USPhoneFormat is the human-readable shape accepted by ValidUSPhone.
const USPhoneFormat = "(###) ###-####"

// ValidEmail validates that a string is a bare RFC 5322 address with a dotted domain.
// Display-name forms such as "Jane <jane@example.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" || strings.Contains(domain, "@") {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUSPhone validates the literal North American display format "(###) ###-####".
func ValidUSPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return usPhoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match the format " + USPhoneFormat,
			TranslationKey: "validation.phone_format",
			TranslationValues: map[string]any{
				"field":  field,
				"format": USPhoneFormat,
			},
		},
	}
}
