package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultPasswordSymbols is the symbol set accepted by DefaultPasswordPolicy.
const DefaultPasswordSymbols = "@$!%*?&"

// PasswordPolicy describes the composition a password must satisfy.
type PasswordPolicy struct {
	MinLength int
	// Symbols lists the special characters that satisfy the symbol requirement.
	Symbols string
	// Strict rejects any character that is not an ASCII letter, digit or one of Symbols.
	Strict bool
}

// DefaultPasswordPolicy requires 8+ characters drawn from letters, digits and @$!%*?&,
// with at least one of each class.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 8,
		Symbols:   DefaultPasswordSymbols,
		Strict:    true,
	}
}

// PasswordLength checks only the minimum length of the policy.
func PasswordLength(field, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			return len([]rune(value)) >= policy.MinLength
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", policy.MinLength),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   policy.MinLength,
			},
		},
	}
}

// PasswordComposition checks character classes: one lowercase, one uppercase,
// one digit and one symbol from the policy set.
func PasswordComposition(field, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			var lower, upper, digit, symbol bool
			for _, r := range value {
				switch {
				case r >= 'a' && r <= 'z':
					lower = true
				case r >= 'A' && r <= 'Z':
					upper = true
				case r >= '0' && r <= '9':
					digit = true
				case strings.ContainsRune(policy.Symbols, r):
					symbol = true
				default:
					if policy.Strict || unicode.IsControl(r) {
						return false
					}
				}
			}
			return lower && upper && digit && symbol
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain an uppercase letter, a lowercase letter, a number and one of %s", policy.Symbols),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":   field,
				"symbols": policy.Symbols,
			},
		},
	}
}
