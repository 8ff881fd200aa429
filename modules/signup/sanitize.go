package signup

import "github.com/dmitrymomot/signupform/pkg/sanitizer"

var (
	sanitizeName  = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.NormalizeWhitespace)
	sanitizeText  = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
	sanitizeEmail = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.TrimToLower)
)

// Sanitize normalizes raw input before validation. Runs of whitespace in the
// full name collapse to one space. The password is left untouched because
// every character counts toward its policy. Markup in the address is kept
// as typed; views escape it on output.
func Sanitize(v Values) Values {
	return Values{
		FullName:    sanitizeName(v.FullName),
		Email:       sanitizeEmail(v.Email),
		Password:    v.Password,
		PhoneNumber: sanitizeText(v.PhoneNumber),
		BirthDate:   sanitizeText(v.BirthDate),
		Address:     sanitizeText(v.Address),
	}
}
