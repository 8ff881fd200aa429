package sanitizer

import "strings"

// MaskString keeps visibleChars runes at each end and replaces the middle
// with asterisks. Strings too short to show both ends are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}

	runes := []rune(s)
	length := len(runes)
	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	return string(runes[:visibleChars]) +
		strings.Repeat("*", length-visibleChars*2) +
		string(runes[length-visibleChars:])
}

// Redact hides s entirely behind a fixed-width mask so its length is not leaked.
func Redact(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
