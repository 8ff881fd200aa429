package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of HTML date inputs.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in the location of ref.
func ParseDate(value string, ref time.Time) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), ref.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// ValidDate validates that value parses with DateLayout.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse(DateLayout, strings.TrimSpace(value))
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date",
			TranslationKey: "validation.date_invalid",
			TranslationValues: map[string]any{
				"field":  field,
				"layout": DateLayout,
			},
		},
	}
}

// NotFutureDate validates that the calendar day of value is not after the calendar day of now.
func NotFutureDate(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !startOfDay(value).After(startOfDay(now))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date must not be in the future",
			TranslationKey: "validation.date_not_future",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Age returns full years elapsed between birthdate and now, subtracting one
// when the birthday has not yet occurred in now's year.
func Age(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}

// MinAge validates minimum age in full calendar years as of now.
func MinAge(field string, birthdate time.Time, minAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return Age(birthdate, now) >= minAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("minimum age of %d years required", minAge),
			TranslationKey: "validation.min_age",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
		},
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
