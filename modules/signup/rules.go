package signup

import (
	"time"

	"github.com/dmitrymomot/signupform/pkg/validator"
)

// Validator holds the per-field validators. Each returns nil or
// validator.ValidationErrors with the first failing rule of that field.
type Validator struct {
	now        func() time.Time
	minAge     int
	addressMin int
	addressMax int
	password   validator.PasswordPolicy
}

// ValidatorOption configures NewValidator.
type ValidatorOption func(*Validator)

// WithClock sets the source of "today" for birth date checks.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithMinAge sets the minimum age in whole years. Non-positive values keep
// DefaultMinAge.
func WithMinAge(years int) ValidatorOption {
	return func(v *Validator) {
		if years > 0 {
			v.minAge = years
		}
	}
}

// WithAddressLength sets the inclusive rune length bounds of the address.
func WithAddressLength(minLen, maxLen int) ValidatorOption {
	return func(v *Validator) {
		if minLen > 0 && maxLen >= minLen {
			v.addressMin, v.addressMax = minLen, maxLen
		}
	}
}

// NewValidator returns a Validator with the default rules: adults only, an
// address of DefaultAddressMin to DefaultAddressMax runes and the default
// password policy.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		now:        time.Now,
		minAge:     DefaultMinAge,
		addressMin: DefaultAddressMin,
		addressMax: DefaultAddressMax,
		password:   validator.DefaultPasswordPolicy(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// FullName requires a non-blank value.
func (v *Validator) FullName(value string) error {
	return validator.ApplyFirst(
		validator.Required(FieldFullName, value),
	)
}

// Email requires a well-formed address.
func (v *Validator) Email(value string) error {
	return validator.ApplyFirst(
		validator.Required(FieldEmail, value),
		validator.ValidEmail(FieldEmail, value),
	)
}

// Password requires the minimum length, then one lowercase letter, one
// uppercase letter, one digit and one of @$!%*?&.
func (v *Validator) Password(value string) error {
	return validator.ApplyFirst(
		validator.Required(FieldPassword, value),
		validator.PasswordLength(FieldPassword, value, v.password),
		validator.PasswordComposition(FieldPassword, value, v.password),
	)
}

// PhoneNumber requires the (###) ###-#### layout.
func (v *Validator) PhoneNumber(value string) error {
	return validator.ApplyFirst(
		validator.Required(FieldPhoneNumber, value),
		validator.ValidUSPhone(FieldPhoneNumber, value),
	)
}

// BirthDate checks presence, the YYYY-MM-DD layout, that the date is not
// after today and that the calendar age is at least the minimum age.
func (v *Validator) BirthDate(value string) error {
	now := v.now()
	// A parse failure leaves birth zero; ValidDate stops the chain before it is used.
	birth, _ := validator.ParseDate(value, now)
	return validator.ApplyFirst(
		validator.Required(FieldBirthDate, value),
		validator.ValidDate(FieldBirthDate, value),
		validator.NotFutureDate(FieldBirthDate, birth, now),
		validator.MinAge(FieldBirthDate, birth, v.minAge, now),
	)
}

// Address checks the rune length bounds. An empty address fails the lower
// bound.
func (v *Validator) Address(value string) error {
	return validator.ApplyFirst(
		validator.MinLen(FieldAddress, value, v.addressMin),
		validator.MaxLen(FieldAddress, value, v.addressMax),
	)
}

// Field validates a single field of values.
func (v *Validator) Field(name string, values Values) error {
	value, ok := values.Get(name)
	if !ok {
		return ErrUnknownField
	}

	switch name {
	case FieldFullName:
		return v.FullName(value)
	case FieldEmail:
		return v.Email(value)
	case FieldPassword:
		return v.Password(value)
	case FieldPhoneNumber:
		return v.PhoneNumber(value)
	case FieldBirthDate:
		return v.BirthDate(value)
	default:
		return v.Address(value)
	}
}

// Validate runs every field validator and returns the merged
// validator.ValidationErrors in field order, or nil when all pass.
func (v *Validator) Validate(values Values) error {
	var errs validator.ValidationErrors
	for _, f := range Fields {
		errs.Merge(v.Field(f.Name, values))
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
