package signup

import (
	"github.com/dmitrymomot/signupform/pkg/validator"
)

// FieldState is the live state of one field.
type FieldState struct {
	Value string
	// Error is the first failing rule, nil when the value is valid.
	Error   *validator.ValidationError
	Touched bool
	Dirty   bool
}

// FormState maps field names to their state. Errors are recomputed for
// every field on each change. A FormState belongs to one request and is not
// safe for concurrent use.
type FormState struct {
	validator *Validator
	fields    map[string]*FieldState
}

// NewFormState returns an empty, untouched form.
func NewFormState(v *Validator) *FormState {
	s := &FormState{validator: v, fields: make(map[string]*FieldState, len(Fields))}
	for _, f := range Fields {
		s.fields[f.Name] = &FieldState{}
	}
	s.recompute()
	return s
}

// RestoreFormState rebuilds the state sent back by the client. Non-empty
// values count as dirty; unknown names in touched are ignored.
func RestoreFormState(v *Validator, values Values, touched map[string]bool) *FormState {
	s := &FormState{validator: v, fields: make(map[string]*FieldState, len(Fields))}
	for _, f := range Fields {
		value, _ := values.Get(f.Name)
		s.fields[f.Name] = &FieldState{
			Value:   value,
			Touched: touched[f.Name],
			Dirty:   value != "",
		}
	}
	s.recompute()
	return s
}

func (s *FormState) recompute() {
	values := s.Values()
	for name, fs := range s.fields {
		fs.Error = nil
		if first, ok := validator.ExtractValidationErrors(s.validator.Field(name, values)).First(name); ok {
			fs.Error = &first
		}
	}
}

// Change sets the value of field, marks it dirty and revalidates the form.
func (s *FormState) Change(field, value string) error {
	fs, ok := s.fields[field]
	if !ok {
		return ErrUnknownField
	}
	if fs.Value != value {
		fs.Value = value
		fs.Dirty = true
	}
	s.recompute()
	return nil
}

// Touch marks field as visited so its error becomes visible.
func (s *FormState) Touch(field string) error {
	fs, ok := s.fields[field]
	if !ok {
		return ErrUnknownField
	}
	fs.Touched = true
	return nil
}

// TouchAll marks every field touched, as a submit attempt does.
func (s *FormState) TouchAll() {
	for _, fs := range s.fields {
		fs.Touched = true
	}
}

// Field returns a copy of the state of name.
func (s *FormState) Field(name string) (FieldState, bool) {
	fs, ok := s.fields[name]
	if !ok {
		return FieldState{}, false
	}
	return *fs, true
}

// VisibleError returns the error of name only when the field is touched.
func (s *FormState) VisibleError(name string) (validator.ValidationError, bool) {
	fs, ok := s.fields[name]
	if !ok || !fs.Touched || fs.Error == nil {
		return validator.ValidationError{}, false
	}
	return *fs.Error, true
}

func (s *FormState) Values() Values {
	var v Values
	for name, fs := range s.fields {
		v.Set(name, fs.Value)
	}
	return v
}

// Touched returns the touched flag of every field.
func (s *FormState) Touched() map[string]bool {
	touched := make(map[string]bool, len(s.fields))
	for name, fs := range s.fields {
		touched[name] = fs.Touched
	}
	return touched
}

// Errors returns the current errors of all fields in display order,
// regardless of touched flags.
func (s *FormState) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range Fields {
		if fs := s.fields[f.Name]; fs.Error != nil {
			errs.Add(*fs.Error)
		}
	}
	return errs
}

// Valid reports whether every field passes its validator.
func (s *FormState) Valid() bool {
	for _, fs := range s.fields {
		if fs.Error != nil {
			return false
		}
	}
	return true
}

// Reset clears values and flags, as after a successful submit.
func (s *FormState) Reset() {
	for _, fs := range s.fields {
		*fs = FieldState{}
	}
	s.recompute()
}
