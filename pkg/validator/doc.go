// Package validator provides small, composable validation rules for form
// input: required strings, length bounds, email and phone formats, password
// composition, and calendar-aware date checks.
//
// Every exported rule constructor returns a Rule, a lazily evaluated Check
// function paired with a ValidationError that carries a translation key and
// the values needed to render a localized message. Rules are evaluated with
// Apply, which collects every failure, or ApplyFirst, which stops at the
// first failure and is the natural fit for one-message-per-field forms.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, e.TranslationKey)
//	    }
//	}
//
// # Time
//
// Date rules take the reference time explicitly instead of calling
// time.Now.
//
// The package holds no global mutable state and is safe for concurrent use.
package validator
