// Package sanitizer provides composable string transformations applied to
// user input before validation.
//
// Transformations are plain func(string) string values, so pipelines are
// built with Apply or stored with Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	email := clean(form.Email)
//
// Transformations never remove text the user typed beyond whitespace and
// control characters. Output escaping is the renderer's job.
package sanitizer
