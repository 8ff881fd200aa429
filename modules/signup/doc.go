// Package signup serves a six-field registration form with live validation.
//
// The form collects a full name, email, password, phone number, birth date
// and address. Each field has one validator built from pkg/validator rules
// that stops at the first failing rule. FormState tracks value, error,
// touched and dirty flags per field; errors are shown only for touched
// fields until a submit attempt marks every field touched. A valid submit
// runs the completion action (logging the values by default) and always
// renders the success notice, even if the action fails or panics.
//
// Service.Handle mounts three routes:
//
//	GET  /          page with an empty form
//	POST /validate  datastar: patch field errors for the current signals
//	POST /          submit, via datastar signals or a plain form post
//
// Messages are resolved through an i18n.Translator; NewTranslator loads the
// embedded en and es locales.
package signup
