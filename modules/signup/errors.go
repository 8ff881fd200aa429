package signup

import "errors"

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrCompletionPanic  = errors.New("completion action panicked")
	ErrCompletionFailed = errors.New("completion action failed")
	ErrNilTranslator    = errors.New("translator is required")
)
