package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/sanitizer"
	"github.com/dmitrymomot/signupform/pkg/validator"
)

// CompletionFunc is invoked with the values of a valid submission.
type CompletionFunc func(ctx context.Context, values Values) error

// LogValues returns the default completion action: it logs the submitted
// values with the password redacted.
func LogValues(log *slog.Logger) CompletionFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(ctx context.Context, v Values) error {
		log.InfoContext(ctx, "signup form submitted",
			logger.Form("signup"),
			logger.Event("submitted"),
			slog.Group("values",
				slog.String(FieldFullName, v.FullName),
				slog.String(FieldEmail, v.Email),
				slog.String(FieldPassword, sanitizer.Redact(v.Password)),
				slog.String(FieldPhoneNumber, v.PhoneNumber),
				slog.String(FieldBirthDate, v.BirthDate),
				slog.String(FieldAddress, v.Address),
			),
		)
		return nil
	}
}

// SubmitResult is the outcome of a submit attempt.
type SubmitResult struct {
	// Submitted is true when the form was valid and the completion action ran.
	Submitted bool
	// Errors holds every field error of a rejected submission.
	Errors validator.ValidationErrors
}

// Gate runs the completion action only for a fully valid form.
type Gate struct {
	complete CompletionFunc
	log      *slog.Logger
}

// NewGate returns a Gate. A nil complete defaults to LogValues(log).
func NewGate(complete CompletionFunc, log *slog.Logger) *Gate {
	if log == nil {
		log = logger.NewNop()
	}
	if complete == nil {
		complete = LogValues(log)
	}
	return &Gate{complete: complete, log: log}
}

// Submit marks every field touched and, when the form is valid, runs the
// completion action and resets the state. Errors and panics raised by the
// action are logged and never returned: a valid submission always succeeds.
func (g *Gate) Submit(ctx context.Context, state *FormState) SubmitResult {
	state.TouchAll()
	if !state.Valid() {
		errs := state.Errors()
		g.log.DebugContext(ctx, "signup submit rejected",
			logger.Form("signup"),
			logger.Fields(errs.Fields()...),
		)
		return SubmitResult{Errors: errs}
	}

	start := time.Now()
	if err := g.run(ctx, state.Values()); err != nil {
		g.log.ErrorContext(ctx, "signup completion action failed",
			logger.Form("signup"),
			logger.Error(err),
			logger.Duration(time.Since(start)),
		)
	}

	state.Reset()
	return SubmitResult{Submitted: true}
}

func (g *Gate) run(ctx context.Context, values Values) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCompletionPanic, r)
		}
	}()
	if err := g.complete(ctx, values); err != nil {
		return errors.Join(ErrCompletionFailed, err)
	}
	return nil
}
