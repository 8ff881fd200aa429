package signup_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/modules/signup"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestGate_SubmitInvalid(t *testing.T) {
	t.Parallel()

	called := false
	gate := signup.NewGate(func(context.Context, signup.Values) error {
		called = true
		return nil
	}, nil)

	values := validValues()
	values.Email = "not-an-email"
	state := signup.RestoreFormState(newValidator(), values, nil)

	result := gate.Submit(context.Background(), state)
	assert.False(t, result.Submitted)
	assert.False(t, called)
	assert.Equal(t, []string{signup.FieldEmail}, result.Errors.Fields())

	for _, name := range signup.FieldNames() {
		fs, _ := state.Field(name)
		assert.True(t, fs.Touched, "%s must be touched after a submit attempt", name)
	}
	_, visible := state.VisibleError(signup.FieldEmail)
	assert.True(t, visible)
	assert.Equal(t, values, state.Values(), "rejected submit keeps values")
}

func TestGate_SubmitValid(t *testing.T) {
	t.Parallel()

	var got signup.Values
	gate := signup.NewGate(func(_ context.Context, v signup.Values) error {
		got = v
		return nil
	}, nil)

	state := signup.RestoreFormState(newValidator(), validValues(), nil)
	result := gate.Submit(context.Background(), state)

	assert.True(t, result.Submitted)
	assert.Empty(t, result.Errors)
	assert.Equal(t, validValues(), got)
	assert.Equal(t, signup.Values{}, state.Values(), "state is reset")
}

func TestGate_CompletionFailureIsSuppressed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		complete signup.CompletionFunc
		wantErr  error
	}{
		{
			name:     "error",
			complete: func(context.Context, signup.Values) error { return errors.New("mailbox full") },
			wantErr:  signup.ErrCompletionFailed,
		},
		{
			name:     "panic",
			complete: func(context.Context, signup.Values) error { panic("boom") },
			wantErr:  signup.ErrCompletionPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log, buf := bufferLogger()
			gate := signup.NewGate(tt.complete, log)

			var result signup.SubmitResult
			require.NotPanics(t, func() {
				result = gate.Submit(context.Background(), signup.RestoreFormState(newValidator(), validValues(), nil))
			})
			assert.True(t, result.Submitted)
			assert.Contains(t, buf.String(), "signup completion action failed")
			assert.Contains(t, buf.String(), tt.wantErr.Error())
		})
	}
}

func TestLogValues_RedactsPassword(t *testing.T) {
	t.Parallel()
	log, buf := bufferLogger()

	require.NoError(t, signup.LogValues(log)(context.Background(), validValues()))

	out := buf.String()
	assert.Contains(t, out, "signup form submitted")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "(123) 456-7890")
	assert.NotContains(t, out, "Password1!")
	assert.Contains(t, out, "********")
}
