package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/pkg/validator"
)

func TestDefaultPasswordPolicy(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	assert.Equal(t, 8, policy.MinLength)
	assert.Equal(t, "@$!%*?&", policy.Symbols)
	assert.True(t, policy.Strict)
}

func TestPasswordLength(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	assert.Error(t, validator.Apply(validator.PasswordLength("password", "Pa1!", policy)))
	assert.NoError(t, validator.Apply(validator.PasswordLength("password", "Pa1!Pa1!", policy)))
}

func TestPasswordComposition(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "all classes", password: "Password1!", wantErr: false},
		{name: "every allowed symbol", password: "Aa1@$!%*?&", wantErr: false},
		{name: "missing symbol", password: "Password1", wantErr: true},
		{name: "missing digit", password: "Password!", wantErr: true},
		{name: "missing uppercase", password: "password1!", wantErr: true},
		{name: "missing lowercase", password: "PASSWORD1!", wantErr: true},
		{name: "symbol outside set", password: "Password1#", wantErr: true},
		{name: "allowed plus disallowed char", password: "Password1! ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.PasswordComposition("password", tt.password, policy))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verr := validator.ExtractValidationErrors(err)[0]
			assert.Equal(t, "validation.password_strength", verr.TranslationKey)
			assert.Equal(t, "@$!%*?&", verr.TranslationValues["symbols"])
		})
	}

	t.Run("lenient policy accepts other characters", func(t *testing.T) {
		lenient := policy
		lenient.Strict = false
		assert.NoError(t, validator.Apply(validator.PasswordComposition("password", "Pass word1!", lenient)))
	})
}
