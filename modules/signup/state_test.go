package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/modules/signup"
)

func TestNewFormState(t *testing.T) {
	t.Parallel()
	s := signup.NewFormState(newValidator())

	assert.False(t, s.Valid())
	for _, name := range signup.FieldNames() {
		fs, ok := s.Field(name)
		require.True(t, ok)
		assert.Empty(t, fs.Value)
		assert.False(t, fs.Touched)
		assert.False(t, fs.Dirty)
		assert.NotNil(t, fs.Error, "empty %s must be invalid", name)

		_, visible := s.VisibleError(name)
		assert.False(t, visible, "untouched %s must hide its error", name)
	}
}

func TestFormState_ChangeAndTouch(t *testing.T) {
	t.Parallel()
	s := signup.NewFormState(newValidator())

	require.NoError(t, s.Change(signup.FieldEmail, "not-an-email"))
	fs, _ := s.Field(signup.FieldEmail)
	assert.True(t, fs.Dirty)
	require.NotNil(t, fs.Error)
	assert.Equal(t, "validation.email", fs.Error.TranslationKey)

	_, visible := s.VisibleError(signup.FieldEmail)
	assert.False(t, visible)

	require.NoError(t, s.Touch(signup.FieldEmail))
	ve, visible := s.VisibleError(signup.FieldEmail)
	assert.True(t, visible)
	assert.Equal(t, signup.FieldEmail, ve.Field)

	require.NoError(t, s.Change(signup.FieldEmail, "jane@example.com"))
	_, visible = s.VisibleError(signup.FieldEmail)
	assert.False(t, visible, "fixed value clears the error")

	assert.ErrorIs(t, s.Change("nickname", "x"), signup.ErrUnknownField)
	assert.ErrorIs(t, s.Touch("nickname"), signup.ErrUnknownField)
}

func TestRestoreFormState(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.FullName = ""
	values.PhoneNumber = "1234567890"
	s := signup.RestoreFormState(newValidator(), values, map[string]bool{
		signup.FieldPhoneNumber: true,
		"unknown":               true,
	})

	assert.False(t, s.Valid())
	assert.Equal(t, values, s.Values())

	_, visible := s.VisibleError(signup.FieldFullName)
	assert.False(t, visible, "untouched fullName")
	_, visible = s.VisibleError(signup.FieldPhoneNumber)
	assert.True(t, visible)

	fullName, _ := s.Field(signup.FieldFullName)
	assert.False(t, fullName.Dirty)
	email, _ := s.Field(signup.FieldEmail)
	assert.True(t, email.Dirty)

	touched := s.Touched()
	assert.Len(t, touched, len(signup.Fields))
	assert.True(t, touched[signup.FieldPhoneNumber])
	assert.NotContains(t, touched, "unknown")
}

func TestFormState_ErrorsInDisplayOrder(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.Address = "short"
	values.FullName = ""
	s := signup.RestoreFormState(newValidator(), values, nil)

	errs := s.Errors()
	assert.Equal(t, []string{signup.FieldFullName, signup.FieldAddress}, errs.Fields())
}

func TestFormState_TouchAllAndReset(t *testing.T) {
	t.Parallel()
	s := signup.RestoreFormState(newValidator(), validValues(), nil)
	require.True(t, s.Valid())

	s.TouchAll()
	for _, touched := range s.Touched() {
		assert.True(t, touched)
	}

	s.Reset()
	assert.Equal(t, signup.Values{}, s.Values())
	for _, touched := range s.Touched() {
		assert.False(t, touched)
	}
	assert.False(t, s.Valid())
}
