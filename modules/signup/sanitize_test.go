package signup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/modules/signup"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	got := signup.Sanitize(signup.Values{
		FullName:    "  Jane \t Doe\x00 ",
		Email:       " Jane@Example.COM ",
		Password:    " Password1! ",
		PhoneNumber: " (123) 456-7890",
		BirthDate:   "1990-05-01 ",
		Address:     " 123 Main Street\x07\nSpringfield\n",
	})

	want := signup.Values{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Password:    " Password1! ",
		PhoneNumber: "(123) 456-7890",
		BirthDate:   "1990-05-01",
		Address:     "123 Main Street\nSpringfield",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sanitize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitize_AddressKeepsTypedText(t *testing.T) {
	t.Parallel()

	v := newValidator()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"angle brackets", "123 Main St <Building A>", "123 Main St <Building A>"},
		{"entity text", "1 Main St &lt;x&gt;", "1 Main St &lt;x&gt;"},
		{"tags", " <b>12 Main</b> Street ", "<b>12 Main</b> Street"},
		{"ampersand", "Main St & 5th Ave", "Main St & 5th Ave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := signup.Sanitize(signup.Values{Address: tt.input}).Address
			assert.Equal(t, tt.want, got)
			require.NoError(t, v.Address(got), "length is measured on the typed text")
		})
	}
}
