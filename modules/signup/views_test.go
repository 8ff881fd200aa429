package signup_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/handler"
	"github.com/dmitrymomot/signupform/modules/signup"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestFieldGroupView(t *testing.T) {
	t.Parallel()

	p := signup.FieldParams{
		Name:        signup.FieldPhoneNumber,
		InputType:   signup.InputTel,
		Label:       "Phone number",
		Value:       `(123) "456"`,
		ValidateURL: "/signup/validate",
		Debounce:    "300ms",
	}

	valid := render(t, signup.FieldGroupView(p, signup.FeedbackView))
	assert.Contains(t, valid, `id="field-phoneNumber"`)
	assert.Contains(t, valid, `value="(123) &#34;456&#34;"`)
	assert.Contains(t, valid, `aria-invalid="false"`)
	assert.Contains(t, valid, `data-on:blur="$touched.phoneNumber = true; @post(&#39;/signup/validate&#39;)"`)
	assert.Contains(t, valid, `data-on:input__debounce.300ms=`)
	assert.NotContains(t, valid, `class="form-control is-invalid"`)

	p.Error = "The phone number must match the format (###) ###-####"
	invalid := render(t, signup.FieldGroupView(p, signup.FeedbackView))
	assert.Contains(t, invalid, `class="form-control is-invalid"`)
	assert.Contains(t, invalid, `aria-invalid="true"`)
	assert.Contains(t, invalid, `<div id="phoneNumber-error" class="invalid-feedback" aria-live="polite">The phone number must match`)
}

func TestFieldGroupView_Textarea(t *testing.T) {
	t.Parallel()

	out := render(t, signup.FieldGroupView(signup.FieldParams{
		Name:      signup.FieldAddress,
		InputType: signup.InputTextarea,
		Value:     "<b>12 Main</b>",
		Debounce:  "300ms",
	}, signup.FeedbackView))

	assert.Contains(t, out, `<textarea id="address"`)
	assert.Contains(t, out, `>&lt;b&gt;12 Main&lt;/b&gt;</textarea>`)
	assert.NotContains(t, out, `type="textarea"`)
}

func TestViews_Overrides(t *testing.T) {
	t.Parallel()

	notice := func(p signup.NoticeParams) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<aside>"+p.Message+"</aside>")
			return err
		})
	}

	tr, err := signup.NewTranslator(context.Background())
	require.NoError(t, err)
	svc, err := signup.NewService(signup.Config{}, tr,
		signup.WithViews(signup.Views{Notice: notice}),
		signup.WithScriptURL(""),
	)
	require.NoError(t, err)

	rec := postForm(svc.Handle(), "/", formBody(validValues()))
	body := rec.Body.String()
	assert.Contains(t, body, "<aside>Thanks for signing up!")
	assert.NotContains(t, body, "<script")
	assert.Contains(t, body, `id="signup-form"`, "unset views fall back to defaults")
}

func TestPageView_LanguageLinks(t *testing.T) {
	t.Parallel()

	v := signup.DefaultViews()
	out := render(t, v.Page(signup.PageParams{
		Lang:      "es",
		Title:     "Registro",
		Languages: []string{"en", "es"},
		Form:      signup.FormParams{Action: "/signup"},
	}))

	assert.Contains(t, out, `<html lang="es">`)
	assert.Contains(t, out, `<a href="?lang=en">EN</a>`)
	assert.Contains(t, out, `<a href="?lang=es" aria-current="true">ES</a>`)
	assert.Contains(t, out, `action="/signup"`)
	assert.Contains(t, out, `data-on:submit__prevent="@post(&#39;/signup&#39;)"`)
}

func TestErrorToastView(t *testing.T) {
	t.Parallel()

	out := render(t, signup.ErrorToastView(handler.ErrorToastParams{
		Type:      "error",
		Message:   "<oops>",
		RequestID: "req-1",
	}))
	assert.Equal(t, `<div class="toast toast-error" role="alert" data-request-id="req-1">&lt;oops&gt;</div>`, out)
}
