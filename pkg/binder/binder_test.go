package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/pkg/binder"
)

type contact struct {
	Name  string `form:"name" json:"name"`
	Email string `form:"email" json:"email"`
}

type request struct {
	contact
	Age     int             `form:"age" json:"age"`
	Tags    []string        `form:"tag" json:"tags"`
	Agree   bool            `form:"agree" json:"agree"`
	Nick    *string         `form:"nick" json:"nick"`
	Touched map[string]bool `form:"-" json:"touched"`
	Plain   string
}

type Embedded struct {
	Street string `form:"street"`
}

type withExportedEmbed struct {
	Embedded
	City string `form:"city"`
}

func formRequest(method string, values url.Values) *http.Request {
	r := httptest.NewRequest(method, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, url.Values{
			"age":   {"42"},
			"tag":   {"a", "b"},
			"agree": {"on"},
			"nick":  {"jd"},
			"plain": {"lower-cased name"},
		})

		var got request
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, 42, got.Age)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		assert.True(t, got.Agree)
		require.NotNil(t, got.Nick)
		assert.Equal(t, "jd", *got.Nick)
		assert.Equal(t, "lower-cased name", got.Plain)
		assert.Nil(t, got.Touched)
	})

	t.Run("embedded struct", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, url.Values{"street": {"Main"}, "city": {"Springfield"}})

		var got withExportedEmbed
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, "Main", got.Street)
		assert.Equal(t, "Springfield", got.City)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("city", "Lisbon"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var got withExportedEmbed
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, "Lisbon", got.City)
	})

	t.Run("query values are ignored", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, url.Values{})
		r.URL.RawQuery = "city=FromQuery"

		var got withExportedEmbed
		require.NoError(t, binder.Form()(r, &got))
		assert.Empty(t, got.City)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		var got request
		err := binder.Form()(httptest.NewRequest(http.MethodGet, "/", nil), &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)

		r := formRequest(http.MethodPost, url.Values{"age": {"1"}})
		r.Header.Set("Datastar-Request", "true")
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		var got request

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrMissingContentType)

		r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrUnsupportedMediaType)

		r = formRequest(http.MethodPost, url.Values{"age": {"old"}})
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrInvalidForm)

		r = formRequest(http.MethodPost, url.Values{"agree": {"maybe"}})
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrInvalidForm)

		r = formRequest(http.MethodPost, url.Values{})
		assert.ErrorIs(t, binder.Form()(r, got), binder.ErrInvalidTarget)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
			`{"name":"Ann","email":"ann@example.com","age":30,"touched":{"name":true}}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Datastar-Request", "true")

		var got request
		require.NoError(t, binder.Signals()(r, &got))
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "ann@example.com", got.Email)
		assert.Equal(t, 30, got.Age)
		assert.Equal(t, map[string]bool{"name": true}, got.Touched)
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?datastar="+url.QueryEscape(`{"name":"Bo"}`), nil)
		r.Header.Set("Datastar-Request", "true")

		var got request
		require.NoError(t, binder.Signals()(r, &got))
		assert.Equal(t, "Bo", got.Name)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		var got request
		r := formRequest(http.MethodPost, url.Values{"name": {"x"}})
		assert.ErrorIs(t, binder.Signals()(r, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		r.Header.Set("Datastar-Request", "true")

		var got request
		assert.ErrorIs(t, binder.Signals()(r, &got), binder.ErrInvalidSignals)
	})

	t.Run("body limit", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"` + strings.Repeat("a", 64) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set("Datastar-Request", "true")

		var got request
		err := binder.SignalsWithLimit(32)(r, &got)
		assert.ErrorIs(t, err, binder.ErrRequestTooLarge)
		var tooLarge *http.MaxBytesError
		assert.ErrorAs(t, err, &tooLarge)
		assert.Empty(t, got.Name)
	})

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"` + strings.Repeat("a", binder.DefaultMaxSignalsBytes) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set("Datastar-Request", "true")

		var got request
		assert.ErrorIs(t, binder.Signals()(r, &got), binder.ErrRequestTooLarge)
	})

	t.Run("sse accept without header", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/?datastar=%7B%7D", strings.NewReader(`{"name":"x"}`))
		r.Header.Set("Accept", "text/event-stream")

		var got request
		assert.ErrorIs(t, binder.Signals()(r, &got), binder.ErrBinderNotApplicable)
		assert.False(t, binder.IsDataStar(r))
	})
}
