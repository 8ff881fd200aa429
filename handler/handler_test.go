package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/handler"
	"github.com/dmitrymomot/signupform/pkg/binder"
)

type mockComponent struct {
	content string
}

func (m mockComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, m.content)
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return errors.New("render failed")
}

type greetRequest struct {
	Name string `form:"name" json:"name"`
}

func datastarRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Datastar-Request", "true")
	r.Header.Set("Accept", "text/event-stream")
	r.Header.Set("Content-Type", "application/json")
	return r
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	return handler.Templ(mockComponent{content: "<p id=\"greeting\">Hello " + req.Name + "</p>"})
}

func TestWrap_BindersChain(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](binder.Signals(), binder.Form()))

	t.Run("form", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"name": {"Ann"}}.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `<p id="greeting">Hello Ann</p>`, rec.Body.String())
	})

	t.Run("signals", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, datastarRequest(http.MethodPost, "/", `{"name":"Bo"}`))

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), "Hello Bo")
	})

	t.Run("get skips body binders", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, `<p id="greeting">Hello </p>`, rec.Body.String())
	})

	t.Run("bind error", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWrap_ErrorHandlerAndDecorators(t *testing.T) {
	t.Parallel()

	var (
		gotErr error
		order  []string
	)
	trace := func(name string) handler.Decorator[handler.Context, greetRequest] {
		return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(handler.Context, greetRequest) handler.Response { return nil },
		handler.WithDecorators(trace("outer"), trace("inner")),
		handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
			gotErr = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.ErrorIs(t, gotErr, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(failingComponent{})
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	h = handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.SSE(func(handler.StreamContext) error { return handler.ErrNotFound })
	})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, datastarRequest(http.MethodGet, "/", ""))
	assert.Contains(t, rec.Body.String(), "not_found")

	h = handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrTooManyRequests)
	})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "too_many_requests")
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "v"))
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, r)
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
	require.NotNil(t, ctx.Done())
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		query   string
		want    bool
	}{
		{name: "datastar request header", headers: map[string]string{"Datastar-Request": "true"}, want: true},
		{name: "header is case insensitive", headers: map[string]string{"Datastar-Request": "TRUE"}, want: true},
		{name: "sse accept alone", headers: map[string]string{"Accept": "text/event-stream"}, want: false},
		{name: "query param alone", query: "?datastar=%7B%7D", want: false},
		{name: "html", headers: map[string]string{"Accept": "text/html"}, want: false},
		{name: "nothing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(r))
		})
	}
}
