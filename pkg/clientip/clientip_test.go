package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/pkg/clientip"
)

func TestGetIP_IgnoresHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.10:5123", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.10", want: "192.0.2.10"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "ipv4 mapped", remoteAddr: "[::ffff:192.0.2.7]:80", want: "192.0.2.7"},
		{
			name:       "spoofed headers",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "192.0.2.10:80",
			want:       "192.0.2.10",
		},
		{name: "garbage remote addr", remoteAddr: "garbage", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}

func TestResolver_TrustedProxies(t *testing.T) {
	t.Parallel()

	rs, err := clientip.New(clientip.Config{TrustedProxies: []string{"10.0.0.0/8", " 192.0.2.1 ", ""}})
	require.NoError(t, err)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "untrusted peer",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "203.0.113.9:80",
			want:       "203.0.113.9",
		},
		{
			name:       "cloudflare from trusted peer",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.5",
		},
		{
			name:       "nearest untrusted hop",
			headers:    map[string]string{"X-Forwarded-For": "6.6.6.6, 198.51.100.1, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.1",
		},
		{
			name:       "single host proxy",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			remoteAddr: "192.0.2.1:443",
			want:       "198.51.100.7",
		},
		{
			name:       "every hop trusted",
			headers:    map[string]string{"X-Forwarded-For": "10.1.1.1, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "10.1.1.1",
		},
		{
			name:       "invalid headers fall back to peer",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip", "X-Real-IP": "also bad"},
			remoteAddr: "10.0.0.1:80",
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, rs.GetIP(r))
		})
	}
}

func TestNew_InvalidProxy(t *testing.T) {
	t.Parallel()

	for _, proxy := range []string{"10.0.0.0/33", "proxy.local"} {
		_, err := clientip.New(clientip.Config{TrustedProxies: []string{proxy}})
		assert.ErrorIs(t, err, clientip.ErrInvalidProxy, proxy)
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	rs, err := clientip.New(clientip.Config{})
	require.NoError(t, err)

	var got string
	h := rs.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "198.51.100.23:4000"
	r.Header.Set("X-Forwarded-For", "203.0.113.1")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.23", got)
}
