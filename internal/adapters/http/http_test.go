package http

import (
	"crypto/tls"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

func TestFlushRequested(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "/page", want: false},
		{url: "/page?flush", want: true},
		{url: "/page?flush=1", want: true},
		{url: "/page?flush=0", want: true},
		{url: "/page?other=1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			assert.Equal(t, tt.want, FlushRequested(req))
		})
	}

	assert.False(t, FlushRequested(nil))
}

func TestSiteURL(t *testing.T) {
	t.Run("plain host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.test:8080/page", nil)
		assert.Equal(t, "http://example.test:8080/", SiteURL(req))
		assert.False(t, IsSecure(req))
	})

	t.Run("tls", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "https://example.test/page", nil)
		req.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://example.test/", SiteURL(req))
		assert.True(t, IsSecure(req))
	})

	t.Run("forwarded headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://internal:8080/page", nil)
		req.Header.Set("X-Forwarded-Proto", "https, http")
		req.Header.Set("X-Forwarded-Host", "public.test, internal")
		assert.Equal(t, "https://public.test/", SiteURL(req))
	})

	t.Run("nil request", func(t *testing.T) {
		assert.Equal(t, "http://localhost/", SiteURL(nil))
	})
}

func TestRequirementsMiddleware(t *testing.T) {
	var seen []*core.Requirements
	handler := RequirementsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqs := RequirementsFrom(req.Context())
		require.NotNil(t, reqs)
		reqs.CSS("/a.css")
		seen = append(seen, reqs)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])

	existing := core.NewRequirements()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequirements(req.Context(), existing))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Same(t, existing, seen[2])
}

func TestServeError(t *testing.T) {
	err := errors.New("app/client/dist/manifest.json does not exist. Please run `yarn build`")

	t.Run("dev shows message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ServeError(rec, err, true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Please run `yarn build`")
		assert.Contains(t, rec.Body.String(), "<h1>Page assets unavailable</h1>")
		assert.Contains(t, rec.Body.String(), "reload with <code>?flush</code>")
	})

	t.Run("live hides message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ServeError(rec, err, false)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "yarn build")
		assert.Contains(t, rec.Body.String(), "temporarily unavailable while its assets are rebuilt")
		assert.NotContains(t, rec.Body.String(), "<pre>")
	})
}
