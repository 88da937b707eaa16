package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForwarder(t *testing.T, allowedHosts ...string) Forwarder {
	t.Helper()
	return NewRelayForwarder(config.Proxy{AllowedHosts: allowedHosts}, 5*time.Second, logger.Nop())
}

// ── Destination checks ──────────────────────────────────────────────────────

func TestRelayForward_InvalidDestination(t *testing.T) {
	f := newTestForwarder(t, "example.com")

	tests := []struct {
		name string
		url  string
	}{
		{name: "relative path", url: "/just/a/path"},
		{name: "missing scheme", url: "example.com/api"},
		{name: "unsupported scheme", url: "ftp://example.com/file"},
		{name: "garbage", url: "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Forward(context.Background(), ForwardRequest{
				Method: http.MethodGet,
				URL:    tt.url,
			})
			assert.ErrorIs(t, err, ErrInvalidDestination)
		})
	}
}

func TestRelayForward_HostNotAllowed(t *testing.T) {
	f := newTestForwarder(t, "example.com")

	_, err := f.Forward(context.Background(), ForwardRequest{
		Method: http.MethodGet,
		URL:    "https://evil.example.org/steal",
	})

	assert.ErrorIs(t, err, ErrDestinationNotAllowed)
}

func TestRelayForward_EmptyAllowList_RejectsEverything(t *testing.T) {
	f := newTestForwarder(t)

	_, err := f.Forward(context.Background(), ForwardRequest{
		Method: http.MethodGet,
		URL:    "https://example.com/api",
	})

	assert.ErrorIs(t, err, ErrDestinationNotAllowed)
}

func TestRelayForward_AllowedHostPasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	host, err := url.Parse(srv.URL)
	require.NoError(t, err)
	f := newTestForwarder(t, host.Hostname())

	result, err := f.Forward(context.Background(), ForwardRequest{
		Method: http.MethodGet,
		URL:    srv.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

// ── Forwarding semantics ────────────────────────────────────────────────────

func TestRelayForward_StripsHostAndOriginHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Origin"))
		assert.Equal(t, "value", r.Header.Get("X-Custom"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	host, err := url.Parse(srv.URL)
	require.NoError(t, err)
	f := newTestForwarder(t, host.Hostname())

	_, err = f.Forward(context.Background(), ForwardRequest{
		Method: http.MethodGet,
		URL:    srv.URL,
		Header: http.Header{
			"Origin":        {"https://frontend.example.com"},
			"Host":          {"frontend.example.com"},
			"X-Custom":      {"value"},
			"Authorization": {"Bearer abc"},
		},
	})

	require.NoError(t, err)
}

func TestRelayForward_MirrorsResponseVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("<teapot/>"))
	}))
	defer srv.Close()

	host, err := url.Parse(srv.URL)
	require.NoError(t, err)
	f := newTestForwarder(t, host.Hostname())

	result, err := f.Forward(context.Background(), ForwardRequest{
		Method: http.MethodGet,
		URL:    srv.URL,
	})

	// A non-2xx destination response is still a successful relay.
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, result.StatusCode)
	assert.Equal(t, "application/xml", result.Header.Get("Content-Type"))
	assert.Equal(t, "<teapot/>", string(result.Body))
}

func TestRelayForward_SendsBodyForPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"key":"value"}`, string(body))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	host, err := url.Parse(srv.URL)
	require.NoError(t, err)
	f := newTestForwarder(t, host.Hostname())

	_, err = f.Forward(context.Background(), ForwardRequest{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   []byte(`{"key":"value"}`),
	})

	require.NoError(t, err)
}
