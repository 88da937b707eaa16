package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/service"
	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/stretchr/testify/assert"
)

func newProxyRouter(t *testing.T, forwardFn func(ctx context.Context, req upstream.ForwardRequest) (*upstream.Result, error)) http.Handler {
	t.Helper()
	h := newTestHandler(t)
	h.services.Relay = &stubRelaySvc{forwardFn: forwardFn}
	return h.Init()
}

func TestRelayForward_RepairsCollapsedScheme(t *testing.T) {
	var gotURL string
	router := newProxyRouter(t, func(_ context.Context, req upstream.ForwardRequest) (*upstream.Result, error) {
		gotURL = req.URL
		return &upstream.Result{StatusCode: http.StatusOK, Header: http.Header{}}, nil
	})

	// Routers collapse "https://" inside the path down to "https:/".
	req := httptest.NewRequest(http.MethodGet, "/proxy/https:/example.com/api/v1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://example.com/api/v1", gotURL)
}

func TestRelayForward_AppendsQueryString(t *testing.T) {
	var gotURL string
	router := newProxyRouter(t, func(_ context.Context, req upstream.ForwardRequest) (*upstream.Result, error) {
		gotURL = req.URL
		return &upstream.Result{StatusCode: http.StatusOK, Header: http.Header{}}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/proxy/https://example.com/search?q=test&page=2", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "https://example.com/search?q=test&page=2", gotURL)
}

func TestRelayForward_PassesMethodHeadersAndBody(t *testing.T) {
	var gotReq upstream.ForwardRequest
	router := newProxyRouter(t, func(_ context.Context, req upstream.ForwardRequest) (*upstream.Result, error) {
		gotReq = req
		return &upstream.Result{StatusCode: http.StatusOK, Header: http.Header{}}, nil
	})

	req := httptest.NewRequest(http.MethodPut, "/proxy/https://example.com/resource", strings.NewReader(`{"v":1}`))
	req.Header.Set("X-Custom", "value")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.MethodPut, gotReq.Method)
	assert.Equal(t, "value", gotReq.Header.Get("X-Custom"))
	assert.Equal(t, `{"v":1}`, string(gotReq.Body))
}

func TestRelayForward_MirrorsDestinationResponse(t *testing.T) {
	router := newProxyRouter(t, func(_ context.Context, _ upstream.ForwardRequest) (*upstream.Result, error) {
		return &upstream.Result{
			StatusCode: http.StatusTeapot,
			Header:     http.Header{"Content-Type": {"application/xml"}},
			Body:       []byte("<teapot/>"),
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/proxy/https://example.com/tea", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "application/xml", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<teapot/>", rr.Body.String())
}

func TestRelayForward_NotConfigured_Returns503(t *testing.T) {
	h := newTestHandler(t)
	h.services.Relay = service.NewRelayService(nil, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/proxy/https://example.com/api", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRelayForward_DisallowedHost_Returns403(t *testing.T) {
	router := newProxyRouter(t, func(_ context.Context, _ upstream.ForwardRequest) (*upstream.Result, error) {
		return nil, upstream.ErrDestinationNotAllowed
	})

	req := httptest.NewRequest(http.MethodGet, "/proxy/https://evil.example.org/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRelayForward_InvalidDestination_Returns400(t *testing.T) {
	router := newProxyRouter(t, func(_ context.Context, _ upstream.ForwardRequest) (*upstream.Result, error) {
		return nil, upstream.ErrInvalidDestination
	})

	req := httptest.NewRequest(http.MethodGet, "/proxy/not-a-url", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
