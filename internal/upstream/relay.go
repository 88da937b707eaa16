package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/go-resty/resty/v2"
)

// strippedHeaders are never forwarded to the destination. Host would confuse
// the destination's virtual hosting; Origin would leak the frontend origin
// and trip the destination's own CORS checks.
var strippedHeaders = []string{"Host", "Origin"}

type relayForwarder struct {
	client  *resty.Client
	allowed map[string]struct{}

	logger *logger.Logger
}

// NewRelayForwarder constructs the generic [Forwarder] behind the /proxy
// route. Destinations are restricted to the configured host allow-list; the
// route is unusable when the list is empty.
func NewRelayForwarder(cfg config.Proxy, timeout time.Duration, logger *logger.Logger) Forwarder {
	allowed := make(map[string]struct{}, len(cfg.AllowedHosts))
	for _, host := range cfg.AllowedHosts {
		allowed[strings.ToLower(host)] = struct{}{}
	}

	return &relayForwarder{
		client:  resty.New().SetTimeout(timeout),
		allowed: allowed,
		logger:  logger,
	}
}

// Forward implements [Forwarder]. The inbound method, headers (minus Host and
// Origin), and body are relayed to req.URL; the destination's status, headers
// and body are returned verbatim, whatever the status code.
func (f *relayForwarder) Forward(ctx context.Context, req ForwardRequest) (*Result, error) {
	destination, err := url.Parse(req.URL)
	if err != nil || destination.Host == "" || (destination.Scheme != "http" && destination.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDestination, req.URL)
	}

	if _, ok := f.allowed[strings.ToLower(destination.Hostname())]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDestinationNotAllowed, destination.Hostname())
	}

	outbound := f.client.R().SetContext(ctx)
	for name, values := range req.Header {
		if isStrippedHeader(name) {
			continue
		}
		for _, value := range values {
			outbound.Header.Add(name, value)
		}
	}

	if len(req.Body) > 0 && carriesBody(req.Method) {
		outbound.SetBody(req.Body)
	}

	resp, err := outbound.Execute(req.Method, destination.String())
	if err != nil {
		return nil, fmt.Errorf("relay request: %w", err)
	}

	return &Result{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

func isStrippedHeader(name string) bool {
	for _, stripped := range strippedHeaders {
		if http.CanonicalHeaderKey(name) == stripped {
			return true
		}
	}
	return false
}
