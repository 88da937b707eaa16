package service

import (
	"context"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
)

type relayService struct {
	forwarder upstream.Forwarder

	logger *logger.Logger
}

// NewRelayService constructs the [RelayService] implementation behind the
// /proxy route. forwarder may be nil when forwarding is not configured;
// every call then fails with ErrRelayNotConfigured.
func NewRelayService(forwarder upstream.Forwarder, logger *logger.Logger) RelayService {
	return &relayService{forwarder: forwarder, logger: logger}
}

// Forward implements [RelayService]. The destination check itself lives in
// the forwarder; here only the presence of a destination is validated so a
// bare /proxy call fails before any outbound work.
func (s *relayService) Forward(ctx context.Context, req upstream.ForwardRequest) (*upstream.Result, error) {
	if s.forwarder == nil {
		return nil, ErrRelayNotConfigured
	}

	if req.URL == "" {
		return nil, ErrMissingDestination
	}

	return s.forwarder.Forward(ctx, req)
}
