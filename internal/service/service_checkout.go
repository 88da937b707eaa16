package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
)

type checkoutService struct {
	checkout upstream.CheckoutClient

	logger *logger.Logger
}

// NewCheckoutService constructs the [CheckoutService] implementation.
// checkout may be nil when the cart platform is not configured; every call
// then fails with ErrCheckoutNotConfigured.
func NewCheckoutService(checkout upstream.CheckoutClient, logger *logger.Logger) CheckoutService {
	return &checkoutService{checkout: checkout, logger: logger}
}

// Forward implements [CheckoutService].
func (s *checkoutService) Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*upstream.Result, error) {
	if s.checkout == nil {
		return nil, ErrCheckoutNotConfigured
	}

	return s.checkout.Forward(ctx, method, path, query, body)
}
