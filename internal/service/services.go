package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
)

// Clients bundles the upstream clients the services are built on. Checkout
// and Forwarder may be nil when the matching route group is disabled by
// configuration.
type Clients struct {
	CMS       upstream.CMSClient
	Records   upstream.RecordsClient
	Checkout  upstream.CheckoutClient
	Forwarder upstream.Forwarder
}

// Services aggregates the relay's domain services, one per route group.
type Services struct {
	Pages    PagesService
	Items    ItemsService
	Records  RecordsService
	Checkout CheckoutService
	Relay    RelayService
}

// NewServices wires the domain services to their upstream clients.
func NewServices(clients Clients, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &Services{
		Pages:    NewPagesService(clients.CMS, validate, logger),
		Items:    NewItemsService(clients.CMS, cfg.Webflow, validate, logger),
		Records:  NewRecordsService(clients.Records, logger),
		Checkout: NewCheckoutService(clients.Checkout, logger),
		Relay:    NewRelayService(clients.Forwarder, logger),
	}
}

// checkStruct runs the shared validator over an inbound request body and
// wraps any violation in ErrInvalidDataProvided so the transport layer maps
// it to 400 before an outbound call happens.
func checkStruct(validate *validator.Validate, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}
	return nil
}
