// Package service contains the relay's thin domain layer: it validates
// inbound input before any outbound call is attempted, invokes the matching
// upstream operation, and applies the configured field projection where one
// is defined. Validation failures are sentinel errors declared in errors.go
// so the transport layer can map them to HTTP statuses with [errors.Is].
package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/MKhiriev/siterelay/models"
)

// PagesService exposes the CMS page operations behind the /webflow/pages
// routes, plus the token introspection behind /test_auth.
type PagesService interface {
	AuthInfo(ctx context.Context) (json.RawMessage, error)
	Metadata(ctx context.Context, pageID string) (json.RawMessage, error)
	UpdateMetadata(ctx context.Context, pageID string, update models.PageMetadataUpdate) (json.RawMessage, error)
	Content(ctx context.Context, pageID string) (json.RawMessage, error)
	UpdateContent(ctx context.Context, pageID string, update models.PageContentUpdate) (json.RawMessage, error)
	CustomCode(ctx context.Context, pageID string) (json.RawMessage, error)
	UpsertCustomCode(ctx context.Context, pageID string, update models.CustomCodeUpdate) (json.RawMessage, error)
}

// ItemsService exposes the CMS collection-item operations.
type ItemsService interface {
	// LiveItems returns the live items of an explicitly addressed collection.
	LiveItems(ctx context.Context, collectionID string) (json.RawMessage, error)

	// UpdateLiveItems patches live items of an explicitly addressed collection.
	UpdateLiveItems(ctx context.Context, collectionID string, update models.LiveItemsUpdate) (json.RawMessage, error)

	// CollectionItems returns the items of the fixed configured collection,
	// either raw or passed through the configured field projection.
	CollectionItems(ctx context.Context) (json.RawMessage, error)

	// CreateItem creates one item in the fixed configured collection.
	CreateItem(ctx context.Context, req models.CreateItemRequest) (json.RawMessage, error)
}

// RecordsService exposes the spreadsheet-database credential check.
type RecordsService interface {
	Ping(ctx context.Context) (json.RawMessage, error)
}

// CheckoutService relays calls to the cart-platform API.
type CheckoutService interface {
	Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*upstream.Result, error)
}

// RelayService relays calls to arbitrary allow-listed destinations.
type RelayService interface {
	Forward(ctx context.Context, req upstream.ForwardRequest) (*upstream.Result, error)
}
