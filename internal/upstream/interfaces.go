// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/siterelay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_mock.go -package=mock

// CMSClient is the authenticated client for the CMS upstream. All methods
// return the upstream JSON payload untouched; non-2xx responses surface as
// [*Error].
type CMSClient interface {
	// AuthInfo introspects the configured bearer token and returns the
	// upstream "authorized by" payload. Backs GET /test_auth.
	AuthInfo(ctx context.Context) (json.RawMessage, error)

	// PageMetadata fetches the metadata of one page.
	PageMetadata(ctx context.Context, pageID string) (json.RawMessage, error)

	// UpdatePageMetadata replaces page-level fields of one page.
	UpdatePageMetadata(ctx context.Context, pageID string, update models.PageMetadataUpdate) (json.RawMessage, error)

	// PageContent fetches the DOM content of one page.
	PageContent(ctx context.Context, pageID string) (json.RawMessage, error)

	// UpdatePageContent writes DOM node updates to one page.
	UpdatePageContent(ctx context.Context, pageID string, update models.PageContentUpdate) (json.RawMessage, error)

	// PageCustomCode fetches the custom-code blocks attached to one page.
	PageCustomCode(ctx context.Context, pageID string) (json.RawMessage, error)

	// UpsertPageCustomCode replaces the custom-code blocks of one page.
	UpsertPageCustomCode(ctx context.Context, pageID string, update models.CustomCodeUpdate) (json.RawMessage, error)

	// ListLiveItems fetches the live items of one collection.
	ListLiveItems(ctx context.Context, collectionID string) (json.RawMessage, error)

	// UpdateLiveItems patches live items of one collection.
	UpdateLiveItems(ctx context.Context, collectionID string, update models.LiveItemsUpdate) (json.RawMessage, error)

	// CreateItem creates one item in the given collection.
	CreateItem(ctx context.Context, collectionID string, item models.NewItem) (json.RawMessage, error)
}

// RecordsClient is the authenticated client for the spreadsheet-database
// upstream.
type RecordsClient interface {
	// Ping fetches a single record from the configured table to prove the
	// stored credentials work. Backs GET /airtable/ping.
	Ping(ctx context.Context) (json.RawMessage, error)
}

// CheckoutClient is the OAuth client for the cart-platform upstream.
type CheckoutClient interface {
	// Refresh unconditionally exchanges the refresh token for a new access
	// token and caches it. Used by the background token worker.
	Refresh(ctx context.Context) error

	// Forward relays one call to the cart-platform API using the cached
	// access token, refreshing it first when stale. The body is attached
	// only for methods that conventionally carry one.
	Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*Result, error)
}

// Forwarder relays an inbound request to an arbitrary allow-listed
// destination URL. Backs the /proxy route.
type Forwarder interface {
	Forward(ctx context.Context, req ForwardRequest) (*Result, error)
}

// ForwardRequest describes one generic relay call.
type ForwardRequest struct {
	// Method is the inbound HTTP method, forwarded as-is.
	Method string

	// URL is the full destination URL taken from the inbound path.
	URL string

	// Header holds the inbound headers. Host and Origin are stripped
	// before the outbound call.
	Header http.Header

	// Body is the inbound request body. Ignored for GET and HEAD.
	Body []byte
}

// Result is a snapshot of an upstream response that is mirrored back to the
// caller verbatim.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
