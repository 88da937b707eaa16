// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the relay
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the service name and
	// version string.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, inbound request timeout, and the
	// CORS origin allow-list.
	Server Server `envPrefix:"SERVER_"`

	// Webflow holds credentials and routing settings for the CMS upstream.
	Webflow Webflow `envPrefix:"WEBFLOW_"`

	// Airtable holds credentials for the spreadsheet-database upstream.
	Airtable Airtable `envPrefix:"AIRTABLE_"`

	// Foxy holds OAuth client settings for the cart-platform upstream.
	// All fields optional; the /foxycart routes are disabled when unset.
	Foxy Foxy `envPrefix:"FOXY_"`

	// Proxy holds the destination allow-list for the generic relay route.
	// An empty list disables the route.
	Proxy Proxy `envPrefix:"PROXY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level identification values.
type App struct {
	// Name is the service name attached to logs.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP listener.
type Server struct {
	// Address is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds both inbound request handling and every
	// outbound upstream call (e.g. "30s", "1m"). Upstreams that stall
	// longer than this are surfaced as transport failures.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS origin allow-list, comma-separated in the
	// environment (e.g. "https://example.com,https://www.example.com").
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Webflow holds the static credential and fixed identifiers for the CMS
// upstream. Token, SiteID, and CollectionID are required; startup fails
// without them.
type Webflow struct {
	// Token is the static bearer credential sent on every CMS call.
	// Env: WEBFLOW_API_TOKEN
	Token string `env:"API_TOKEN"`

	// SiteID is the identifier of the site the relay serves.
	// Env: WEBFLOW_SITE_ID
	SiteID string `env:"SITE_ID"`

	// CollectionID is the fixed collection used by /cms/collection/items
	// and POST /webflow.
	// Env: WEBFLOW_COLLECTION_ID
	CollectionID string `env:"COLLECTION_ID"`

	// BaseURL is the CMS API host. Defaults to the public v2 endpoint.
	// Env: WEBFLOW_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ItemProjection maps output keys to source field paths applied to
	// collection items before they are returned (e.g. "name:fieldData.name").
	// Env: WEBFLOW_ITEM_PROJECTION (comma-separated key:path pairs)
	ItemProjection map[string]string `env:"ITEM_PROJECTION" envKeyValSeparator:":"`

	// RawItems disables the projection and returns the upstream item
	// payload unchanged.
	// Env: WEBFLOW_RAW_ITEMS
	RawItems bool `env:"RAW_ITEMS"`
}

// Airtable holds credentials for the spreadsheet-database upstream.
// APIKey and BaseID are required; startup fails without them.
type Airtable struct {
	// APIKey is the static bearer credential for the spreadsheet API.
	// Env: AIRTABLE_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseID identifies the base queried by /airtable/ping.
	// Env: AIRTABLE_BASE_ID
	BaseID string `env:"BASE_ID"`

	// Table is the table name queried by /airtable/ping.
	// Env: AIRTABLE_TABLE
	Table string `env:"TABLE"`

	// BaseURL is the spreadsheet API host.
	// Env: AIRTABLE_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Foxy holds OAuth client-credential settings for the cart platform.
type Foxy struct {
	// ClientID is the OAuth client identifier.
	// Env: FOXY_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the OAuth client secret.
	// Env: FOXY_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// RefreshToken is the long-lived OAuth refresh token exchanged for
	// short-lived access tokens.
	// Env: FOXY_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// TokenURL is the OAuth token endpoint.
	// Env: FOXY_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// BaseURL is the cart-platform API host the /foxycart routes forward to.
	// Env: FOXY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RefreshMargin is the safety window before expiry within which a
	// cached access token is considered stale (e.g. "60s").
	// Env: FOXY_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"REFRESH_MARGIN"`

	// RefreshInterval is how often the background worker proactively
	// refreshes the cached token (e.g. "30m").
	// Env: FOXY_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Enabled reports whether the cart-platform integration is fully configured.
func (f Foxy) Enabled() bool {
	return f.ClientID != "" && f.ClientSecret != "" && f.RefreshToken != ""
}

// Proxy holds settings for the generic relay route.
type Proxy struct {
	// AllowedHosts is the destination host allow-list for /proxy requests,
	// comma-separated in the environment. Empty disables the route.
	// Env: PROXY_ALLOWED_HOSTS
	AllowedHosts []string `env:"ALLOWED_HOSTS"`
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
