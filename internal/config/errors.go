package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWebflowConfigs indicates incomplete CMS settings
	// (missing API token, site ID, or collection ID).
	ErrInvalidWebflowConfigs = errors.New("invalid webflow configuration")
	// ErrInvalidAirtableConfigs indicates incomplete spreadsheet settings
	// (missing API key or base ID).
	ErrInvalidAirtableConfigs = errors.New("invalid airtable configuration")
	// ErrInvalidFoxyConfigs indicates partially supplied cart-platform
	// credentials: either all of client ID, secret, and refresh token are
	// set, or none of them.
	ErrInvalidFoxyConfigs = errors.New("invalid foxy configuration")
)
