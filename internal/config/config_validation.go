// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. The process refuses to accept connections when any
// required upstream credential is missing.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// declared in errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Webflow.Token == "" || cfg.Webflow.SiteID == "" || cfg.Webflow.CollectionID == "" {
		return ErrInvalidWebflowConfigs
	}

	if cfg.Airtable.APIKey == "" || cfg.Airtable.BaseID == "" {
		return ErrInvalidAirtableConfigs
	}

	// Foxy is optional as a whole, but a half-configured client is a
	// deployment mistake rather than an intentional opt-out.
	foxySet := cfg.Foxy.ClientID != "" || cfg.Foxy.ClientSecret != "" || cfg.Foxy.RefreshToken != ""
	if foxySet && !cfg.Foxy.Enabled() {
		return ErrInvalidFoxyConfigs
	}

	return nil
}
