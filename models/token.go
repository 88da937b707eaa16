// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CheckoutToken is the response of the cart platform's OAuth token endpoint.
type CheckoutToken struct {
	// AccessToken is the bearer credential for subsequent API calls.
	AccessToken string `json:"access_token"`

	// TokenType is the token scheme, always "Bearer" in practice.
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds, counted from issuance.
	ExpiresIn int64 `json:"expires_in"`

	// Scope lists the granted OAuth scopes.
	Scope string `json:"scope"`
}

// ExpiresAt converts ExpiresIn into an absolute deadline relative to now.
func (t CheckoutToken) ExpiresAt(now time.Time) time.Time {
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}
