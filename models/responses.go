package models

import "encoding/json"

// ErrorResponse is the JSON error envelope returned by every relay endpoint.
//
// For local validation failures only Error is set. For upstream failures the
// raw upstream error payload is attached verbatim under Details so the
// frontend can inspect the original message.
type ErrorResponse struct {
	// Error is a short human-readable description of what went wrong.
	Error string `json:"error"`

	// Details carries the upstream error body, when one exists.
	Details json.RawMessage `json:"details,omitempty"`
}

// ItemList is the envelope the CMS returns when listing collection items.
// Items are kept as raw maps because the relay either passes them through
// unchanged or applies a configurable field projection; it never depends on
// the collection schema.
type ItemList struct {
	Items      []map[string]any `json:"items"`
	Pagination *Pagination      `json:"pagination,omitempty"`
}

// Pagination mirrors the CMS list-endpoint pagination block.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}
