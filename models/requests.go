// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PageMetadataUpdate is the inbound body of PUT /webflow/pages/{page_id}/meta.
// FieldData is forwarded to the CMS as-is; the relay never interprets
// individual fields.
type PageMetadataUpdate struct {
	// FieldData holds the page-level fields to update (title, slug,
	// SEO attributes, ...). Required.
	FieldData map[string]any `json:"fieldData" validate:"required"`
}

// PageContentUpdate is the inbound body of POST /webflow/pages/{page_id}/content.
type PageContentUpdate struct {
	// FieldData holds the DOM node updates keyed by node identifier. Required.
	FieldData map[string]any `json:"fieldData" validate:"required"`

	// ScriptID optionally targets a registered script on the page.
	ScriptID string `json:"scriptId,omitempty"`

	// BodyID optionally targets a specific DOM body node.
	BodyID string `json:"bodyId,omitempty"`
}

// CustomCodeUpdate is the inbound body of PUT /webflow/pages/{page_id}/custom_code.
type CustomCodeUpdate struct {
	// CustomCode holds the head/footer code blocks to apply. Required.
	CustomCode map[string]any `json:"customCode" validate:"required"`
}

// ItemUpdate is one element of a live collection-item PATCH.
type ItemUpdate struct {
	// ID is the CMS identifier of the item to update. Required.
	ID string `json:"id" validate:"required"`

	// FieldData holds the item fields to update. Required.
	FieldData map[string]any `json:"fieldData" validate:"required"`
}

// LiveItemsUpdate is the inbound body of
// PATCH /webflow/collections/{collection_id}/items/live.
type LiveItemsUpdate struct {
	// Items is the batch of item updates. At least one entry is required.
	Items []ItemUpdate `json:"items" validate:"required,min=1,dive"`
}

// CreateItemRequest is the inbound body of POST /webflow. The relay fills in
// the rest of the item envelope (draft/archive flags, slug fallback) before
// forwarding.
type CreateItemRequest struct {
	// Name becomes the item's display name. Required.
	Name string `json:"name" validate:"required"`

	// Slug overrides the generated URL slug. Optional.
	Slug string `json:"slug,omitempty"`

	// FieldData carries any additional collection-specific fields. Optional.
	FieldData map[string]any `json:"fieldData,omitempty"`
}

// NewItem is the outbound payload sent to the CMS when creating a collection
// item. Field names follow the upstream API contract.
type NewItem struct {
	IsArchived bool           `json:"isArchived"`
	IsDraft    bool           `json:"isDraft"`
	FieldData  map[string]any `json:"fieldData"`
}
