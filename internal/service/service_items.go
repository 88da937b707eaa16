package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/projection"
	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/MKhiriev/siterelay/models"
)

type itemsService struct {
	cms      upstream.CMSClient
	validate *validator.Validate

	// collectionID is the fixed collection behind /cms/collection/items and
	// POST /webflow.
	collectionID string
	projection   projection.Projection
	rawItems     bool

	logger *logger.Logger
}

// NewItemsService constructs the [ItemsService] implementation. The
// projection and the fixed collection identifier come from the CMS section
// of the configuration.
func NewItemsService(cms upstream.CMSClient, cfg config.Webflow, validate *validator.Validate, logger *logger.Logger) ItemsService {
	return &itemsService{
		cms:          cms,
		validate:     validate,
		collectionID: cfg.CollectionID,
		projection:   projection.Projection(cfg.ItemProjection),
		rawItems:     cfg.RawItems,
		logger:       logger,
	}
}

// LiveItems implements [ItemsService].
func (s *itemsService) LiveItems(ctx context.Context, collectionID string) (json.RawMessage, error) {
	if collectionID == "" {
		return nil, ErrMissingCollectionID
	}

	return s.cms.ListLiveItems(ctx, collectionID)
}

// UpdateLiveItems implements [ItemsService].
func (s *itemsService) UpdateLiveItems(ctx context.Context, collectionID string, update models.LiveItemsUpdate) (json.RawMessage, error) {
	if collectionID == "" {
		return nil, ErrMissingCollectionID
	}
	if err := checkStruct(s.validate, update); err != nil {
		return nil, err
	}

	return s.cms.UpdateLiveItems(ctx, collectionID, update)
}

// CollectionItems implements [ItemsService]. Depending on configuration the
// upstream payload is returned unchanged or reduced to the projected field
// set.
func (s *itemsService) CollectionItems(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.cms.ListLiveItems(ctx, s.collectionID)
	if err != nil {
		return nil, err
	}

	if s.rawItems || len(s.projection) == 0 {
		return raw, nil
	}

	var list models.ItemList
	if err = json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode item list: %w", err)
	}

	projected, err := json.Marshal(models.ItemList{Items: s.projection.Apply(list.Items)})
	if err != nil {
		return nil, fmt.Errorf("encode projected items: %w", err)
	}

	return projected, nil
}

// CreateItem implements [ItemsService]. The relay owns the item envelope:
// items are created live (not draft, not archived) with the slug derived
// from the name unless one was supplied.
func (s *itemsService) CreateItem(ctx context.Context, req models.CreateItemRequest) (json.RawMessage, error) {
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}

	fieldData := make(map[string]any, len(req.FieldData)+2)
	for k, v := range req.FieldData {
		fieldData[k] = v
	}
	fieldData["name"] = req.Name
	fieldData["slug"] = req.Slug
	if req.Slug == "" {
		fieldData["slug"] = slugify(req.Name)
	}

	return s.cms.CreateItem(ctx, s.collectionID, models.NewItem{
		IsArchived: false,
		IsDraft:    false,
		FieldData:  fieldData,
	})
}

// slugify derives a URL slug from an item name. The CMS rejects slugs with
// spaces or uppercase characters.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
