package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/MKhiriev/siterelay/models"
)

type pagesService struct {
	cms      upstream.CMSClient
	validate *validator.Validate

	logger *logger.Logger
}

// NewPagesService constructs the [PagesService] implementation backed by the
// CMS client.
func NewPagesService(cms upstream.CMSClient, validate *validator.Validate, logger *logger.Logger) PagesService {
	return &pagesService{cms: cms, validate: validate, logger: logger}
}

// AuthInfo implements [PagesService].
func (s *pagesService) AuthInfo(ctx context.Context) (json.RawMessage, error) {
	return s.cms.AuthInfo(ctx)
}

// Metadata implements [PagesService].
func (s *pagesService) Metadata(ctx context.Context, pageID string) (json.RawMessage, error) {
	if pageID == "" {
		return nil, ErrMissingPageID
	}

	return s.cms.PageMetadata(ctx, pageID)
}

// UpdateMetadata implements [PagesService]. The body is validated before any
// outbound call.
func (s *pagesService) UpdateMetadata(ctx context.Context, pageID string, update models.PageMetadataUpdate) (json.RawMessage, error) {
	if pageID == "" {
		return nil, ErrMissingPageID
	}
	if err := checkStruct(s.validate, update); err != nil {
		return nil, err
	}

	return s.cms.UpdatePageMetadata(ctx, pageID, update)
}

// Content implements [PagesService].
func (s *pagesService) Content(ctx context.Context, pageID string) (json.RawMessage, error) {
	if pageID == "" {
		return nil, ErrMissingPageID
	}

	return s.cms.PageContent(ctx, pageID)
}

// UpdateContent implements [PagesService].
func (s *pagesService) UpdateContent(ctx context.Context, pageID string, update models.PageContentUpdate) (json.RawMessage, error) {
	if pageID == "" {
		return nil, ErrMissingPageID
	}
	if err := checkStruct(s.validate, update); err != nil {
		return nil, err
	}

	return s.cms.UpdatePageContent(ctx, pageID, update)
}

// CustomCode implements [PagesService].
func (s *pagesService) CustomCode(ctx context.Context, pageID string) (json.RawMessage, error) {
	if pageID == "" {
		return nil, ErrMissingPageID
	}

	return s.cms.PageCustomCode(ctx, pageID)
}

// UpsertCustomCode implements [PagesService].
func (s *pagesService) UpsertCustomCode(ctx context.Context, pageID string, update models.CustomCodeUpdate) (json.RawMessage, error) {
	if pageID == "" {
		return nil, ErrMissingPageID
	}
	if err := checkStruct(s.validate, update); err != nil {
		return nil, err
	}

	return s.cms.UpsertPageCustomCode(ctx, pageID, update)
}
