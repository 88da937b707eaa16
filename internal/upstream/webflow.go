package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/models"
	"github.com/go-resty/resty/v2"
)

type webflowClient struct {
	client *resty.Client
	siteID string

	logger *logger.Logger
}

// NewWebflowClient constructs the CMS implementation of [CMSClient]. The
// static bearer token from cfg is attached to every request; timeout bounds
// each outbound call.
func NewWebflowClient(cfg config.Webflow, timeout time.Duration, logger *logger.Logger) CMSClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json")

	return &webflowClient{client: client, siteID: cfg.SiteID, logger: logger}
}

// AuthInfo implements [CMSClient]. It calls the token introspection endpoint
// and returns the "authorized by" payload unchanged.
func (c *webflowClient) AuthInfo(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/token/authorized_by")
	if err != nil {
		return nil, fmt.Errorf("auth info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// PageMetadata implements [CMSClient].
func (c *webflowClient) PageMetadata(ctx context.Context, pageID string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pageID", pageID).
		Get("/pages/{pageID}")
	if err != nil {
		return nil, fmt.Errorf("page metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UpdatePageMetadata implements [CMSClient].
func (c *webflowClient) UpdatePageMetadata(ctx context.Context, pageID string, update models.PageMetadataUpdate) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pageID", pageID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/pages/{pageID}")
	if err != nil {
		return nil, fmt.Errorf("update page metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// PageContent implements [CMSClient]. It fetches the page DOM.
func (c *webflowClient) PageContent(ctx context.Context, pageID string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pageID", pageID).
		Get("/pages/{pageID}/dom")
	if err != nil {
		return nil, fmt.Errorf("page content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UpdatePageContent implements [CMSClient]. It posts DOM node updates.
func (c *webflowClient) UpdatePageContent(ctx context.Context, pageID string, update models.PageContentUpdate) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pageID", pageID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Post("/pages/{pageID}/dom")
	if err != nil {
		return nil, fmt.Errorf("update page content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// PageCustomCode implements [CMSClient].
func (c *webflowClient) PageCustomCode(ctx context.Context, pageID string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pageID", pageID).
		Get("/pages/{pageID}/custom_code")
	if err != nil {
		return nil, fmt.Errorf("page custom code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UpsertPageCustomCode implements [CMSClient].
func (c *webflowClient) UpsertPageCustomCode(ctx context.Context, pageID string, update models.CustomCodeUpdate) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pageID", pageID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/pages/{pageID}/custom_code")
	if err != nil {
		return nil, fmt.Errorf("upsert page custom code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ListLiveItems implements [CMSClient]. The raw list envelope is returned so
// the service layer can either pass it through or project it.
func (c *webflowClient) ListLiveItems(ctx context.Context, collectionID string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("collectionID", collectionID).
		Get("/collections/{collectionID}/items/live")
	if err != nil {
		return nil, fmt.Errorf("list live items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UpdateLiveItems implements [CMSClient].
func (c *webflowClient) UpdateLiveItems(ctx context.Context, collectionID string, update models.LiveItemsUpdate) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("collectionID", collectionID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/collections/{collectionID}/items/live")
	if err != nil {
		return nil, fmt.Errorf("update live items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// CreateItem implements [CMSClient].
func (c *webflowClient) CreateItem(ctx context.Context, collectionID string, item models.NewItem) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("collectionID", collectionID).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post("/collections/{collectionID}/items")
	if err != nil {
		return nil, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
