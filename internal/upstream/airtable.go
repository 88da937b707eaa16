package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/go-resty/resty/v2"
)

type airtableClient struct {
	client *resty.Client
	baseID string
	table  string

	logger *logger.Logger
}

// NewAirtableClient constructs the spreadsheet-database implementation of
// [RecordsClient].
func NewAirtableClient(cfg config.Airtable, timeout time.Duration, logger *logger.Logger) RecordsClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json")

	return &airtableClient{client: client, baseID: cfg.BaseID, table: cfg.Table, logger: logger}
}

// Ping implements [RecordsClient]. It lists a single record of the configured
// table, which fails with 401/403 when the stored credentials are invalid.
func (c *airtableClient) Ping(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"baseID": c.baseID,
			"table":  c.table,
		}).
		SetQueryParam("maxRecords", "1").
		Get("/{baseID}/{table}")
	if err != nil {
		return nil, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
