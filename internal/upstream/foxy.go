package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/siterelay/internal/config"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/models"
	"github.com/go-resty/resty/v2"
)

const apiVersionHeader = "FOXY-API-VERSION"

type foxyClient struct {
	client *resty.Client
	cfg    config.Foxy

	// now is swapped in tests to control expiry checks.
	now func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time

	logger *logger.Logger
}

// NewFoxyClient constructs the cart-platform implementation of
// [CheckoutClient].
//
// The access token obtained from the token endpoint is cached together with
// its expiry and reused until it enters the configured refresh margin; it is
// not re-requested on every call.
func NewFoxyClient(cfg config.Foxy, timeout time.Duration, logger *logger.Logger) CheckoutClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &foxyClient{
		client: client,
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

// Refresh implements [CheckoutClient]. It always performs the token exchange,
// regardless of the cached token's remaining lifetime.
func (c *foxyClient) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.refreshLocked(ctx)
	return err
}

// Forward implements [CheckoutClient]. It relays one call to the cart API
// with a valid access token and the fixed API version header.
func (c *foxyClient) Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*Result, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader(apiVersionHeader, "1").
		SetHeader("Accept", "application/json")

	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if len(body) > 0 && carriesBody(method) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, "/"+strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("checkout forward request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &Result{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// accessToken returns the cached token, refreshing it first when it is
// missing or within the refresh margin of expiring.
func (c *foxyClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiry.Add(-c.cfg.RefreshMargin)) {
		return c.token, nil
	}

	return c.refreshLocked(ctx)
}

// refreshLocked performs the refresh-token grant. Callers must hold c.mu.
func (c *foxyClient) refreshLocked(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": c.cfg.RefreshToken,
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
		}).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var token models.CheckoutToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response carries no access token")
	}

	c.token = token.AccessToken
	c.expiry = token.ExpiresAt(c.now())
	c.logger.Debug().Time("expiry", c.expiry).Msg("checkout access token refreshed")

	return c.token, nil
}
