package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	payload := `{
		"app": {"name": "siterelay", "version": "1.0.0"},
		"server": {
			"address": "localhost:8080",
			"request_timeout": "30s",
			"allowed_origins": ["https://a.example.com"]
		},
		"webflow": {
			"api_token": "wf-token",
			"site_id": "site-1",
			"collection_id": "coll-1",
			"base_url": "https://cms.example.com/v2",
			"item_projection": {"id": "id", "name": "fieldData.name"},
			"raw_items": true
		},
		"airtable": {
			"api_key": "at-key",
			"base_id": "base-1",
			"table": "Inquiries"
		},
		"foxy": {
			"client_id": "client-1",
			"client_secret": "secret-1",
			"refresh_token": "refresh-1",
			"refresh_margin": "90s",
			"refresh_interval": "15m"
		},
		"proxy": {"allowed_hosts": ["api.example.com"]}
	}`

	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(payload)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := parseJSON(f.Name())
	require.NoError(t, err)

	assert.Equal(t, "siterelay", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example.com"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "wf-token", cfg.Webflow.Token)
	assert.Equal(t, "site-1", cfg.Webflow.SiteID)
	assert.Equal(t, "coll-1", cfg.Webflow.CollectionID)
	assert.Equal(t, map[string]string{"id": "id", "name": "fieldData.name"}, cfg.Webflow.ItemProjection)
	assert.True(t, cfg.Webflow.RawItems)

	assert.Equal(t, "at-key", cfg.Airtable.APIKey)
	assert.Equal(t, "base-1", cfg.Airtable.BaseID)
	assert.Equal(t, "Inquiries", cfg.Airtable.Table)

	assert.Equal(t, "client-1", cfg.Foxy.ClientID)
	assert.Equal(t, 90*time.Second, cfg.Foxy.RefreshMargin)
	assert.Equal(t, 15*time.Minute, cfg.Foxy.RefreshInterval)

	assert.Equal(t, []string{"api.example.com"}, cfg.Proxy.AllowedHosts)

	// The path of the file itself never propagates back into the config.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"1h"`, want: time.Hour},
		{name: "string with unit mix", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
