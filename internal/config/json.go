package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Webflow struct {
		Token          string            `json:"api_token"`
		SiteID         string            `json:"site_id"`
		CollectionID   string            `json:"collection_id"`
		BaseURL        string            `json:"base_url"`
		ItemProjection map[string]string `json:"item_projection"`
		RawItems       bool              `json:"raw_items"`
	} `json:"webflow,omitempty"`

	Airtable struct {
		APIKey  string `json:"api_key"`
		BaseID  string `json:"base_id"`
		Table   string `json:"table"`
		BaseURL string `json:"base_url"`
	} `json:"airtable,omitempty"`

	Foxy struct {
		ClientID        string   `json:"client_id"`
		ClientSecret    string   `json:"client_secret"`
		RefreshToken    string   `json:"refresh_token"`
		TokenURL        string   `json:"token_url"`
		BaseURL         string   `json:"base_url"`
		RefreshMargin   Duration `json:"refresh_margin"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"foxy,omitempty"`

	Proxy struct {
		AllowedHosts []string `json:"allowed_hosts"`
	} `json:"proxy,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Webflow: Webflow{
			Token:          jsonCfg.Webflow.Token,
			SiteID:         jsonCfg.Webflow.SiteID,
			CollectionID:   jsonCfg.Webflow.CollectionID,
			BaseURL:        jsonCfg.Webflow.BaseURL,
			ItemProjection: jsonCfg.Webflow.ItemProjection,
			RawItems:       jsonCfg.Webflow.RawItems,
		},
		Airtable: Airtable{
			APIKey:  jsonCfg.Airtable.APIKey,
			BaseID:  jsonCfg.Airtable.BaseID,
			Table:   jsonCfg.Airtable.Table,
			BaseURL: jsonCfg.Airtable.BaseURL,
		},
		Foxy: Foxy{
			ClientID:        jsonCfg.Foxy.ClientID,
			ClientSecret:    jsonCfg.Foxy.ClientSecret,
			RefreshToken:    jsonCfg.Foxy.RefreshToken,
			TokenURL:        jsonCfg.Foxy.TokenURL,
			BaseURL:         jsonCfg.Foxy.BaseURL,
			RefreshMargin:   time.Duration(jsonCfg.Foxy.RefreshMargin),
			RefreshInterval: time.Duration(jsonCfg.Foxy.RefreshInterval),
		},
		Proxy: Proxy{
			AllowedHosts: jsonCfg.Proxy.AllowedHosts,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
