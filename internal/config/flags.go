package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound/outbound request timeout (e.g., "30s", "1m")
//	-allowed-origins comma-separated CORS origin allow-list
//	-webflow-token CMS API bearer token
//	-webflow-site CMS site identifier
//	-webflow-collection CMS collection identifier
//	-airtable-key spreadsheet API key
//	-airtable-base spreadsheet base identifier
//	-airtable-table spreadsheet table name
//	-proxy-allowed-hosts comma-separated destination allow-list for /proxy
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var allowedOrigins string
	var webflowToken string
	var webflowSite string
	var webflowCollection string
	var airtableKey string
	var airtableBase string
	var airtableTable string
	var proxyAllowedHosts string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origins")
	flag.StringVar(&webflowToken, "webflow-token", "", "CMS API token")
	flag.StringVar(&webflowSite, "webflow-site", "", "CMS site ID")
	flag.StringVar(&webflowCollection, "webflow-collection", "", "CMS collection ID")
	flag.StringVar(&airtableKey, "airtable-key", "", "Spreadsheet API key")
	flag.StringVar(&airtableBase, "airtable-base", "", "Spreadsheet base ID")
	flag.StringVar(&airtableTable, "airtable-table", "", "Spreadsheet table name")
	flag.StringVar(&proxyAllowedHosts, "proxy-allowed-hosts", "", "Comma-separated proxy destination hosts")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitCommaList(allowedOrigins),
		},
		Webflow: Webflow{
			Token:        webflowToken,
			SiteID:       webflowSite,
			CollectionID: webflowCollection,
		},
		Airtable: Airtable{
			APIKey: airtableKey,
			BaseID: airtableBase,
			Table:  airtableTable,
		},
		Proxy: Proxy{
			AllowedHosts: splitCommaList(proxyAllowedHosts),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitCommaList splits a comma-separated flag value into trimmed non-empty
// elements. Returns nil for an empty input so mergo treats it as unset.
func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
