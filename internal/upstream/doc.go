// Package upstream implements the outbound side of the relay: authenticated
// HTTP clients for the CMS, spreadsheet-database, and cart-platform APIs,
// plus the generic forwarder behind the /proxy route.
//
// Every client attaches its static bearer credential, forwards the call with
// the configured timeout, and maps non-2xx responses to [*Error] so handlers
// can mirror the upstream status and attach the upstream body as details.
// There is no retry, backoff, or circuit breaking: each inbound request
// performs at most one upstream call (the cart client may add one token
// exchange when its cached token is stale).
package upstream
