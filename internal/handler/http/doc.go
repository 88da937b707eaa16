// Package http implements the HTTP transport layer of the relay.
//
// It exposes route wiring, request handlers, and middleware for the REST
// surface. Cross-cutting concerns such as CORS, request tracing, access
// logging, and response compression are handled here before requests are
// delegated to the service layer. Handlers never talk to an upstream
// directly; they decode and pre-validate input, call a service, and map the
// outcome onto an HTTP response.
package http
