// Package http implements the HTTP transport layer of the finance advisor API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, metrics, CORS, response compression, request timeouts and rate
// limiting are handled in this package before requests are delegated to the
// service layer.
package http
