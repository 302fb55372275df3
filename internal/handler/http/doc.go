// Package http implements the HTTP transport layer of the wallet gateway.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as transport-security enforcement, request
// tracing, access logging, response compression, session decoding, and the
// last-resort fault boundary are handled in this package before requests
// are delegated to the collaborator gateways.
package http
