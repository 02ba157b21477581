// Package http implements the HTTP transport layer of the Message Store
// Service.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer.
package http
