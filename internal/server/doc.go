// Package server wires and runs the Message Store Service HTTP server.
//
// It owns the server lifecycle: startup together with the background
// workers, signal handling, and graceful shutdown.
package server
