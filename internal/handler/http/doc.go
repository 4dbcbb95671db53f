// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the bot's
// endpoints (/health, /inventory, /restore, /restores, /version, /metrics).
// Cross-cutting concerns such as request tracing, access logging, metrics,
// response compression, request timeouts and Slack request signing are
// handled in this package before requests are delegated to the service
// layer.
package http
