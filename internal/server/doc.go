// Package server wires and runs the application's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown with a bounded deadline.
package server
