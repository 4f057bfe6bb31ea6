// Package server provides the MCP server context and the dedicated
// metrics server for the drivebridge application.
//
// # Key Components
//
// ServerContext carries the shared state tool handlers need: the Drive
// client (created lazily on first use) and the metrics recorder. Tokens
// are never stored here; every tool call carries the credentials it needs.
//
// MetricsServer serves Prometheus metrics and a health check on a port
// separate from the MCP transport, keeping operational endpoints away
// from tool traffic.
package server
