// Package timeouts defines the timeout values shared by the site process.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// RelayRequest caps a single outbound form relay request.
const RelayRequest = 10 * time.Second

// TelemetryShutdown caps the final span flush on exit.
const TelemetryShutdown = 5 * time.Second
