// Package server exposes the validation engine over HTTP.
//
// The surface is deliberately small: a service index at /, a liveness
// probe at /health, single-document validation at /validate, and the
// Prometheus exposition endpoint. Requests pass through request-ID,
// logging and panic-recovery middleware.
//
// The server holds the active rule specification behind a lock so a
// rules watcher can swap it in while requests are in flight. Start
// blocks until the context is cancelled, a shutdown signal arrives, or
// the listener fails; shutdown drains in-flight requests up to the
// configured timeout.
package server
