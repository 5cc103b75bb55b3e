// Package metrics provides Prometheus instrumentation for the
// validation pipeline and HTTP server.
//
// All metrics live in a collector-owned registry so tests can create
// isolated collectors without global registration conflicts. The
// collector exposes its registry through an HTTP handler suitable for
// mounting at /metrics.
package metrics
