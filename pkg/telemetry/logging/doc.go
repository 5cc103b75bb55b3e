// Package logging configures the process-wide structured logger.
//
// Components obtain their loggers via slog.Default().With("component",
// name), so Setup must run before any component is constructed.
package logging
