// Package middleware provides HTTP middleware for lumen servers:
// Prometheus request metrics and OpenTelemetry tracing. Both are plain
// func(http.Handler) http.Handler wrappers, so they compose with any
// chi or net/http stack.
package middleware
