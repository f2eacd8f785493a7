// Package middleware contains the HTTP middleware chain of the report API:
// request IDs, structured request logging, panic recovery, rate limiting,
// request deadlines, security headers and OpenTelemetry instrumentation.
package middleware
