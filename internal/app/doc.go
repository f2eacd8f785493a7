// Package app wires the report service together and manages its lifecycle.
//
// # Initialization Flow
//
//  1. Load configuration from defaults, YAML file and environment
//  2. Initialize logging and OpenTelemetry
//  3. Resolve the data file and create the dataset provider
//  4. Initialize services with their dependencies
//  5. Set up HTTP handlers and middleware
//  6. Configure the HTTP server
//
// # Graceful Shutdown
//
// Run handles SIGINT and SIGTERM: active requests are drained within the
// configured shutdown timeout and telemetry providers are flushed.
//
// Initialization errors are returned to the caller; the package never calls
// os.Exit.
package app
