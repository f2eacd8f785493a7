// Package services holds the application use cases shared by the CLI and
// the HTTP API: building and exporting lote reports, listing lotes,
// reloading the dataset and reporting health.
package services
