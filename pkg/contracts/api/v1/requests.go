// Package api contains API contract definitions for the Upstream Lote Report.
// Version v1 represents the current stable API version.
package api

// ReportRequest holds the query parameters of GET /api/report.
type ReportRequest struct {
	Lote   string `json:"lote" query:"lote" validate:"required,max=64,lote"`
	Format string `json:"format,omitempty" query:"format" validate:"omitempty,oneof=json csv xlsx"`
}
