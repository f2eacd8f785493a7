// Package exporter renders a built report for people and spreadsheets.
//
// Text output draws each section with tablewriter and highlights notes with
// color. CSV output is UTF-8 with a byte order mark so Excel detects the
// encoding. XLSX output has one sheet per rendered section plus a Notas
// sheet listing every suppressed section.
//
// Example usage:
//
//	exp := exporter.New(logger)
//	err := exp.Write(os.Stdout, rep, domain.ReportFormatText)
package exporter
