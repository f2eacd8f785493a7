// Package dataset loads the integrated hydrocarbon table into an immutable
// in-memory Dataset.
//
// Loading trims the Lote and Tipo de Hidrocarburo fields, extracts the first
// four-digit run of the Año field as the year and coerces every numeric
// column to a non-negative float, with anything unparseable becoming zero.
// A Provider caches one Dataset per process and collapses concurrent loads.
package dataset
