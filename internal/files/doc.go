// Package files writes generated reports to disk.
//
// Writes go to a temporary file in the target directory and are renamed into
// place once complete, so a failed export never leaves a truncated report
// behind.
package files
