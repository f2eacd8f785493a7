// Package validation checks CLI file arguments and HTTP request parameters.
package validation
