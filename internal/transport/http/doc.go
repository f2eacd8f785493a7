// Package http implements the HTTP handlers of the report API. Handlers stay
// thin: they parse and validate the request, delegate to a service and map
// errors to RFC 7807 problems through the shared ErrorHandler.
//
// Successful JSON responses use the envelope
//
//	{"status": "success", "data": ...}
//
// CSV and XLSX reports are served as attachments.
package http
