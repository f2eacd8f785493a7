package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"upstreamcli/internal/infrastructure"
)

// Common error types following RFC 7807
const (
	TypeValidation  = "/errors/validation"
	TypeNotFound    = "/errors/not-found"
	TypeRateLimit   = "/errors/rate-limit"
	TypeInternal    = "/errors/internal"
	TypeServiceDown = "/errors/service-unavailable"
	TypeTimeout     = "/errors/timeout"
)

// Domain-specific error types
const (
	TypeDataNotFound  = "/errors/data/not-found"
	TypeDataCorrupted = "/errors/data/corrupted"
	TypeMissingInput  = "/errors/input/missing"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       logger.With(slog.String("component", "error_handler")),
		includeStack: includeStack,
	}
}

// HandleError converts any error to RFC 7807 format and responds
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	traceID := infrastructure.GetTraceID(r.Context())

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)

	problem := h.ErrorToProblem(err, r)
	if traceID != "" {
		problem.WithExtension("trace_id", traceID)
	}

	if h.includeStack {
		problem.WithExtension("stack", getStackTrace())
	}

	if err := problem.Write(w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write problem response",
			slog.String("error", err.Error()))
	}
}

// ErrorToProblem converts an error to RFC 7807 Problem Details
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProblemDetails(
			http.StatusGatewayTimeout,
			TypeTimeout,
			"Request Timeout",
			"The request took too long to process and was cancelled",
			r.URL.Path,
		)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return h.apiErrorToProblem(apiErr, r)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return h.appErrorToProblem(appErr, r)
	}

	return NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred while processing your request",
		r.URL.Path,
	)
}

// appErrorToProblem maps the report error taxonomy onto HTTP problems.
// Load failures are terminal for every report, so they surface as 503.
func (h *ErrorHandler) appErrorToProblem(appErr *AppError, r *http.Request) *ProblemDetails {
	var problem *ProblemDetails
	switch appErr.Type {
	case ErrTypeFileNotFound:
		problem = NewProblemDetails(http.StatusServiceUnavailable, TypeDataNotFound,
			"Dataset Not Found", appErr.Message, r.URL.Path)
		if path, ok := appErr.Context["path"]; ok {
			problem.WithExtension("path", path)
		}
	case ErrTypeLoad:
		problem = NewProblemDetails(http.StatusServiceUnavailable, TypeDataCorrupted,
			"Dataset Load Failed", appErr.Error(), r.URL.Path)
	case ErrTypeMissingInput:
		problem = NewProblemDetails(http.StatusBadRequest, TypeMissingInput,
			"Missing Input", appErr.Message, r.URL.Path)
		if field, ok := appErr.Context["field"]; ok {
			problem.WithExtension("field", field)
		}
	case ErrTypeValidation:
		problem = NewProblemDetails(http.StatusBadRequest, TypeValidation,
			"Validation Failed", appErr.Message, r.URL.Path)
	case ErrTypeStorage:
		problem = NewProblemDetails(http.StatusInternalServerError, TypeInternal,
			"Storage Error", appErr.Message, r.URL.Path)
	default:
		problem = NewProblemDetails(http.StatusInternalServerError, TypeInternal,
			"Internal Server Error", "An unexpected error occurred while processing your request", r.URL.Path)
	}
	return problem.WithExtension("error_code", string(appErr.Type))
}

// apiErrorToProblem converts APIError to ProblemDetails
func (h *ErrorHandler) apiErrorToProblem(apiErr *APIError, r *http.Request) *ProblemDetails {
	problemType := TypeInternal
	switch apiErr.ErrorCode {
	case "VALIDATION_FAILED", "INVALID_REQUEST", "MISSING_PARAMETER":
		problemType = TypeValidation
	case "NOT_FOUND":
		problemType = TypeNotFound
	case "RATE_LIMIT_EXCEEDED":
		problemType = TypeRateLimit
	case "SERVICE_UNAVAILABLE":
		problemType = TypeServiceDown
	}

	problem := NewProblemDetails(
		apiErr.StatusCode,
		problemType,
		http.StatusText(apiErr.StatusCode),
		apiErr.Message,
		r.URL.Path,
	).WithExtension("error_code", apiErr.ErrorCode)

	if apiErr.Details != nil {
		problem.WithExtension("details", apiErr.Details)
	}

	return problem
}

// NotFound handles 404 errors
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	_ = NewProblemDetails(
		http.StatusNotFound,
		TypeNotFound,
		"Not Found",
		"The requested resource was not found",
		r.URL.Path,
	).Write(w)
}

// MethodNotAllowed handles 405 errors
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = NewProblemDetails(
		http.StatusMethodNotAllowed,
		"/errors/method-not-allowed",
		"Method Not Allowed",
		"The requested method is not allowed for this resource",
		r.URL.Path,
	).Write(w)
}

// getStackTrace returns a trimmed stack trace
func getStackTrace() string {
	buf := debug.Stack()
	if len(buf) > 4096 {
		buf = buf[:4096]
	}
	return string(buf)
}
