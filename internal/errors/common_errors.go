package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeFileNotFound ErrorType = "FILE_NOT_FOUND"
	ErrTypeLoad         ErrorType = "LOAD"
	ErrTypeMissingInput ErrorType = "MISSING_INPUT"
	ErrTypeValidation   ErrorType = "VALIDATION"
	ErrTypeStorage      ErrorType = "STORAGE"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewFileNotFoundError reports a missing input file. The path is kept in the
// error context under "path".
func NewFileNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeFileNotFound, fmt.Sprintf("no se encontró el archivo %s", path), cause).
		WithContext("path", path)
}

// NewLoadError reports any other failure while reading the input table.
func NewLoadError(message string, cause error) *AppError {
	return NewAppError(ErrTypeLoad, message, cause)
}

// NewMissingInputError reports that a required user input was left empty.
func NewMissingInputError(field, message string) *AppError {
	return NewAppError(ErrTypeMissingInput, message, nil).WithContext("field", field)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewAppValidationError creates a validation error for AppError type
func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or ""
// when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err carries an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}
