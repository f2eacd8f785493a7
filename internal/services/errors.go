package services

import "errors"

// Service errors
var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrDatasetNotLoaded  = errors.New("dataset not loaded")
)
