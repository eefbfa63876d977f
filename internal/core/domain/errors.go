// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Prefix errors
	ErrInvalidPrefix = errors.New("invalid /24 prefix")

	// Scan option errors
	ErrInvalidTimeout     = errors.New("probe timeout must be greater than zero")
	ErrInvalidConcurrency = errors.New("concurrency limit must be at least 1")
	ErrScanCanceled       = errors.New("scan was canceled")

	// Prober errors
	ErrNoProberAvailable = errors.New("no prober available")
	ErrProberNotFound    = errors.New("prober not found")

	// Configuration errors
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigLoadFailed = errors.New("failed to load configuration")

	// Export errors
	ErrExportFailed      = errors.New("export failed")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidOutputPath = errors.New("invalid output path")
)
