package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Source errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Destination errors
	ErrInvalidDestination = errors.New("invalid or empty destination path")

	// Operation errors
	ErrCancelled = errors.New("operation cancelled")

	// Archive errors
	ErrNotArchive = errors.New("file is not a readable zip archive")
)
