package utils

import "fmt"

// SourceUnavailableError represents an error indicating that an input could not be opened.
type SourceUnavailableError struct {
	Path string
	Err  error
}

// Error returns the error message for SourceUnavailableError.
func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Path, e.Err)
}

// Unwrap returns the underlying open error.
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError represents an error indicating that an output format is not known.
type UnsupportedFormatError struct {
	Format string
}

// Error returns the error message for UnsupportedFormatError.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q", e.Format)
}
