// Package extraction converts stored resume files (PDF or DOCX) into
// plain text plus a page count for scoring.
package extraction

import "fmt"

// UnsupportedFormatError indicates the file extension is not one of the
// supported resume formats.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q: only PDF and DOCX are allowed", e.Extension)
}

// ReadError indicates the file could not be opened or decoded.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read document %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
