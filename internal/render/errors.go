package render

import "fmt"

// maxSourceLen bounds how much of a source string appears in error
// messages. Data-URL sources can be megabytes long; errors stay short.
const maxSourceLen = 50

// LoadError reports that an image source could not be fetched or decoded.
//
// Source holds a truncated identifier of the failed source, never the full
// payload. The underlying cause is available via errors.Unwrap.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(source string, err error) *LoadError {
	return &LoadError{Source: truncateSource(source), Err: err}
}

func truncateSource(s string) string {
	if len(s) <= maxSourceLen {
		return s
	}
	return s[:maxSourceLen] + "..."
}

// SurfaceError reports that a drawing surface could not be created. It is
// a configuration error, not a per-input failure, and is never retried.
type SurfaceError struct {
	Width  int
	Height int
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("create render surface %dx%d: invalid dimensions", e.Width, e.Height)
}
