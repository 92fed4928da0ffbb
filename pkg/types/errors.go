// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound indicates an input path that does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrMalformedSource indicates an input file that exists but cannot be
	// read as a workbook or delimited table.
	ErrMalformedSource = errors.New("malformed source")

	// ErrDestinationWrite indicates an output that could not be written.
	ErrDestinationWrite = errors.New("destination write failure")
)

// SourceError ties an I/O failure to the file it happened on. Kind is one of
// the sentinels above so callers can branch with errors.Is.
type SourceError struct {
	Path string
	Kind error
	Err  error
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *SourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewSourceError creates a SourceError.
func NewSourceError(kind error, path string, err error) *SourceError {
	return &SourceError{Path: path, Kind: kind, Err: err}
}
