package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrHeaderNotFound           = errors.New("no valid header row found")
	ErrIdentifierColumnNotFound = errors.New("no ISBN/EAN column found")
	ErrExclusionParse           = errors.New("exclusion file unreadable")
	ErrParse                    = errors.New("malformed input")
)

// FileError ties a failure to the input file it came from.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func fileError(name string, err error) error {
	if err == nil {
		return nil
	}
	return &FileError{File: name, Err: err}
}

func parseError(format Format, err error) error {
	return fmt.Errorf("%w: read %s: %w", ErrParse, format, err)
}
