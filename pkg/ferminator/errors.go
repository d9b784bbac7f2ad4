package ferminator

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ConvertError represents an error during conversion.
type ConvertError struct {
	Sheet string
	Stage string // "document", "grid", "graph"
	Err   error
}

func (e *ConvertError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("conversion error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError creates a new ConvertError.
func NewConvertError(sheet, stage string, err error) *ConvertError {
	return &ConvertError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
