package inspect

import (
	"errors"
	"fmt"

	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be decoded.
var ErrInvalidFormat = errors.New("invalid format")

// ErrNotSequence indicates the decoded data is not an ordered sequence.
var ErrNotSequence = errors.New("data is not a sequence of records")

// ErrSheetNotFound indicates the requested sheet is absent from a workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMissingField indicates a record lacks the requested field.
var ErrMissingField = errors.New("field not found")

// ErrNotRecord indicates a sequence element is not an object.
var ErrNotRecord = models.ErrNotObject

// FieldError represents a failed field lookup on one record.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a new FieldError.
func NewFieldError(index int, field string, err error) *FieldError {
	return &FieldError{
		Index: index,
		Field: field,
		Err:   err,
	}
}
