package toxlsx

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPath indicates a missing or unresolvable output path.
var ErrUnsupportedPath = errors.New("unsupported output path")

// ErrUnclassifiableValue is reserved for values rejected by future schema
// constraints. Every value currently classifies.
var ErrUnclassifiableValue = errors.New("unclassifiable value")

// ErrWriteFailure matches any *WriteError.
var ErrWriteFailure = errors.New("sheet write failed")

// ErrSaveFailure matches any *SaveError.
var ErrSaveFailure = errors.New("workbook save failed")

// WriteError represents a failed cell write. Writes are not retried.
type WriteError struct {
	Sheet string
	Row   int // zero-based
	Col   int // zero-based
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error in sheet %q at row %d, column %d: %v", e.Sheet, e.Row, e.Col, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWriteFailure.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}

// NewWriteError creates a new WriteError.
func NewWriteError(sheet string, row, col int, err error) *WriteError {
	return &WriteError{Sheet: sheet, Row: row, Col: col, Err: err}
}

// SaveError represents a failure writing the workbook file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSaveFailure.
func (e *SaveError) Is(target error) bool {
	return target == ErrSaveFailure
}
