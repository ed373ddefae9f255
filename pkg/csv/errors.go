// Package csv provides error types for typed CSV tables.
package csv

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-tables/internal/source"
)

// Common errors
var (
	// ErrOpen indicates the source could not be opened or read.
	ErrOpen = source.ErrOpen

	// ErrFieldCount indicates a record has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrOutOfRange indicates a row or column index outside the table.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupportedType indicates a column type outside the supported set.
	ErrUnsupportedType = errors.New("unsupported column type")

	// ErrInvalidOptions indicates a separator or column count that cannot
	// be used. It is reported before any line is read.
	ErrInvalidOptions = source.ErrInvalidOptions

	// ErrNilTable indicates a nil *Table passed where a loaded table is
	// required.
	ErrNilTable = errors.New("nil table")
)

// OpenError records a failure to open or read the CSV source.
// It matches ErrOpen with errors.Is.
type OpenError = source.Error

// FieldCountError reports a data line whose field count does not match the
// table's column count. It aborts construction of the whole table.
type FieldCountError struct {
	// Row is the 1-based data row the line would have become.
	Row int
	// Line is the 1-based physical line in the source, comments included.
	// It is 0 when the records were not read from text, as in FromAST.
	Line int
	// Got is the number of fields found on the line.
	Got int
	// Expected is the table's column count.
	Expected int
}

// Error returns a formatted error message with position information.
func (e *FieldCountError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("inconsistent CSV: row %d contains %d values, expected %d",
			e.Row, e.Got, e.Expected)
	}
	return fmt.Sprintf("inconsistent CSV: row %d (line %d) contains %d values, expected %d",
		e.Row, e.Line, e.Got, e.Expected)
}

// Unwrap returns ErrFieldCount.
func (e *FieldCountError) Unwrap() error {
	return ErrFieldCount
}

// RangeError reports an out of range row or column index.
type RangeError struct {
	Index int
	Len   int
	// Column is set when Index is a column index.
	Column bool
}

// Error returns a formatted error message.
func (e *RangeError) Error() string {
	what := "row"
	if e.Column {
		what = "column"
	}
	return fmt.Sprintf("%s %d out of range [0, %d)", what, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
