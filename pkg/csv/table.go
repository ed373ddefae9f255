package csv

import (
	"iter"
	"slices"
)

// Row is one record: one Value per column, in column order.
type Row []Value

// Strings returns the text of every value in the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.Text()
	}
	return out
}

// Table is a fully loaded, read-only CSV table.
//
// A Table is built once by one of the Read functions and never modified
// afterwards, so it is safe for concurrent use by multiple goroutines.
// Accessors return copies, callers cannot change the table through them.
type Table struct {
	types   []Type // one per column; nil for uniform tables
	elem    Type   // column type of uniform tables
	uniform bool
	cols    int
	rows    []Row
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cols returns the number of values in every record. For tables with
// declared column types this is the number of types. For uniform tables it
// is the explicit column count, or the width of the first record when the
// count was inferred, which leaves it 0 for an empty table.
func (t *Table) Cols() int {
	return t.cols
}

// Uniform reports whether all columns share a single type.
func (t *Table) Uniform() bool {
	return t.uniform
}

// Types returns the type of each column.
func (t *Table) Types() []Type {
	if !t.uniform {
		return slices.Clone(t.types)
	}
	types := make([]Type, t.cols)
	for i := range types {
		types[i] = t.elem
	}
	return types
}

// ColumnType returns the type of column i.
func (t *Table) ColumnType(i int) Type {
	if t.uniform {
		return t.elem
	}
	return t.types[i]
}

// Row returns the record at index i, counting from 0.
// It fails with a *RangeError if i is negative or not less than Len.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, &RangeError{Index: i, Len: len(t.rows)}
	}
	return slices.Clone(t.rows[i]), nil
}

// At returns the value at row i, column j.
// It fails with a *RangeError if either index is outside the table.
func (t *Table) At(i, j int) (Value, error) {
	if i < 0 || i >= len(t.rows) {
		return Value{}, &RangeError{Index: i, Len: len(t.rows)}
	}
	row := t.rows[i]
	if j < 0 || j >= len(row) {
		return Value{}, &RangeError{Index: j, Len: len(row), Column: true}
	}
	return row[j], nil
}

// All iterates over the records in source order.
//
//	for i, row := range table.All() {
//	    fmt.Println(i, row[0].Int())
//	}
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range t.rows {
			if !yield(i, slices.Clone(row)) {
				return
			}
		}
	}
}

// Rows returns a copy of all records.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Equal reports whether t and other hold the same column types and records.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.cols != other.cols || len(t.rows) != len(other.rows) {
		return false
	}
	if !slices.Equal(t.Types(), other.Types()) {
		return false
	}
	for i := range t.rows {
		if !slices.Equal(t.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}
