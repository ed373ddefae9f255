// Package csv loads delimited text files into typed, in-memory tables.
//
// Every line of the input is one record. Fields are separated by a single
// separator character and there is no quoting or escaping, so a field can
// never contain the separator. Empty lines and lines starting with '#' or
// '!' are skipped.
//
// Each column has a declared Type. Tables are either heterogeneous, with a
// list of column types fixed when the table is read, or uniform, with one
// type shared by all columns and a column count that is given or inferred
// from the first record. Every record must have exactly the table's column
// count; a single mismatching line fails the whole load.
//
// Numeric fields are converted permissively: parsing stops at the first
// character that cannot extend the number and text without a numeric
// prefix becomes zero. Conversion never fails.
//
// # Thread Safety
//
// Loading is synchronous and single-threaded. A loaded Table is never
// modified, so it is safe for concurrent use by multiple goroutines.
//
// # Example usage with ReadFile:
//
//	types := []csv.Type{csv.Int, csv.String, csv.Float64}
//	table, err := csv.ReadFile("data.csv", types, csv.DefaultReaderOptions())
//	if err != nil {
//	    // handle error
//	}
//	for _, row := range table.All() {
//	    fmt.Println(row[0].Int(), row[1].Text(), row[2].Float())
//	}
//
// # Example usage with ReadUniform:
//
//	opts := csv.DefaultReaderOptions()
//	opts.Separator = ';'
//	table, err := csv.ReadUniform(strings.NewReader("a;b\nc;d"), csv.String, opts)
package csv

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shapestone/shape-tables/internal/source"
	"github.com/shapestone/shape-tables/internal/tokenizer"
)

// Read loads a table whose columns have the given types from r.
//
// The column count is len(types). A record with a different number of
// fields fails the load with a *FieldCountError and no table is returned.
func Read(r io.Reader, types []Type, opts ReaderOptions) (*Table, error) {
	b, err := newBuilder(types, opts)
	if err != nil {
		return nil, err
	}
	return b.finish(source.Read(r, b.line), "")
}

// ReadFile is like Read but reads the named file. The file is closed
// before ReadFile returns.
func ReadFile(path string, types []Type, opts ReaderOptions) (*Table, error) {
	b, err := newBuilder(types, opts)
	if err != nil {
		return nil, err
	}
	return b.finish(source.ReadFile(path, b.opts.Logger, b.line), path)
}

// ReadUniform loads a table whose columns all have type elem from r.
//
// If opts.Columns is 0 the first record sets the column count, otherwise
// every record must have opts.Columns fields.
func ReadUniform(r io.Reader, elem Type, opts ReaderOptions) (*Table, error) {
	b, err := newUniformBuilder(elem, opts)
	if err != nil {
		return nil, err
	}
	return b.finish(source.Read(r, b.line), "")
}

// ReadUniformFile is like ReadUniform but reads the named file.
func ReadUniformFile(path string, elem Type, opts ReaderOptions) (*Table, error) {
	b, err := newUniformBuilder(elem, opts)
	if err != nil {
		return nil, err
	}
	return b.finish(source.ReadFile(path, b.opts.Logger, b.line), path)
}

// ReadStrings loads a uniform table of String columns from r.
func ReadStrings(r io.Reader, opts ReaderOptions) (*Table, error) {
	return ReadUniform(r, String, opts)
}

// builder accumulates records while a source is scanned.
type builder struct {
	opts     ReaderOptions
	table    *Table
	splitter *tokenizer.Splitter
	fields   []string
}

func newBuilder(types []Type, opts ReaderOptions) (*builder, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no column types given", ErrUnsupportedType)
	}
	for i, t := range types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: column %d has %v", ErrUnsupportedType, i, t)
		}
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	t := &Table{
		types: append([]Type(nil), types...),
		cols:  len(types),
	}
	return &builder{
		opts:     opts,
		table:    t,
		splitter: tokenizer.NewSplitter(opts.Separator),
		fields:   make([]string, 0, len(types)),
	}, nil
}

func newUniformBuilder(elem Type, opts ReaderOptions) (*builder, error) {
	if !elem.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, elem)
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	t := &Table{
		elem:    elem,
		uniform: true,
		cols:    opts.Columns,
	}
	return &builder{
		opts:     opts,
		table:    t,
		splitter: tokenizer.NewSplitter(opts.Separator),
		fields:   make([]string, 0, max(opts.Columns, 1)),
	}, nil
}

// line handles one source line.
func (b *builder) line(lineNo int, line string) error {
	if isIgnored(line) {
		b.opts.Logger.Debug("skipping line", zap.Int("line", lineNo))
		return nil
	}

	t := b.table
	b.fields = b.splitter.Split(b.fields, line)

	if t.uniform && t.cols == 0 && len(t.rows) == 0 {
		t.cols = len(b.fields)
	}

	if len(b.fields) != t.cols {
		err := &FieldCountError{
			Row:      len(t.rows) + 1,
			Line:     lineNo,
			Got:      len(b.fields),
			Expected: t.cols,
		}
		b.opts.Logger.Warn("inconsistent CSV record",
			zap.Int("row", err.Row),
			zap.Int("line", lineNo),
			zap.Int("got", err.Got),
			zap.Int("expected", err.Expected))
		return err
	}

	row := make(Row, t.cols)
	for i, field := range b.fields {
		row[i] = Convert(t.ColumnType(i), field)
	}
	t.rows = append(t.rows, row)
	return nil
}

// finish discards everything on error, so a failed load never yields a
// partially filled table.
func (b *builder) finish(err error, path string) (*Table, error) {
	t := b.table
	b.table = nil
	if err != nil {
		return nil, err
	}
	t.rows = t.rows[:len(t.rows):len(t.rows)]
	b.opts.Logger.Info("csv table loaded",
		zap.String("path", path),
		zap.Int("rows", len(t.rows)),
		zap.Int("cols", t.cols),
		zap.Bool("uniform", t.uniform))
	return t, nil
}
