package csv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ArrowType returns the Arrow data type used for columns of type t.
// Int and Uint map to their 64-bit Arrow types.
func (t Type) ArrowType() arrow.DataType {
	switch t {
	case String:
		return arrow.BinaryTypes.String
	case Bool:
		return arrow.FixedWidthTypes.Boolean
	case Int8:
		return arrow.PrimitiveTypes.Int8
	case Int16:
		return arrow.PrimitiveTypes.Int16
	case Int32:
		return arrow.PrimitiveTypes.Int32
	case Int, Int64:
		return arrow.PrimitiveTypes.Int64
	case Uint8:
		return arrow.PrimitiveTypes.Uint8
	case Uint16:
		return arrow.PrimitiveTypes.Uint16
	case Uint32:
		return arrow.PrimitiveTypes.Uint32
	case Uint, Uint64:
		return arrow.PrimitiveTypes.Uint64
	case Float32:
		return arrow.PrimitiveTypes.Float32
	case Float64:
		return arrow.PrimitiveTypes.Float64
	}
	return nil
}

// ArrowSchema returns an Arrow schema for the table's columns. names gives
// the field names; if nil, columns are named "c0", "c1", ...
func (t *Table) ArrowSchema(names []string) (*arrow.Schema, error) {
	if names != nil && len(names) != t.cols {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrFieldCount, len(names), t.cols)
	}

	fields := make([]arrow.Field, t.cols)
	for i := range fields {
		name := fmt.Sprintf("c%d", i)
		if names != nil {
			name = names[i]
		}
		fields[i] = arrow.Field{
			Name:     name,
			Type:     t.ColumnType(i).ArrowType(),
			Nullable: false,
		}
	}
	return arrow.NewSchema(fields, nil), nil
}

// ArrowRecord copies the table into a single Arrow record batch allocated
// from mem. The caller must Release the record.
func (t *Table) ArrowRecord(mem memory.Allocator, names []string) (arrow.Record, error) {
	schema, err := t.ArrowSchema(names)
	if err != nil {
		return nil, err
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	b.Reserve(len(t.rows))

	for col := 0; col < t.cols; col++ {
		if err := appendColumn(b.Field(col), t.rows, col); err != nil {
			return nil, err
		}
	}
	return b.NewRecord(), nil
}

// appendColumn appends column col of rows to builder.
func appendColumn(builder array.Builder, rows []Row, col int) error {
	switch b := builder.(type) {
	case *array.StringBuilder:
		for _, row := range rows {
			b.Append(row[col].Text())
		}
	case *array.BooleanBuilder:
		for _, row := range rows {
			b.Append(row[col].Bool())
		}
	case *array.Int8Builder:
		for _, row := range rows {
			b.Append(int8(row[col].Int()))
		}
	case *array.Int16Builder:
		for _, row := range rows {
			b.Append(int16(row[col].Int()))
		}
	case *array.Int32Builder:
		for _, row := range rows {
			b.Append(int32(row[col].Int()))
		}
	case *array.Int64Builder:
		for _, row := range rows {
			b.Append(row[col].Int())
		}
	case *array.Uint8Builder:
		for _, row := range rows {
			b.Append(uint8(row[col].Uint()))
		}
	case *array.Uint16Builder:
		for _, row := range rows {
			b.Append(uint16(row[col].Uint()))
		}
	case *array.Uint32Builder:
		for _, row := range rows {
			b.Append(uint32(row[col].Uint()))
		}
	case *array.Uint64Builder:
		for _, row := range rows {
			b.Append(row[col].Uint())
		}
	case *array.Float32Builder:
		for _, row := range rows {
			b.Append(float32(row[col].Float()))
		}
	case *array.Float64Builder:
		for _, row := range rows {
			b.Append(row[col].Float())
		}
	default:
		return fmt.Errorf("%w: arrow builder %T", ErrUnsupportedType, builder)
	}
	return nil
}
