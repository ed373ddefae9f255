package csv

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/shapestone/shape-tables/internal/coerce"
)

// structInfo holds the column layout derived from a struct type.
type structInfo struct {
	// fields maps column index to struct field index
	fields []int
	types  []Type
	err    error
}

var structCache sync.Map // map[reflect.Type]*structInfo

// getStructInfo retrieves or computes the column layout of a struct type.
func getStructInfo(structType reflect.Type) *structInfo {
	if cached, ok := structCache.Load(structType); ok {
		return cached.(*structInfo)
	}
	info := computeStructInfo(structType)
	structCache.Store(structType, info)
	return info
}

// computeStructInfo maps exported fields, in declaration order, to columns.
// Fields tagged `csv:"-"` are skipped.
func computeStructInfo(structType reflect.Type) *structInfo {
	info := &structInfo{}
	if structType.Kind() != reflect.Struct {
		info.err = fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, structType)
		return info
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" || field.Tag.Get("csv") == "-" {
			continue
		}
		t, ok := TypeOfKind(field.Type.Kind())
		if !ok {
			info.err = fmt.Errorf("%w: field %s has type %s", ErrUnsupportedType, field.Name, field.Type)
			return info
		}
		info.fields = append(info.fields, i)
		info.types = append(info.types, t)
	}

	if len(info.fields) == 0 {
		info.err = fmt.Errorf("%w: %s has no exported fields", ErrUnsupportedType, structType)
	}
	return info
}

// TypesOf returns the column types described by struct type T: one column
// per exported field, in declaration order.
func TypesOf[T any]() ([]Type, error) {
	info := getStructInfo(reflect.TypeFor[T]())
	if info.err != nil {
		return nil, info.err
	}
	return append([]Type(nil), info.types...), nil
}

// ReadStructs loads records from r into values of struct type T. The
// column types are derived from T as by TypesOf.
//
// Example:
//
//	type Sample struct {
//	    ID    int32
//	    Name  string
//	    Score float64
//	}
//	samples, err := csv.ReadStructs[Sample](file, csv.DefaultReaderOptions())
func ReadStructs[T any](r io.Reader, opts ReaderOptions) ([]T, error) {
	types, err := TypesOf[T]()
	if err != nil {
		return nil, err
	}
	table, err := Read(r, types, opts)
	if err != nil {
		return nil, err
	}
	return Decode[T](table)
}

// ReadStructsFile is like ReadStructs but reads the named file.
func ReadStructsFile[T any](path string, opts ReaderOptions) ([]T, error) {
	types, err := TypesOf[T]()
	if err != nil {
		return nil, err
	}
	table, err := ReadFile(path, types, opts)
	if err != nil {
		return nil, err
	}
	return Decode[T](table)
}

// Decode copies the records of table into values of struct type T.
// The table must have one column per exported field of T.
func Decode[T any](table *Table) ([]T, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	info := getStructInfo(reflect.TypeFor[T]())
	if info.err != nil {
		return nil, info.err
	}
	if table.Cols() != len(info.fields) && table.Len() > 0 {
		return nil, fmt.Errorf("%w: table has %d columns, %s has %d fields",
			ErrFieldCount, table.Cols(), reflect.TypeFor[T](), len(info.fields))
	}

	out := make([]T, table.Len())
	for i, row := range table.rows {
		v := reflect.ValueOf(&out[i]).Elem()
		for col, fieldIdx := range info.fields {
			setField(v.Field(fieldIdx), row[col])
		}
	}
	return out, nil
}

// setField stores v into field. String cells are coerced from their text,
// so uniform String tables decode like typed ones.
func setField(field reflect.Value, v Value) {
	if v.Type() == String {
		coerce.Set(field, v.Text())
		return
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(v.Text())
	case reflect.Bool:
		field.SetBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.SetInt(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		field.SetUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		field.SetFloat(v.Float())
	}
}
