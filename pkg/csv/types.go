package csv

import (
	"fmt"
	"reflect"
	"strings"
)

// Type is the declared semantic type of a column.
type Type int

// Supported column types. Integer types up to 32 bits and Bool are parsed
// with int semantics, wider integers with 64-bit semantics, and both float
// types with floating point semantics. See Value for the coercion rules.
const (
	String Type = iota
	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64

	numTypes
)

var typeNames = [...]string{
	String:  "string",
	Bool:    "bool",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// String returns the Go name of the type.
func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is one of the supported column types.
func (t Type) Valid() bool {
	return t >= String && t < numTypes
}

var kinds = [...]reflect.Kind{
	String:  reflect.String,
	Bool:    reflect.Bool,
	Int:     reflect.Int,
	Int8:    reflect.Int8,
	Int16:   reflect.Int16,
	Int32:   reflect.Int32,
	Int64:   reflect.Int64,
	Uint:    reflect.Uint,
	Uint8:   reflect.Uint8,
	Uint16:  reflect.Uint16,
	Uint32:  reflect.Uint32,
	Uint64:  reflect.Uint64,
	Float32: reflect.Float32,
	Float64: reflect.Float64,
}

// Kind returns the reflect.Kind of the Go type values of t are stored as.
func (t Type) Kind() reflect.Kind {
	if !t.Valid() {
		return reflect.Invalid
	}
	return kinds[t]
}

// TypeOfKind returns the column type for a reflect.Kind.
func TypeOfKind(k reflect.Kind) (Type, bool) {
	for t, kind := range kinds {
		if kind == k {
			return Type(t), true
		}
	}
	return 0, false
}

// typeAliases maps accepted spellings to types. Besides the Go names it
// accepts the C++ spellings used by older descriptor files.
var typeAliases = map[string]Type{
	"text":               String,
	"str":                String,
	"std::string":        String,
	"char":               Int8,
	"signed char":        Int8,
	"unsigned char":      Uint8,
	"short":              Int16,
	"unsigned short":     Uint16,
	"unsigned":           Uint32,
	"unsigned int":       Uint32,
	"long":               Int64,
	"long long":          Int64,
	"unsigned long":      Uint64,
	"unsigned long long": Uint64,
	"float":              Float32,
	"double":             Float64,
}

// ParseType parses a type name such as "int64", "double" or "string".
// Note that "int" is the Go int, which is 64 bits wide on common platforms.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// ParseTypes parses a list of type names separated by sep.
func ParseTypes(list string, sep string) ([]Type, error) {
	parts := strings.Split(list, sep)
	types := make([]Type, 0, len(parts))
	for _, p := range parts {
		t, err := ParseType(p)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
