package csv

import (
	"math"
	"strconv"

	"github.com/shapestone/shape-tables/internal/coerce"
)

// Value is a single typed cell. The zero Value is an empty String.
type Value struct {
	typ  Type
	text string
	bits uint64 // integer two's complement, or float64 bits
}

// Convert coerces a field token to t.
//
// String copies the token verbatim. Numeric types never fail: leading
// whitespace is skipped, parsing stops at the first character that cannot
// extend the number, and a token without a numeric prefix yields zero.
// Integers narrower than 64 bits and Bool use 32-bit parsing and are then
// truncated to their width, 64-bit integers saturate. Bool is true when the
// parsed integer is non-zero.
func Convert(t Type, token string) Value {
	v := Value{typ: t}
	switch t {
	case String:
		v.text = token
	case Bool:
		if coerce.Atoi(token) != 0 {
			v.bits = 1
		}
	case Int8:
		v.bits = uint64(int64(int8(coerce.Atoi(token))))
	case Int16:
		v.bits = uint64(int64(int16(coerce.Atoi(token))))
	case Int32:
		v.bits = uint64(int64(coerce.Atoi(token)))
	case Uint8:
		v.bits = uint64(uint8(coerce.Atoi(token)))
	case Uint16:
		v.bits = uint64(uint16(coerce.Atoi(token)))
	case Uint32:
		v.bits = uint64(uint32(coerce.Atoi(token)))
	case Int:
		v.bits = uint64(int64(int(coerce.Atol(token))))
	case Uint:
		v.bits = uint64(uint(coerce.Atol(token)))
	case Int64, Uint64:
		v.bits = uint64(coerce.Atol(token))
	case Float32:
		v.bits = math.Float64bits(float64(float32(coerce.Atof(token))))
	case Float64:
		v.bits = math.Float64bits(coerce.Atof(token))
	}
	return v
}

// Type returns the column type of v.
func (v Value) Type() Type { return v.typ }

// Text returns the text of a String value, or the formatted value otherwise.
func (v Value) Text() string {
	if v.typ == String {
		return v.text
	}
	return v.String()
}

// Int returns v as a signed integer. Floats are truncated toward zero.
func (v Value) Int() int64 {
	switch v.typ {
	case String:
		return 0
	case Float32, Float64:
		return int64(v.Float())
	}
	return int64(v.bits)
}

// Uint returns v as an unsigned integer.
func (v Value) Uint() uint64 {
	switch v.typ {
	case String:
		return 0
	case Float32, Float64:
		return uint64(v.Float())
	}
	return v.bits
}

// Float returns v as a float64.
func (v Value) Float() float64 {
	switch v.typ {
	case String:
		return 0
	case Float32, Float64:
		return math.Float64frombits(v.bits)
	case Uint, Uint8, Uint16, Uint32, Uint64:
		return float64(v.bits)
	}
	return float64(int64(v.bits))
}

// Bool returns v as a bool. Numbers are true when non-zero.
func (v Value) Bool() bool {
	switch v.typ {
	case String:
		return false
	case Float32, Float64:
		return v.Float() != 0
	}
	return v.bits != 0
}

// Interface returns v as the Go type matching its column type,
// e.g. int16 for Int16 and string for String.
func (v Value) Interface() any {
	switch v.typ {
	case String:
		return v.text
	case Bool:
		return v.bits != 0
	case Int:
		return int(int64(v.bits))
	case Int8:
		return int8(v.bits)
	case Int16:
		return int16(v.bits)
	case Int32:
		return int32(v.bits)
	case Int64:
		return int64(v.bits)
	case Uint:
		return uint(v.bits)
	case Uint8:
		return uint8(v.bits)
	case Uint16:
		return uint16(v.bits)
	case Uint32:
		return uint32(v.bits)
	case Uint64:
		return v.bits
	case Float32:
		return float32(math.Float64frombits(v.bits))
	case Float64:
		return math.Float64frombits(v.bits)
	}
	return nil
}

// String formats v.
func (v Value) String() string {
	switch v.typ {
	case String:
		return v.text
	case Bool:
		return strconv.FormatBool(v.bits != 0)
	case Uint, Uint8, Uint16, Uint32, Uint64:
		return strconv.FormatUint(v.bits, 10)
	case Float32:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	}
	return strconv.FormatInt(int64(v.bits), 10)
}
