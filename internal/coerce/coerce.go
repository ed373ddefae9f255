// Package coerce converts field text into numbers the permissive way the C
// library does: leading whitespace is skipped, parsing stops at the first
// character that cannot extend the number, and text without a numeric prefix
// yields zero. None of these functions fail.
package coerce

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Scalar is the closed set of types a field can be coerced to.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// intWidth is the size in bytes of the C int the legacy rules are defined on.
// Integer kinds wider than this use Atol, the rest use Atoi.
const intWidth = 4

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func skipSpace(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// Atol parses the longest base 10 integer prefix of s.
// Out of range values saturate at math.MinInt64 and math.MaxInt64.
func Atol(s string) int64 {
	i := skipSpace(s)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n uint64
	overflow := false
	for ; i < len(s) && isDigit(s[i]); i++ {
		if overflow {
			continue
		}
		d := uint64(s[i] - '0')
		if n > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		n = n*10 + d
	}

	switch {
	case neg && (overflow || n > 1<<63):
		return math.MinInt64
	case neg:
		return -int64(n)
	case overflow || n > math.MaxInt64:
		return math.MaxInt64
	}
	return int64(n)
}

// Atoi parses s like Atol and truncates the result to 32 bits.
func Atoi(s string) int32 {
	return int32(Atol(s))
}

// Atof parses the longest floating point prefix of s. Decimal and
// hexadecimal forms are accepted, as are "inf", "infinity" and "nan" in any
// case. Values out of range become ±Inf or zero.
func Atof(s string) float64 {
	i := skipSpace(s)
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if n := matchSpecial(s[i:]); n > 0 {
		f, _ := strconv.ParseFloat(s[start:i+n], 64)
		return f
	}

	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		if end, exp := scanHex(s, i+2); end > i+2 {
			text := s[start:end]
			if !exp {
				text += "p0"
			}
			f, _ := strconv.ParseFloat(text, 64)
			return f
		}
		// "0x" without hex digits parses as the leading zero.
		return 0
	}

	end := scanDecimal(s, i)
	if end == i {
		return 0
	}
	f, _ := strconv.ParseFloat(s[start:end], 64)
	return f
}

// matchSpecial returns the length of an inf, infinity or nan prefix of s.
func matchSpecial(s string) int {
	lower := strings.ToLower(s[:min(len(s), 8)])
	switch {
	case strings.HasPrefix(lower, "infinity"):
		return 8
	case strings.HasPrefix(lower, "inf"), strings.HasPrefix(lower, "nan"):
		return 3
	}
	return 0
}

// scanDecimal returns the end of the decimal number starting at i, or i if
// there is none. An exponent is consumed only when digits follow it.
func scanDecimal(s string, i int) int {
	start := i
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return start
	}
	return scanExponent(s, i, 'e', 'E')
}

// scanHex returns the end of the hexadecimal mantissa and binary exponent
// starting at i, and whether an exponent was consumed.
func scanHex(s string, i int) (int, bool) {
	start := i
	digits := 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isHexDigit(s[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return start, false
	}
	end := scanExponent(s, i, 'p', 'P')
	return end, end > i
}

func scanExponent(s string, i int, lower, upper byte) int {
	if i >= len(s) || (s[i] != lower && s[i] != upper) {
		return i
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	if j >= len(s) || !isDigit(s[j]) {
		return i
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j
}

// Set stores s into v, which must be settable and of a Scalar kind.
// Strings are copied verbatim, numbers follow Atoi, Atol and Atof, and
// booleans are true when the Atoi value is non-zero.
// It reports false if v's kind is not supported.
func Set(v reflect.Value, s string) bool {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		v.SetBool(Atoi(s) != 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(integer(v.Type(), s))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(integer(v.Type(), s)))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(Atof(s))
	default:
		return false
	}
	return true
}

func integer(t reflect.Type, s string) int64 {
	if t.Size() > intWidth {
		return Atol(s)
	}
	return int64(Atoi(s))
}

// Supported reports whether values of kind k can be produced by Set.
func Supported(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// To converts s to T.
func To[T Scalar](s string) T {
	var out T
	Set(reflect.ValueOf(&out).Elem(), s)
	return out
}
