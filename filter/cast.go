package filter

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// CastType is the target type of a scalar before it reaches a handler
// or a predicate.
type CastType uint8

const (
	CastNone CastType = iota
	CastInt
	CastBool
	CastFloat
	// CastDouble behaves exactly like CastFloat.
	CastDouble
	// CastArray boxes a scalar into a one item list.
	CastArray
	// CastObject boxes a scalar into a record with the single field "scalar".
	CastObject
)

// ParseCastType maps a cast name to its CastType. Unknown names are
// CastNone, the second result tells them apart from an explicit none.
func ParseCastType(name string) (CastType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "integer", "int":
		return CastInt, true
	case "boolean", "bool":
		return CastBool, true
	case "float", "real":
		return CastFloat, true
	case "double":
		return CastDouble, true
	case "array":
		return CastArray, true
	case "object":
		return CastObject, true
	case "", "none":
		return CastNone, true
	}
	return CastNone, false
}

func (c CastType) String() string {
	switch c {
	case CastNone:
		return "none"
	case CastInt:
		return "integer"
	case CastBool:
		return "boolean"
	case CastFloat:
		return "float"
	case CastDouble:
		return "double"
	case CastArray:
		return "array"
	case CastObject:
		return "object"
	}
	return "cast(" + strconv.Itoa(int(c)) + ")"
}

// Coerce converts a scalar to the target type. Lists and records are
// returned unchanged.
func Coerce(v Value, c CastType) Value {
	if !v.IsScalar() {
		return v
	}
	switch c {
	case CastInt:
		return Int(toInt(v))
	case CastBool:
		return Bool(toBool(v))
	case CastFloat, CastDouble:
		return Float(toFloat(v))
	case CastArray:
		if v.IsNull() {
			return List()
		}
		return List(v)
	case CastObject:
		if v.IsNull() {
			return Record(map[string]Value{})
		}
		return Record(map[string]Value{"scalar": v})
	}
	return v
}

func toInt(v Value) int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return floatToInt(v.f)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		prefix, isInt := numericPrefix(v.s)
		if prefix == "" {
			return 0
		}
		if isInt {
			// ParseInt saturates on overflow
			i, err := strconv.ParseInt(prefix, 10, 64)
			if err == nil || errors.Is(err, strconv.ErrRange) {
				return i
			}
		}
		f, _ := strconv.ParseFloat(prefix, 64)
		return floatToInt(f)
	}
	return 0
}

func toFloat(v Value) float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		prefix, _ := numericPrefix(v.s)
		if prefix == "" {
			return 0
		}
		f, _ := strconv.ParseFloat(prefix, 64)
		return f
	}
	return 0
}

func toBool(v Value) bool {
	switch v.kind {
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindBool:
		return v.b
	case KindString:
		return v.s != "" && v.s != "0"
	}
	return false
}

// floatToInt truncates towards zero. NaN, Inf and out of range values give 0.
func floatToInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// numericPrefix returns the leading number of s after optional
// whitespace: "42abc" gives "42", " -3.5e2x" gives "-3.5e2".
func numericPrefix(s string) (string, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start
	isInt := true
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if intDigits > 0 || j > i+1 {
			i = j
			isInt = false
		}
	}
	if i == start {
		return "", false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
			isInt = false
		}
	}
	return s[:i], isInt
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
