// ABOUTME: Lenient integer coercion for the numeric workout fields.
// ABOUTME: Anything that does not read as a whole number becomes 0.
package models

import (
	"fmt"
	"math"
	"strconv"
)

// CoerceInt converts a loosely-typed value to an int, returning 0 when it
// cannot. This is a leniency policy, not validation: callers wanting strict
// input checking must validate before calling.
//
// Integer kinds pass through unchanged when they fit in an int. Floats with
// no fractional part convert directly, so the float64 a JSON decoder yields
// for 1000000 stays 1000000. Everything else is rendered with fmt.Sprint and
// parsed with strconv.Atoi, so "135" and 135.0 give 135 while "abc", "",
// 5.5, true and nil give 0.
func CoerceInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint:
		return uintOrZero(uint64(n))
	case uint64:
		return uintOrZero(n)
	case float32:
		return floatOrZero(float64(n))
	case float64:
		return floatOrZero(n)
	case string:
		return atoiOrZero(n)
	}
	return atoiOrZero(fmt.Sprint(v))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func uintOrZero(n uint64) int {
	if n > math.MaxInt {
		return 0
	}
	return int(n)
}

// floatOrZero converts whole floats inside the int range. NaN, infinities
// and fractional values give 0.
func floatOrZero(f float64) int {
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0
	}
	return int(f)
}
