// ABOUTME: Tests for CoerceInt.
// ABOUTME: Covers the default-to-zero contract across input kinds.
package models

import (
	"math"
	"testing"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"int", 135, 135},
		{"int64", int64(225), 225},
		{"int32", int32(-5), -5},
		{"uint8", uint8(7), 7},
		{"numeric string", "135", 135},
		{"signed string", "+12", 12},
		{"negative string", "-5", -5},
		{"non-numeric string", "abc", 0},
		{"empty string", "", 0},
		{"padded string", " 12", 0},
		{"decimal string", "12.5", 0},
		{"whole float", 135.0, 135},
		{"fractional float", 5.5, 0},
		{"bool", true, 0},
		{"nil", nil, 0},
		{"uint", uint(9), 9},
		{"uint64", uint64(315), 315},
		{"uint64 overflow", uint64(math.MaxUint64), 0},
		{"large whole float", float64(1000000), 1000000},
		{"float just below a million", float64(999999), 999999},
		{"whole float32", float32(225), 225},
		{"negative whole float", -20.0, -20},
		{"float beyond int range", 1e300, 0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceInt(tt.input); got != tt.want {
				t.Errorf("CoerceInt(%#v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
