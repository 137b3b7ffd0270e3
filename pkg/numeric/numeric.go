// Package numeric coerces raw form-entered strings into numbers. Every
// user-facing field arrives as a string that may be empty or unparsable;
// the calculation core treats those as zero and never errors on them.
package numeric

import (
	"strconv"
	"strings"
)

// Coerce parses s as a floating point number. Empty or unparsable input
// yields 0.
func Coerce(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return val
}

// CoerceInt parses s as an integer, truncating fractional input. Empty or
// unparsable input yields 0.
func CoerceInt(s string) int {
	return int(Coerce(s))
}

// FormatWhole renders a whole-valued number back into a form-field string.
func FormatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsBlank reports whether s contains no usable content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Valid reports whether s parses as a non-negative number. Negative
// entries are rejected at input time rather than clamped.
func Valid(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return false
	}
	return val >= 0
}
