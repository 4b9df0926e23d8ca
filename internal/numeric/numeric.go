// Package numeric holds the fuzzy float arithmetic shared by numbers and
// colors. Sass treats two doubles as equal when they agree to Precision
// decimal places, and renders at most Precision fractional digits.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Precision is the number of fractional digits Sass keeps.
const Precision = 10

// Epsilon is the tolerance of fuzzy comparisons.
var Epsilon = math.Pow(10, -Precision-1)

// Equal reports whether a and b are equal to Precision digits.
func Equal(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= Epsilon
}

// Less reports a < b outside fuzzy equality.
func Less(a, b float64) bool {
	return a < b && !Equal(a, b)
}

// IsInt reports whether f is fuzzily an integer.
func IsInt(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return Equal(f, math.Round(f))
}

// AsInt returns f as an int when it is fuzzily integral.
func AsInt(f float64) (int, bool) {
	if !IsInt(f) {
		return 0, false
	}
	return int(math.Round(f)), true
}

// Round rounds half away from zero, treating values within Epsilon of .5 as .5.
func Round(f float64) float64 {
	if f > 0 {
		if Equal(f-math.Floor(f), 0.5) {
			return math.Ceil(f)
		}
		return math.Round(f)
	}
	if Equal(math.Ceil(f)-f, 0.5) {
		return math.Floor(f)
	}
	return math.Round(f)
}

// Clamp restricts f to [lo, hi].
func Clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

// InRange reports whether f lies in [lo, hi] allowing fuzzy edges.
func InRange(f, lo, hi float64) bool {
	return (f > lo || Equal(f, lo)) && (f < hi || Equal(f, hi))
}

// Format renders f the way CSS output expects: fixed notation, at most
// precision fractional digits, no trailing zeros and no negative zero.
func Format(f float64, precision int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if precision < 0 {
		precision = Precision
	}
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
