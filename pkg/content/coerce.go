package content

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ParseBool converts text to a boolean using a permissive, first-character rule.
//
// The input is lowercased and only its first character is inspected ('n' when empty).
// "t", "y" and "1" are true; any other digit greater than zero is true; everything else
// is false. "true", "Yes", "9xyz" are true while "0", "no", "-5" and "" are false.
// The result is always defined.
func ParseBool(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if s == "" {
		first = 'n'
	}

	switch unicode.ToLower(first) {
	case 't', 'y', '1':
		return true
	}
	return first >= '1' && first <= '9'
}

// ParseDouble parses text as a 64-bit float.
// Returns false if the text is not a number.
func ParseDouble(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt parses text as a double and truncates it toward zero, so "3.9" is 3.
// Returns false for non-numeric text and for values an int cannot hold.
func ParseInt(s string) (int, bool) {
	d, ok := ParseDouble(s)
	if !ok {
		return 0, false
	}
	d = math.Trunc(d)
	if math.IsNaN(d) || d < math.MinInt || d >= math.MaxInt {
		return 0, false
	}
	return int(d), true
}

// ParseUint parses text as a double and truncates it toward zero.
// Returns false for non-numeric text and for negative or oversized values.
func ParseUint(s string) (uint, bool) {
	d, ok := ParseDouble(s)
	if !ok {
		return 0, false
	}
	d = math.Trunc(d)
	if math.IsNaN(d) || d < 0 || d >= math.MaxUint {
		return 0, false
	}
	return uint(d), true
}

// ParseFloat parses text as a double and narrows it to float32.
func ParseFloat(s string) (float32, bool) {
	d, ok := ParseDouble(s)
	if !ok {
		return 0, false
	}
	return float32(d), true
}
