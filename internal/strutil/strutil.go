// Package strutil contains digit-string helpers shared by the arithmetic code.
package strutil

import "bytes"

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// Zeros returns a string of 'count' zero digits.
func Zeros(count int) string {
	if count <= 0 {
		return ""
	}
	if count <= len(manyZeros) {
		return string(manyZeros[:count])
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return string(result)
}

// PadLeft prepends zeros to s until it is 'width' characters long.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return Zeros(width-len(s)) + s
}

// PadRight appends zeros to s until it is 'width' characters long.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + Zeros(width-len(s))
}

// FirstNonZero returns the index of the first character of s that is not '0',
// or -1 if there is none.
func FirstNonZero(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return i
		}
	}
	return -1
}

// IsDigits reports whether s is a non-empty run of decimal digits.
func IsDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
