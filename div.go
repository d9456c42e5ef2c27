// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"strconv"
	"strings"

	mu "github.com/avdva/strnum/internal/mathutil"
	su "github.com/avdva/strnum/internal/strutil"
)

// Div divides dividend by divisor. A numerically zero divisor yields
// DivideByZero; the check is a cheap digit scan performed before any
// parsing. The quotient truncates at the precision ceiling, and its
// fractional part is trimmed of trailing zeros.
func Div(dividend, divisor string) Result {
	if isZeroLiteral(divisor) {
		return failure(DivideByZero)
	}
	a, err := parseLiteral(dividend)
	if err != nil {
		return illegal(dividend)
	}
	b, err := parseLiteral(divisor)
	if err != nil {
		return illegal(divisor)
	}
	quo, st := divNumbers(a, b)
	if st != Success {
		return failure(st)
	}
	quo.sci = a.sci || b.sci
	return success(quo)
}

// isZeroLiteral reports whether a literal is a well-formed zero, with a
// plain character scan instead of full parsing. Malformed input is not
// zero; it gets rejected as IllegalNumber later. A scientific exponent
// cannot change zeroness, so only its shape is checked.
func isZeroLiteral(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp := s[i+1:]
		if strings.HasPrefix(exp, "-") || strings.HasPrefix(exp, "+") {
			exp = exp[1:]
		}
		if !su.IsDigits(exp) {
			return false
		}
		s = s[:i]
	}
	integ := s
	if i := strings.IndexByte(s, delim); i >= 0 {
		var frac string
		integ, frac = s[:i], s[i+1:]
		if !su.IsDigits(frac) || su.FirstNonZero(frac) >= 0 {
			return false
		}
		if len(integ) == 0 {
			return true
		}
	}
	return su.IsDigits(integ) && su.FirstNonZero(integ) < 0
}

// divNumbers converts the division into the integer domain by stripping
// the decimal points, shifts the numerator as close to the native
// maximum as the precision ceiling allows, performs one truncating
// native division, and reinserts the point at the position implied by
// the shift. The sign of the result is the XOR of the operand signs.
func divNumbers(a, b Number) (Number, Status) {
	num, ok := parseMagnitude(a.integ + a.frac)
	if !ok || num > maxNative() {
		return Number{}, GeneralFailure
	}
	den, ok := parseMagnitude(b.integ + b.frac)
	if !ok || den > maxNative() {
		return Number{}, GeneralFailure
	}
	if den == 0 {
		return Number{}, DivideByZero
	}
	if num == 0 {
		return makeNumber(false, "0", "", false), Success
	}

	shift := mu.Log10(maxNative() / num)
	num *= mu.Pow10(shift)
	quo := num / den
	// value = quo * 10^exp
	exp := len(b.frac) - len(a.frac) - shift

	digits := strconv.FormatUint(quo, 10)
	var integ, frac string
	if exp >= 0 {
		integ = digits + su.Zeros(exp)
	} else if width := -exp; width >= len(digits) {
		integ, frac = "0", su.PadLeft(digits, width)
	} else {
		integ, frac = digits[:len(digits)-width], digits[len(digits)-width:]
	}
	frac = strings.TrimRight(frac, "0")
	return makeNumber(a.neg != b.neg, integ, frac, false), Success
}
