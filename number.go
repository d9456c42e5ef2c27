// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strnum implements exact decimal arithmetic over textual numeric
// literals. Operands are parsed into sign-and-digit-string form, and all
// calculations use native integer arithmetic and digit manipulation only,
// so results are exact up to the precision of the platform's widest
// signed integer type. No floating-point type is involved at any point.
//
// Literals can be integers ("-42"), fixed-point decimals ("3.25", ".5"),
// or scientific notation ("1.5e2", "2.44E-3"). When any operand of an
// operation is written in scientific notation, the result is rendered in
// scientific notation as well.
package strnum

import (
	"strconv"
	"strings"

	mu "github.com/avdva/strnum/internal/mathutil"
	su "github.com/avdva/strnum/internal/strutil"
)

const delim = '.'

// Number is a decimal value split into an integer and a fractional digit
// string, with the sign kept separately. Both strings contain characters
// 0-9 only, integ is never empty, frac may be. A Number is never mutated
// after construction.
type Number struct {
	neg   bool
	integ string
	frac  string
	sci   bool
}

func makeNumber(neg bool, integ, frac string, sci bool) Number {
	if trimmed := strings.TrimLeft(integ, "0"); len(trimmed) > 0 {
		integ = trimmed
	} else {
		integ = "0"
	}
	if neg && integ == "0" && su.FirstNonZero(frac) < 0 {
		neg = false // a single canonical zero
	}
	return Number{neg: neg, integ: integ, frac: frac, sci: sci}
}

func fromInt64(v int64) Number {
	return makeNumber(v < 0, formatInt64(v), "", false)
}

// IsZero returns true if all digits of n are zero.
func (n Number) IsZero() bool {
	return su.FirstNonZero(n.integ) < 0 && su.FirstNonZero(n.frac) < 0
}

// Sign returns -1 if n < 0, 0 if n == 0, 1 if n > 0.
func (n Number) Sign() int {
	if n.IsZero() {
		return 0
	}
	if n.neg {
		return -1
	}
	return 1
}

// Negated returns n with the opposite sign. Zero stays non-negative.
func (n Number) Negated() Number {
	return makeNumber(!n.neg, n.integ, n.frac, n.sci)
}

// String returns the plain decimal representation of n.
func (n Number) String() string {
	var b strings.Builder
	if n.neg {
		b.WriteByte('-')
	}
	b.WriteString(n.integ)
	if len(n.frac) > 0 {
		b.WriteByte(delim)
		b.WriteString(n.frac)
	}
	return b.String()
}

// Eq returns true if both numbers represent the same value, ignoring
// leading and trailing zero padding and the rendering form.
func (n Number) Eq(other Number) bool {
	a, b := n.normalized(), other.normalized()
	return a.neg == b.neg && a.integ == b.integ && a.frac == b.frac
}

// normalized strips leading integer zeros and trailing fractional zeros.
func (n Number) normalized() Number {
	frac := strings.TrimRight(n.frac, "0")
	return makeNumber(n.neg, n.integ, frac, n.sci)
}

// signedInteg returns the integer digits with the sign folded in, so that
// the string parses directly as a native signed number.
func (n Number) signedInteg() string {
	if n.neg {
		return "-" + n.integ
	}
	return n.integ
}

func signedDigits(digits string, neg bool) string {
	if neg {
		return "-" + digits
	}
	return digits
}

// formatInt64 formats the absolute value of v as a digit string.
func formatInt64(v int64) string {
	return strconv.FormatInt(mu.AbsInt64(v), 10)
}
