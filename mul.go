// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"strconv"

	mu "github.com/avdva/strnum/internal/mathutil"
	su "github.com/avdva/strnum/internal/strutil"
)

// Mul multiplies two or more operands, reducing the list pairwise the
// same way Add does.
func Mul(operands ...string) Result {
	nums, errRes := parseOperands(operands)
	if errRes != nil {
		return *errRes
	}
	product, st := reduce(nums, mulNumbers)
	if st != Success {
		return failure(st)
	}
	product.sci = anySci(nums)
	return success(product)
}

// mulNumbers multiplies two parsed numbers by distributing over their
// integer and fractional parts:
//
//	(I.F) * (J.G) = I*J + I*0.G + J*0.F + 0.F*0.G
//
// Each cross term is a plain native product of digit strings, rescaled
// back into decimal form, and the four terms are combined through the
// adder rather than re-implementing carry logic here. The sign of the
// result is the XOR of the operand signs.
func mulNumbers(a, b Number) (Number, Status) {
	neg := a.neg != b.neg

	ai, ok := parseMagnitude(a.integ)
	if !ok {
		return Number{}, GeneralFailure
	}
	bi, ok := parseMagnitude(b.integ)
	if !ok {
		return Number{}, GeneralFailure
	}
	if len(a.frac) == 0 && len(b.frac) == 0 {
		// pure-integer fast path
		raw, ok := mu.Mul64(ai, bi)
		if !ok || raw > maxNative() {
			return Number{}, GeneralFailure
		}
		return makeNumber(neg, strconv.FormatUint(raw, 10), "", false), Success
	}

	af, ok := parseMagnitude(a.frac)
	if !ok {
		return Number{}, GeneralFailure
	}
	bf, ok := parseMagnitude(b.frac)
	if !ok {
		return Number{}, GeneralFailure
	}

	terms := make([]Number, 0, 4)
	for _, t := range []struct {
		x, y  uint64
		width int
	}{
		{ai, bi, 0},
		{ai, bf, len(b.frac)},
		{bi, af, len(a.frac)},
		{af, bf, len(a.frac) + len(b.frac)},
	} {
		raw, ok := mu.Mul64(t.x, t.y)
		if !ok {
			return Number{}, GeneralFailure
		}
		terms = append(terms, scaleTerm(raw, t.width))
	}

	sum, st := reduce(terms, addNumbers)
	if st != Success {
		return Number{}, st
	}
	return makeNumber(neg, sum.integ, sum.frac, false), Success
}

// scaleTerm turns a raw digit product back into a decimal number by
// splitting it 'width' digits from the right, left-padding with zeros
// when the product is narrower than that.
func scaleTerm(raw uint64, width int) Number {
	s := strconv.FormatUint(raw, 10)
	if len(s) <= width {
		return Number{integ: "0", frac: su.PadLeft(s, width)}
	}
	return Number{integ: s[:len(s)-width], frac: s[len(s)-width:]}
}

// parseMagnitude parses an unsigned digit string; an empty string is zero.
func parseMagnitude(digits string) (uint64, bool) {
	if len(digits) == 0 {
		return 0, true
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	return v, err == nil
}
