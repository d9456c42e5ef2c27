// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"math"
	"strconv"
	"strings"

	mu "github.com/avdva/strnum/internal/mathutil"
	su "github.com/avdva/strnum/internal/strutil"
)

// Add sums two or more operands. A single operand is returned unchanged,
// zero operands are a degenerate case reported as GeneralFailure.
// The operand list is reduced pairwise around its midpoint, so the binary
// addition below stays the single source of truth and the recursion depth
// is logarithmic in the number of operands.
func Add(operands ...string) Result {
	nums, errRes := parseOperands(operands)
	if errRes != nil {
		return *errRes
	}
	sum, st := reduce(nums, addNumbers)
	if st != Success {
		return failure(st)
	}
	sum.sci = anySci(nums)
	return success(sum)
}

// Sub subtracts every subsequent operand from the first one, by negating
// the subtrahends and reusing the adder. A single operand is returned
// unchanged.
func Sub(operands ...string) Result {
	if len(operands) == 0 {
		return failure(GeneralFailure)
	}
	negated := make([]string, len(operands))
	negated[0] = operands[0]
	for i := 1; i < len(operands); i++ {
		negated[i] = negateLiteral(operands[i])
	}
	return Add(negated...)
}

// negateLiteral toggles the leading sign token of a literal.
func negateLiteral(s string) string {
	if strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return "-" + s
}

func parseOperands(operands []string) ([]Number, *Result) {
	if len(operands) == 0 {
		res := failure(GeneralFailure)
		return nil, &res
	}
	nums := make([]Number, len(operands))
	for i, op := range operands {
		n, err := parseLiteral(op)
		if err != nil {
			res := illegal(op)
			return nil, &res
		}
		nums[i] = n
	}
	return nums, nil
}

// reduce folds nums with op, splitting the list at its midpoint.
func reduce(nums []Number, op func(a, b Number) (Number, Status)) (Number, Status) {
	if len(nums) == 1 {
		return nums[0], Success
	}
	mid := len(nums) / 2
	left, st := reduce(nums[:mid], op)
	if st != Success {
		return Number{}, st
	}
	right, st := reduce(nums[mid:], op)
	if st != Success {
		return Number{}, st
	}
	return op(left, right)
}

func anySci(nums []Number) bool {
	for _, n := range nums {
		if n.sci {
			return true
		}
	}
	return false
}

// addNumbers adds two parsed numbers. The sign of each operand is folded
// into both of its digit strings, so that native signed addition of the
// integer parts and of the zero-padded fractional parts reproduces
// decimal carry and borrow.
func addNumbers(a, b Number) (Number, Status) {
	if len(a.frac) == 0 && len(b.frac) == 0 {
		return addIntegers(a, b)
	}

	f := len(a.frac)
	if len(b.frac) > f {
		f = len(b.frac)
	}
	if f > maxSafeDigits() {
		return Number{}, GeneralFailure
	}
	p := int64(mu.Pow10(f))

	intSum, ok := addParts(a.signedInteg(), b.signedInteg())
	if !ok {
		return Number{}, GeneralFailure
	}
	fracSum, ok := addParts(
		signedDigits(su.PadRight(a.frac, f), a.neg),
		signedDigits(su.PadRight(b.frac, f), b.neg))
	if !ok {
		return Number{}, GeneralFailure
	}

	// A fractional sum one digit wider than f carries one into the
	// integer sum, with the carry taking the fractional sum's sign.
	if mu.DecimalDigits(uint64(mu.AbsInt64(fracSum))) > f {
		if fracSum > 0 {
			intSum++
			fracSum -= p
		} else {
			intSum--
			fracSum += p
		}
	}

	// Reconcile opposite-signed partial sums so both end up on the side
	// of the overall result.
	switch {
	case intSum > 0 && fracSum < 0:
		intSum--
		fracSum += p
	case intSum < 0 && fracSum > 0:
		intSum++
		fracSum -= p
	}

	neg := intSum < 0 || fracSum < 0
	frac := ""
	if fracSum != 0 {
		// left-padding repairs fractional leading zeros lost in the sum
		frac = su.PadLeft(formatInt64(fracSum), f)
	}
	return makeNumber(neg, formatInt64(intSum), frac, false), Success
}

// addIntegers is the fast path for two pure integers.
func addIntegers(a, b Number) (Number, Status) {
	x, ok := addParts(a.signedInteg(), b.signedInteg())
	if !ok {
		return Number{}, GeneralFailure
	}
	return fromInt64(x), Success
}

// addParts parses two signed, possibly zero-padded digit strings as
// base-10 numbers and adds them natively. It reports failure when a part
// exceeds the native precision ceiling.
func addParts(x, y string) (int64, bool) {
	xv, err := strconv.ParseInt(x, 10, 64)
	if err != nil {
		return 0, false
	}
	yv, err := strconv.ParseInt(y, 10, 64)
	if err != nil {
		return 0, false
	}
	sum := xv + yv
	if xv > 0 && yv > 0 && sum < 0 || xv < 0 && yv < 0 && sum > 0 {
		return 0, false
	}
	if sum == math.MinInt64 { // has no representable absolute value
		return 0, false
	}
	return sum, true
}
