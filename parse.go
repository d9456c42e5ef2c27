// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"fmt"
	"strconv"
	"strings"

	su "github.com/avdva/strnum/internal/strutil"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Parse parses a literal into a Number. The grammars are tried in order:
// integer ("-12"), decimal ("3.25", ".5"), scientific ("1.5e2", "-2E-3").
// Anything else yields IllegalNumber with the literal attached.
func Parse(s string) Result {
	n, err := parseLiteral(s)
	if err != nil {
		return illegal(s)
	}
	return success(n)
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(s string) Number {
	n, err := parseLiteral(s)
	if err != nil {
		panic(fmt.Errorf("parsing %q failed: %w", s, err))
	}
	return n
}

func parseLiteral(s string) (Number, error) {
	if len(s) == 0 {
		return Number{}, fmt.Errorf("empty input")
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return parseScientific(s, i)
	}
	neg, integ, frac, err := parseDecimal(s)
	if err != nil {
		return Number{}, err
	}
	return makeNumber(neg, integ, frac, false), nil
}

// parseDecimal handles the integer and fixed-point grammars: an optional
// leading '-', then digits with at most one delimiter. A missing integer
// part defaults to "0", the fractional part must not be empty.
func parseDecimal(s string) (neg bool, integ, frac string, err error) {
	if len(s) == 0 {
		return false, "", "", newPosError("missing significand", 1)
	}
	offset := 0
	if s[0] == '-' {
		neg = true
		offset = 1
		s = s[1:]
	}
	if len(s) == 0 {
		return false, "", "", newPosError("missing digits", offset+1)
	}
	i := strings.IndexByte(s, delim)
	if i < 0 {
		if !su.IsDigits(s) {
			return false, "", "", newPosError("unexpected symbol", offset+1)
		}
		return neg, s, "", nil
	}
	integ, frac = s[:i], s[i+1:]
	if len(integ) == 0 {
		integ = "0"
	} else if !su.IsDigits(integ) {
		return false, "", "", newPosError("unexpected symbol", offset+1)
	}
	if !su.IsDigits(frac) {
		return false, "", "", newPosError("missing fractional digits", offset+i+2)
	}
	return neg, integ, frac, nil
}

// parseScientific parses a significand (integer or decimal grammar, with
// its own optional sign) and a signed exponent, then expands the value by
// shifting the decimal point.
func parseScientific(s string, expPos int) (Number, error) {
	neg, integ, frac, err := parseDecimal(s[:expPos])
	if err != nil {
		return Number{}, err
	}
	exp, err := strconv.Atoi(s[expPos+1:])
	if err != nil {
		return Number{}, newPosError("error parsing exponent: "+err.Error(), expPos+2)
	}
	integ, frac = shiftPoint(integ, frac, exp)
	return makeNumber(neg, integ, frac, true), nil
}

// shiftPoint moves the decimal point of (integ, frac) by exp positions.
// A positive exponent consumes fractional digits into the integer part,
// zero-padding on the right when it runs past them. A negative exponent
// consumes integer digits into the fractional part, zero-padding on the
// left when its magnitude exceeds the integer length.
func shiftPoint(integ, frac string, exp int) (string, string) {
	switch {
	case exp > 0:
		if exp >= len(frac) {
			integ += frac + su.Zeros(exp-len(frac))
			frac = ""
		} else {
			integ, frac = integ+frac[:exp], frac[exp:]
		}
	case exp < 0:
		shift := -exp
		if shift >= len(integ) {
			frac = su.Zeros(shift-len(integ)) + integ + frac
			integ = "0"
		} else {
			integ, frac = integ[:len(integ)-shift], integ[len(integ)-shift:]+frac
		}
	}
	return integ, frac
}
