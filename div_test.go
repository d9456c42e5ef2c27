// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y string
		out  string
	}{
		{"10", "4", "2.5"},
		{"-10", "4", "-2.5"},
		{"10", "-4", "-2.5"},
		{"-10", "-4", "2.5"},
		{"7", "7", "1"},
		{"0", "5", "0"},
		{"0", "-5", "0"},
		{"10", "2", "5"},
		{"1", "8", "0.125"},
		{"0.3", "0.1", "3"},
		{"2.5", "0.5", "5"},
		{"1", "1000", "0.001"},
		{"100", "10", "10"},
		{"6.25", "2.5", "2.5"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := Div(test.x, test.y)
			if a.Equal(Success, res.Status) {
				a.Equal(test.out, res.String(), "%s / %s", test.x, test.y)
			}
		})
	}
}

func TestDivTruncation(t *testing.T) {
	a := assert.New(t)

	res := Div("1", "3")
	a.Equal(Success, res.Status)
	a.Equal("0."+strings.Repeat("3", Precision().MaxSafeDigits), res.String())

	res = Div("2", "3")
	a.Equal(Success, res.Status)
	a.Equal("0."+strings.Repeat("6", Precision().MaxSafeDigits), res.String())

	// truncating, not rounding
	res = Div("2", "30")
	a.Equal(Success, res.Status)
	a.True(strings.HasPrefix(res.String(), "0.0666"))
	a.False(strings.HasSuffix(res.String(), "7"))
}

func TestDivByZero(t *testing.T) {
	a := assert.New(t)
	for _, divisor := range []string{"0", "-0", "0.000", "-0.00", "0e3", "0.0E-2", ".0"} {
		res := Div("10", divisor)
		a.Equal(DivideByZero, res.Status, "divisor %q", divisor)
	}
	// malformed zeros are illegal literals, not zeros
	for _, divisor := range []string{"0.", "0e", "0..0", "0x0"} {
		res := Div("10", divisor)
		a.Equal(IllegalNumber, res.Status, "divisor %q", divisor)
		a.Equal(divisor, res.Literal)
	}
}

func TestDivErrors(t *testing.T) {
	a := assert.New(t)

	res := Div("abc", "2")
	a.Equal(IllegalNumber, res.Status)
	a.Equal("abc", res.Literal)

	res = Div("2", "abc")
	a.Equal(IllegalNumber, res.Status)
	a.Equal("abc", res.Literal)

	res = Div("12345678901234567890123", "2")
	a.Equal(GeneralFailure, res.Status)
}

func TestDivScientific(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y string
		out  string
	}{
		{"1e1", "4", "2.5e0"},
		{"10", "4e0", "2.5e0"},
		{"1e2", "1e1", "1.0e1"},
		{"0e0", "5", "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := Div(test.x, test.y)
			if a.Equal(Success, res.Status) {
				a.Equal(test.out, res.String())
			}
		})
	}
}

func TestDivMulRoundTrip(t *testing.T) {
	a := assert.New(t)
	operands := []string{"1", "-1", "0.5", "2.5", "123.456", "-99.99", "3", "0.125"}
	for _, x := range operands {
		for _, y := range operands {
			product := Mul(x, y)
			if !a.Equal(Success, product.Status) {
				continue
			}
			quo := Div(product.String(), y)
			if !a.Equal(Success, quo.Status) {
				continue
			}
			// exact whenever the quotient terminates within the ceiling
			a.True(quo.Value.Eq(MustParse(x)), "(%s*%s)/%s = %s", x, y, y, quo.String())
		}
	}
}
