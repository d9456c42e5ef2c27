// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y string
		out  string
	}{
		{"2.5", "4", "10"},
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"2", "-3", "-6"},
		{"-2", "-3", "6"},
		{"0", "123.456", "0"},
		{"123.456", "0", "0"},
		{"-123.456", "0", "0"},
		{"2.5", "2.5", "6.25"},
		{"0.5", "0.5", "0.25"},
		{"0.05", "0.1", "0.005"},
		{"1.5", "1.5", "2.25"},
		{"12.34", "5.6", "69.104"},
		{"100", "0.01", "1"},
		{"-0.25", "4", "-1"},
		{"99999", "99999", "9999800001"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := Mul(test.x, test.y)
			if a.Equal(Success, res.Status) {
				a.True(res.Value.Eq(MustParse(test.out)), "%s * %s = %s, want %s",
					test.x, test.y, res.String(), test.out)
			}
		})
	}
}

func TestMulOutput(t *testing.T) {
	a := assert.New(t)
	a.Equal("10", Mul("2.5", "4").String())
	a.Equal("6.25", Mul("2.5", "2.5").String())
	a.Equal("0", Mul("5", "0").String())
}

func TestMulScientific(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y string
		out  string
	}{
		{"2e1", "3", "6.0e1"},
		{"3", "2e1", "6.0e1"},
		{"2.5e0", "4", "1.0e1"},
		{"5e-1", "0.5", "2.5e-1"},
		{"1e2", "0", "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := Mul(test.x, test.y)
			if a.Equal(Success, res.Status) {
				a.Equal(test.out, res.String())
			}
		})
	}
}

func TestMulNAry(t *testing.T) {
	a := assert.New(t)

	res := Mul("2", "3", "4")
	a.Equal(Success, res.Status)
	a.Equal("24", res.String())

	res = Mul("0.5", "0.5", "0.5", "8")
	a.Equal(Success, res.Status)
	a.True(res.Value.Eq(MustParse("1")))

	res = Mul("7")
	a.Equal(Success, res.Status)
	a.Equal("7", res.String())

	a.Equal(GeneralFailure, Mul().Status)
}

func TestMulErrors(t *testing.T) {
	a := assert.New(t)

	res := Mul("x", "2")
	a.Equal(IllegalNumber, res.Status)
	a.Equal("x", res.Literal)

	// products beyond the precision ceiling degrade to a failure status
	res = Mul("1000000000000", "1000000000000")
	a.Equal(GeneralFailure, res.Status)
}

func TestMulProperties(t *testing.T) {
	a := assert.New(t)
	literals := []string{"0", "1", "-1", "0.5", "-0.25", "123.456", "-99.99", "3"}
	for _, x := range literals {
		res := Mul(x, "0")
		a.Equal(Success, res.Status)
		a.Equal("0", res.String(), "%s * 0", x)

		res = Mul(x, "1")
		a.True(res.Value.Eq(MustParse(x)), "%s * 1", x)

		for _, y := range literals {
			xy, yx := Mul(x, y), Mul(y, x)
			a.Equal(Success, xy.Status)
			a.True(xy.Value.Eq(yx.Value), "%s * %s", x, y)
		}
	}
}
