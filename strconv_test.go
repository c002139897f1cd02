// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	sdec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseFinite(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s     string
		coeff uint64
		exp   int32
		neg   bool
	}{
		{"0", 0, 0, false},
		{"00", 0, 0, false},
		{"0.00", 0, -2, false},
		{"-0", 0, 0, true},
		{"1", 1, 0, false},
		{"+1", 1, 0, false},
		{"-1", 1, 0, true},
		{"12.34", 1234, -2, false},
		{"0.07", 7, -2, false},
		{".5", 5, -1, false},
		{"5.", 5, 0, false},
		{"007", 7, 0, false},
		{"1e5", 1, 5, false},
		{"1E5", 1, 5, false},
		{"1e+5", 1, 5, false},
		{"1e-5", 1, -5, false},
		{"1.23E-10", 123, -12, false},
		{"-12.000", 12000, -3, true},
		{"1.2345678E-7", 12345678, -14, false},
		{"123456789", 123456789, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := FromString(test.s)
			a.NoError(err)
			coeff, ok := d.CoeffUint64()
			a.True(ok)
			a.Equal(test.coeff, coeff)
			a.Equal(test.exp, d.Exp())
			a.Equal(test.neg, d.Signbit())
			a.False(d.IsNaN())
			a.False(d.IsInf())
		})
	}
}

func TestParseSpecials(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		res string
	}{
		{"Inf", "Infinity"},
		{"inf", "Infinity"},
		{"INF", "Infinity"},
		{"Infinity", "Infinity"},
		{"-Inf", "-Infinity"},
		{"+infinity", "Infinity"},
		{"NaN", "NaN"},
		{"nan", "NaN"},
		{"-NaN", "-NaN"},
		{"NaN123", "NaN"},
		{"-nan007", "-NaN"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := FromString(test.s)
			a.NoError(err)
			a.Equal(test.res, d.String())
			a.Zero(d.Flags())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	a := assert.New(t)
	tests := []string{
		"",
		"+",
		"-",
		"++1",
		"-+1",
		"1-",
		"1..2",
		"1.2.3",
		".",
		"-.",
		"1e",
		"1e+",
		"1e5.5",
		"1e2e3",
		"e5",
		"abc",
		"1x",
		" 1",
		"1 ",
		"Inf5",
		"Infinityy",
		"NaN1x",
		"0x12",
		"1,5",
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := FromString(test)
			a.Error(err)
			a.True(d.IsNaN())
			a.True(d.InvalidOperation())

			quiet := Parse(test)
			a.True(quiet.IsNaN())
			a.True(quiet.InvalidOperation())
		})
	}
}

func TestParseRounds(t *testing.T) {
	a := assert.New(t)
	res := NoOp(5).Parse("123456789")
	a.Equal("123460000", res.String())
	a.True(res.Inexact())
	a.True(res.Rounded())
}

func TestParseInvalidCallback(t *testing.T) {
	a := assert.New(t)
	h := NoOp(9)
	var got *Decimal
	h.OnInvalidOperation = func(d *Decimal) { got = d }
	res := h.Parse("bogus")
	a.NotNil(got)
	a.True(got.IsNaN())
	a.True(got.InvalidOperation())
	a.True(res.IsNaN())
}

func TestString(t *testing.T) {
	a := assert.New(t)
	h := NoOp(20)
	tests := []struct {
		mant int64
		exp  int32
		res  string
	}{
		{0, 0, "0"},
		{1, 0, "1"},
		{-1, 0, "-1"},
		{123, 0, "123"},
		{123, 2, "12300"},
		{123, -1, "12.3"},
		{123, -3, "0.123"},
		{123, -5, "0.00123"},
		{-123, -5, "-0.00123"},
		{5, -1, "0.5"},
		{12000, -3, "12.000"},
		{7, -11, "0.00000000007"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, h.FromMantAndExp(test.mant, test.exp).String())
		})
	}
	a.Equal("Infinity", h.Infinity(false).String())
	a.Equal("-Infinity", h.Infinity(true).String())
	a.Equal("NaN", h.NaN().String())
}

func TestStringParseRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	h := NoOp(20)
	for i := 0; i < 1000; i++ {
		d := h.FromMantAndExp(rnd.Int63n(1e12)-5e11, int32(rnd.Intn(40)-20))
		back := h.Parse(d.String())
		a.True(d.Equal(back), "%#v vs %#v", d, back)
		a.Equal(d.String(), back.String())
	}
}

// cross-check the formatter against shopspring/decimal
func TestStringOracle(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	h := NoOp(20)
	for i := 0; i < 1000; i++ {
		mant, exp := rnd.Int63n(1e9)-5e8, int32(rnd.Intn(16)-8)
		if mant == 0 {
			continue // shopspring renders every zero as "0"
		}
		// StringFixed keeps the trailing zeros that shopspring's String drops
		a.Equal(sdec.New(mant, exp).StringFixed(-exp), h.FromMantAndExp(mant, exp).String())
	}
}

func TestGoString(t *testing.T) {
	a := assert.New(t)
	a.Equal("12.5 {125, -1}", Parse("12.5").GoString())
	a.Equal("NaN", Parse("NaN").GoString())
}
