package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res float64
		e   int32
	}{
		{0.012345, 1.2345, 2},
		{12345e50, 1.2345, -54},
		{0, 0, 0},
		{1, 1, 0},
		{10, 10, 0},
		{-5, -5, 0},
		{math.Inf(1), 0, 0},
		{math.Inf(-1), 0, 0},
		{math.NaN(), 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			e := normFloat64(test.f)
			f := test.f * math.Pow10(int(e))
			a.Equal(test.e, e)
			if !math.IsInf(test.f, 0) && !math.IsNaN(test.f) {
				a.InDelta(test.res, f, 1e10)
			}
		})
	}
}

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999999999, 9},
		{1000000000, 10},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestPow10(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(1), Pow10(0))
	a.Equal(uint64(10000000000000000000), Pow10(19))
	a.Equal(uint64(0), Pow10(20))
	a.Equal(uint64(0), Pow10(-1))
	for i := 1; i <= MaxPow10; i++ {
		a.Equal(Pow10(i-1)*10, Pow10(i))
	}
}

func TestFloatMantissa(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    float64
		mant uint64
		exp  int32
	}{
		{1.25, 125, -2},
		{0.012345, 12345, -6},
		{123450000, 12345, 4},
		{1, 1, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			mant, exp := FloatMantissa(test.f, 1e-10)
			for mant > test.mant && mant%10 == 0 { // the loop may stop late
				mant /= 10
				exp++
			}
			a.Equal(test.mant, mant)
			a.Equal(test.exp, exp)
		})
	}
}
