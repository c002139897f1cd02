// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains decimal helpers for uint64 words.
package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// MaxPow10 is the largest pow for which Pow10(pow) fits a uint64.
const MaxPow10 = 19

// Pow10 returns 10^pow, or 0 if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// normFloat64 calculates such e, that 1 <= abs(f)*(10**e) <= 10
func normFloat64(f float64) (exp int32) {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	f = math.Abs(f)
	switch {
	case f < 1:
		exp = int32(math.Log10(1/f)) + 1
	case f > 10:
		exp = -(int32(math.Log10(f/10)) + 1)
	default:
		return 0
	}
	return exp
}

// FloatMantissa returns such (mant, e) that mant*(10^e) approximates abs(f),
// taking digits until the fraction left over is below epsilon.
// The loop is bounded by the decimal precision of a float64, so binary
// fractions without a finite decimal form lose their tail.
func FloatMantissa(f float64, epsilon float64) (mant uint64, exp int32) {
	const maxPrec = 19
	var result uint64
	f = math.Abs(f)
	i, exp := int32(0), normFloat64(f)
	for ; ; i++ {
		integ, frac := math.Modf(f * math.Pow10(int(exp+i)))
		result = uint64(integ)
		if frac < epsilon || i >= maxPrec {
			break
		}
	}
	return result, -(exp + i)
}
