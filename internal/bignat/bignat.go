// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bignat implements a non-negative arbitrary-precision integer
// used as decimal coefficient storage. Values that fit a single uint64
// word stay on a fast path, everything above spills into a math/big Int.
package bignat

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/avdva/decimal/internal/mathutil"
)

var (
	bigTen = big.NewInt(10)

	// math.Ln10 / math.Ln2, used to estimate decimal length from BitLen.
	digitsToBitsRatio = math.Ln10 / math.Ln2
)

// Nat is a non-negative integer. The zero value is 0 and ready to use.
// Operations never mutate their receiver or arguments, every result is
// freshly allocated, so a Nat is never shared between two owners.
type Nat struct {
	w uint64
	b *big.Int // nil while the value fits a uint64
}

// FromUint64 returns a Nat holding v.
func FromUint64(v uint64) Nat {
	return Nat{w: v}
}

// SetString converts a string of decimal digits into a Nat.
// The string must be non-empty and contain digits only.
func SetString(s string) (Nat, bool) {
	if len(s) == 0 {
		return Nat{}, false
	}
	if len(s) <= 19 { // always fits a uint64
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Nat{}, false
		}
		return Nat{w: u}, true
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return Nat{}, false
	}
	return norm(b), true
}

// Pow10 returns 10^n.
func Pow10(n int) Nat {
	if n <= mathutil.MaxPow10 {
		return Nat{w: mathutil.Pow10(n)}
	}
	return norm(bigPow10(n))
}

// AllNines returns 10^n - 1, the largest value of n decimal digits.
func AllNines(n int) Nat {
	if n <= mathutil.MaxPow10 {
		return Nat{w: mathutil.Pow10(n) - 1}
	}
	b := bigPow10(n)
	return norm(b.Sub(b, big.NewInt(1)))
}

// norm shrinks a big value back onto the word path when it fits.
func norm(b *big.Int) Nat {
	if b.IsUint64() {
		return Nat{w: b.Uint64()}
	}
	return Nat{b: b}
}

// asBig returns a read-only big view of the value.
func (a Nat) asBig() *big.Int {
	if a.b != nil {
		return a.b
	}
	return new(big.Int).SetUint64(a.w)
}

func bigPow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// IsZero reports whether the value is 0.
func (a Nat) IsZero() bool {
	return a.b == nil && a.w == 0
}

// Uint64 returns the value as a uint64, if it fits.
func (a Nat) Uint64() (uint64, bool) {
	if a.b != nil {
		return 0, false
	}
	return a.w, true
}

// Clone returns a copy with its own storage.
func (a Nat) Clone() Nat {
	if a.b == nil {
		return a
	}
	return Nat{b: new(big.Int).Set(a.b)}
}

// Cmp returns -1, 0, or 1 depending on whether a < b, a == b, or a > b.
func (a Nat) Cmp(b Nat) int {
	if a.b == nil && b.b == nil {
		switch {
		case a.w > b.w:
			return 1
		case a.w < b.w:
			return -1
		default:
			return 0
		}
	}
	return a.asBig().Cmp(b.asBig())
}

// Add returns a + b.
func (a Nat) Add(b Nat) Nat {
	if a.b == nil && b.b == nil {
		sum, carry := bits.Add64(a.w, b.w, 0)
		if carry == 0 {
			return Nat{w: sum}
		}
	}
	return norm(new(big.Int).Add(a.asBig(), b.asBig()))
}

// Sub returns a - b. It panics if a < b.
func (a Nat) Sub(b Nat) Nat {
	if a.b == nil && b.b == nil {
		if a.w < b.w {
			panic("bignat: negative result")
		}
		return Nat{w: a.w - b.w}
	}
	r := new(big.Int).Sub(a.asBig(), b.asBig())
	if r.Sign() < 0 {
		panic("bignat: negative result")
	}
	return norm(r)
}

// Mul returns a * b.
func (a Nat) Mul(b Nat) Nat {
	if a.b == nil && b.b == nil {
		hi, lo := bits.Mul64(a.w, b.w)
		if hi == 0 {
			return Nat{w: lo}
		}
	}
	return norm(new(big.Int).Mul(a.asBig(), b.asBig()))
}

// QuoRem returns (a/b, a%b). It panics if b is 0.
func (a Nat) QuoRem(b Nat) (quo, rem Nat) {
	if b.IsZero() {
		panic("bignat: division by zero")
	}
	if a.b == nil && b.b == nil {
		return Nat{w: a.w / b.w}, Nat{w: a.w % b.w}
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a.asBig(), b.asBig(), r)
	return norm(q), norm(r)
}

// MulPow10 returns a * 10^n, n >= 0.
func (a Nat) MulPow10(n int) Nat {
	if n == 0 || a.IsZero() {
		return a.Clone()
	}
	if a.b == nil && n <= mathutil.MaxPow10 {
		if p := mathutil.Pow10(n); a.w <= math.MaxUint64/p {
			return Nat{w: a.w * p}
		}
	}
	return norm(new(big.Int).Mul(a.asBig(), bigPow10(n)))
}

// QuoRemPow10 splits the value into (a / 10^k, a % 10^k), k >= 0.
func (a Nat) QuoRemPow10(k int) (quo, rem Nat) {
	if k == 0 {
		return a.Clone(), Nat{}
	}
	if a.b == nil {
		if k > mathutil.MaxPow10 {
			return Nat{}, a
		}
		p := mathutil.Pow10(k)
		return Nat{w: a.w / p}, Nat{w: a.w % p}
	}
	if k >= a.Digits() { // a < 10^k
		return Nat{}, a.Clone()
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a.b, bigPow10(k), r)
	return norm(q), norm(r)
}

// Inc returns a + 1.
func (a Nat) Inc() Nat {
	if a.b == nil && a.w != math.MaxUint64 {
		return Nat{w: a.w + 1}
	}
	return norm(new(big.Int).Add(a.asBig(), big.NewInt(1)))
}

// Mod10 returns the last decimal digit.
func (a Nat) Mod10() uint64 {
	if a.b == nil {
		return a.w % 10
	}
	return new(big.Int).Mod(a.b, bigTen).Uint64()
}

// Digits returns the number of decimal digits, 1 for zero.
func (a Nat) Digits() int {
	if a.b == nil {
		return mathutil.DecimalDigits(a.w)
	}
	// estimate from the binary length, the result is exact or one too high
	d := int(float64(a.b.BitLen())/digitsToBitsRatio) + 1
	if d > 1 && a.b.Cmp(bigPow10(d-1)) < 0 {
		d--
	}
	return d
}

// String returns the decimal digits of the value.
func (a Nat) String() string {
	if a.b == nil {
		return strconv.FormatUint(a.w, 10)
	}
	return a.b.Text(10)
}
