// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package decimal implements exact base-10 arithmetic for financial and
// accounting code, where binary floating point is unacceptable.
//
// A Decimal represents (-1)^sign * coefficient * 10^exponent together
// with the special values +-0, +-Infinity, and NaN. Every Decimal
// carries a Hook, the policy that fixes precision, rounding mode,
// exponent bounds, and the reaction to each exceptional condition.
// Arithmetic follows the General Decimal Arithmetic rules: results are
// rounded to the hook's precision and describe what happened to them
// with eight condition flags.
package decimal

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/decimal/internal/bignat"
	"github.com/avdva/decimal/internal/mathutil"
)

// Flags is a bitmask of the conditions raised while a result was
// computed. Flags describe that computation only, operand flags are
// never carried over.
type Flags uint8

const (
	// Clamped means the exponent was altered to fit the hook's bounds
	// without losing value.
	Clamped Flags = 1 << iota
	// DivisionByZero means a division had a zero divisor.
	DivisionByZero
	// Inexact means nonzero digits were discarded during rounding.
	Inexact
	// InvalidOperation means the operation had no meaningful result,
	// which is then a quiet NaN. It is also raised, together with
	// DivisionByZero, when a nonzero value is divided by zero, and by an
	// integer conversion that loses fractional digits.
	InvalidOperation
	// Overflow means the value exceeded the largest representable
	// magnitude.
	Overflow
	// Rounded means the coefficient lost digits to the precision.
	Rounded
	// Subnormal means the result was below the smallest normal
	// exponent.
	Subnormal
	// Underflow means a subnormal result also lost digits.
	Underflow
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{Clamped, "clamped"},
	{DivisionByZero, "division-by-zero"},
	{Inexact, "inexact"},
	{InvalidOperation, "invalid-operation"},
	{Overflow, "overflow"},
	{Rounded, "rounded"},
	{Subnormal, "subnormal"},
	{Underflow, "underflow"},
}

// String lists the raised conditions.
func (f Flags) String() string {
	var b strings.Builder
	for _, fn := range flagNames {
		if f&fn.f == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fn.name)
	}
	return b.String()
}

type kind uint8

const (
	finite kind = iota
	infinite
	qnan
)

// Decimal is an exact base-10 number. The zero value is +0 under the
// package's DefaultHook.
//
// Decimals behave like values: operations return fresh results carrying
// the left operand's hook, and a result exclusively owns its
// coefficient. Distinct Decimals are safe for concurrent use.
type Decimal struct {
	hook  *Hook
	coeff bignat.Nat
	exp   int32
	neg   bool
	kind  kind
	flags Flags
}

func (d *Decimal) h() *Hook {
	if d.hook == nil {
		return DefaultHook
	}
	return d.hook
}

// Hook returns the policy the value carries.
func (d Decimal) Hook() *Hook {
	return d.h()
}

// raise records a condition on d and fires the hook's callback for it,
// if any. d is fully formed by the time the callback runs.
func (d *Decimal) raise(f Flags) {
	d.flags |= f
	if cb := d.h().callbackFor(f); cb != nil {
		cb(d)
	}
}

// FromInt64 returns a Decimal for the given integer.
func (h *Hook) FromInt64(v int64) Decimal {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	d := Decimal{hook: h, coeff: bignat.FromUint64(u), neg: neg}
	d.round()
	return d
}

// FromUint64 returns a Decimal for the given integer.
func (h *Hook) FromUint64(v uint64) Decimal {
	d := Decimal{hook: h, coeff: bignat.FromUint64(v)}
	d.round()
	return d
}

// FromMantAndExp returns a Decimal equal to mant * 10^exp.
func (h *Hook) FromMantAndExp(mant int64, exp int32) Decimal {
	neg := mant < 0
	u := uint64(mant)
	if neg {
		u = -u
	}
	d := Decimal{hook: h, coeff: bignat.FromUint64(u), exp: exp, neg: neg}
	d.round()
	return d
}

// FromFloat64 returns a Decimal approximating the given float. The
// conversion is lossy: the mantissa is recovered by multiplying by 10
// until the fraction vanishes, and that loop is cut at the decimal
// precision of a float64. Float NaNs and infinities map to their
// decimal counterparts.
func (h *Hook) FromFloat64(v float64) Decimal {
	switch {
	case math.IsNaN(v):
		return h.NaN()
	case math.IsInf(v, 0):
		return h.Infinity(v < 0)
	case v == 0:
		return Decimal{hook: h, neg: math.Signbit(v)}
	}
	mant, exp := mathutil.FloatMantissa(v, 1e-10)
	d := Decimal{hook: h, coeff: bignat.FromUint64(mant), exp: exp, neg: v < 0}
	d.round()
	return d
}

// NaN returns a quiet NaN.
func (h *Hook) NaN() Decimal {
	return Decimal{hook: h, kind: qnan}
}

// Infinity returns an infinity with the given sign.
func (h *Hook) Infinity(neg bool) Decimal {
	return Decimal{hook: h, kind: infinite, neg: neg}
}

// Zero returns +0.
func (h *Hook) Zero() Decimal {
	return Decimal{hook: h}
}

// Max returns the largest finite value, (10^P - 1) * 10^maxExponent.
func (h *Hook) Max() Decimal {
	_, max := h.limits()
	return Decimal{hook: h, coeff: bignat.AllNines(h.prec()), exp: max}
}

// Min returns the smallest finite value, -1 * 10^minExponent.
func (h *Hook) Min() Decimal {
	min, _ := h.limits()
	return Decimal{hook: h, coeff: bignat.FromUint64(1), exp: min, neg: true}
}

// Package-level constructors, bound to DefaultHook.

// FromInt64 returns a Decimal for the given integer under DefaultHook.
func FromInt64(v int64) Decimal {
	return DefaultHook.FromInt64(v)
}

// FromUint64 returns a Decimal for the given integer under DefaultHook.
func FromUint64(v uint64) Decimal {
	return DefaultHook.FromUint64(v)
}

// FromFloat64 returns a Decimal for the given float under DefaultHook.
func FromFloat64(v float64) Decimal {
	return DefaultHook.FromFloat64(v)
}

// Parse converts a string into a Decimal under DefaultHook.
func Parse(s string) Decimal {
	return DefaultHook.Parse(s)
}

// FromString converts a string into a Decimal under DefaultHook,
// reporting where the input broke the grammar.
func FromString(s string) (Decimal, error) {
	return DefaultHook.FromString(s)
}

// IsNaN reports whether the value is a NaN of either sign.
func (d Decimal) IsNaN() bool {
	return d.kind == qnan
}

// IsInf reports whether the value is an infinity of either sign.
func (d Decimal) IsInf() bool {
	return d.kind == infinite
}

// IsZero reports whether the value is a zero of either sign.
func (d Decimal) IsZero() bool {
	return d.kind == finite && d.coeff.IsZero()
}

// Sign returns -1 for negative values, 1 for positive ones, and 0 for
// zeros and NaNs.
func (d Decimal) Sign() int {
	if d.kind == qnan || d.IsZero() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// Signbit reports whether the sign bit is set, including -0 and -NaN.
func (d Decimal) Signbit() bool {
	return d.neg
}

// CoeffUint64 returns the coefficient, if it fits a uint64.
func (d Decimal) CoeffUint64() (uint64, bool) {
	return d.coeff.Uint64()
}

// Exp returns the exponent.
func (d Decimal) Exp() int32 {
	return d.exp
}

// Dup returns a copy with its own coefficient storage, flags preserved.
func (d Decimal) Dup() Decimal {
	d.coeff = d.coeff.Clone()
	return d
}

// IDup returns a copy with its own coefficient storage and clear flags.
func (d Decimal) IDup() Decimal {
	r := d.Dup()
	r.flags = 0
	return r
}

// Flags returns the conditions raised by the computation that produced d.
func (d Decimal) Flags() Flags {
	return d.flags
}

// ResetFlags clears all condition flags.
func (d *Decimal) ResetFlags() {
	d.flags = 0
}

// Clamped reports the clamped condition.
func (d Decimal) Clamped() bool { return d.flags&Clamped != 0 }

// DivisionByZero reports the division-by-zero condition.
func (d Decimal) DivisionByZero() bool { return d.flags&DivisionByZero != 0 }

// Inexact reports the inexact condition.
func (d Decimal) Inexact() bool { return d.flags&Inexact != 0 }

// InvalidOperation reports the invalid-operation condition.
func (d Decimal) InvalidOperation() bool { return d.flags&InvalidOperation != 0 }

// Overflow reports the overflow condition.
func (d Decimal) Overflow() bool { return d.flags&Overflow != 0 }

// Rounded reports the rounded condition.
func (d Decimal) Rounded() bool { return d.flags&Rounded != 0 }

// Subnormal reports the subnormal condition.
func (d Decimal) Subnormal() bool { return d.flags&Subnormal != 0 }

// Underflow reports the underflow condition.
func (d Decimal) Underflow() bool { return d.flags&Underflow != 0 }

// Bool returns true if |d| >= 1, or if d is a NaN or an infinity.
func (d Decimal) Bool() bool {
	if d.kind != finite {
		return true
	}
	if d.coeff.IsZero() {
		return false
	}
	return d.exp+int32(d.coeff.Digits())-1 >= 0
}

// Float64 returns the nearest float64. The conversion goes through the
// canonical string, so values that fit a float64 round-trip back to the
// same string.
func (d Decimal) Float64() float64 {
	switch d.kind {
	case infinite:
		if d.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case qnan:
		return math.NaN()
	}
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// Int64 converts d to an int64. Fractional digits are rounded with the
// hook's rounding mode; any loss raises invalid-operation on a copy of
// d handed to the hook's callback. NaNs, infinities, and out-of-range
// values produce an error.
func (d Decimal) Int64() (int64, error) {
	n, err := d.integral()
	if err != nil {
		return 0, err
	}
	u, ok := n.Uint64()
	if !ok {
		return 0, errors.Wrap(ErrConversion, "int64")
	}
	if d.neg {
		if u > 1<<63 {
			return 0, errors.Wrap(ErrConversion, "int64")
		}
		if u == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, errors.Wrap(ErrConversion, "int64")
	}
	return int64(u), nil
}

// Uint64 converts d to a uint64 the way Int64 does.
func (d Decimal) Uint64() (uint64, error) {
	n, err := d.integral()
	if err != nil {
		return 0, err
	}
	u, ok := n.Uint64()
	if !ok {
		return 0, errors.Wrap(ErrConversion, "uint64")
	}
	if d.neg && u != 0 {
		return 0, errors.Wrap(ErrConversion, "uint64")
	}
	return u, nil
}

// integral returns the coefficient scaled to exponent zero, rounding
// fractional digits with the hook's mode.
func (d Decimal) integral() (bignat.Nat, error) {
	if d.kind != finite {
		return bignat.Nat{}, errors.Wrap(ErrConversion, "not a finite number")
	}
	if d.exp >= 0 {
		return d.coeff.MulPow10(int(d.exp)), nil
	}
	k := int(-d.exp)
	keep, rem := d.coeff.QuoRemPow10(k)
	if rem.IsZero() {
		return keep, nil
	}
	lead, rest := rem.QuoRemPow10(k - 1)
	ld, _ := lead.Uint64()
	if incRequired(d.h().Rounding, d.neg, ld, !rest.IsZero(), keep.Mod10()) {
		keep = keep.Inc()
	}
	r := d.Dup()
	r.raise(InvalidOperation)
	return keep, nil
}

// MarshalJSON marshals the value as its canonical string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('"')
	d.writeString(&b)
	b.WriteByte('"')
	return []byte(b.String()), nil
}

// UnmarshalJSON unmarshals a quoted or a bare number. The value adopts
// DefaultHook unless it already carries one.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ErrInvalidOperation, "empty json")
	}
	s := string(data)
	if s[0] == '"' {
		var err error
		if err = json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := d.h().FromString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
