// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"log"

	"github.com/pkg/errors"
)

// A RoundingMode decides how a coefficient that does not fit the
// precision loses its extra digits.
type RoundingMode uint8

const (
	// Down discards the extra digits; truncation towards zero.
	Down RoundingMode = iota
	// Up rounds away from zero whenever anything nonzero is discarded.
	Up
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
	// HalfUp rounds to nearest, ties away from zero.
	HalfUp
	// HalfDown rounds to nearest, ties towards zero.
	HalfDown
	// HalfEven rounds to nearest, ties to the even neighbour.
	HalfEven
	// ZeroFiveUp truncates, except when the kept last digit would be
	// 0 or 5, in which case it rounds away from zero.
	ZeroFiveUp
)

var roundingNames = [...]string{
	"Down", "Up", "Ceiling", "Floor",
	"HalfUp", "HalfDown", "HalfEven", "ZeroFiveUp",
}

// String returns the name of the mode.
func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return "RoundingMode(" + string(rune('0'+m)) + ")"
}

// Default policy constants.
const (
	// DefaultPrecision is used by hooks built without an explicit precision
	// and by the package-level constructors.
	DefaultPrecision = 9
	// MinPrecision is the smallest precision a hook accepts.
	MinPrecision = 2
	// DefaultMaxExponent and DefaultMinExponent bound the exponent of
	// every result unless a hook overrides them.
	DefaultMaxExponent = 999
	DefaultMinExponent = -999
)

// Condition errors surfaced by the Throw and Abort hooks and by
// conversions.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrOverflow         = errors.New("exponent overflow")
	ErrUnderflow        = errors.New("exponent underflow")
	ErrConversion       = errors.New("value not representable")
)

// A Callback reacts to one exceptional condition. It runs synchronously
// inside the operation that raised the condition, after the result,
// flags included, is fully formed.
type Callback func(d *Decimal)

// A Hook is the policy every Decimal carries: precision, rounding mode,
// exponent bounds, and an optional reaction per exceptional condition.
// Operations consult exactly one hook, the left operand's, and the result
// carries that hook.
//
// A Precision below MinPrecision falls back to DefaultPrecision, and zero
// MinExponent and MaxExponent together fall back to the default bounds,
// so a partially filled Hook literal is usable; the zero Rounding is
// Down. The constructors below are the expected way to build one.
type Hook struct {
	Precision   uint32
	Rounding    RoundingMode
	MaxExponent int32
	MinExponent int32

	OnClamped          Callback
	OnDivisionByZero   Callback
	OnInexact          Callback
	OnInvalidOperation Callback
	OnOverflow         Callback
	OnRounded          Callback
	OnSubnormal        Callback
	OnUnderflow        Callback
}

// New returns a hook with the given precision and rounding mode, default
// exponent bounds, and no callbacks.
func New(precision uint32, rounding RoundingMode) *Hook {
	if precision < MinPrecision {
		panic("decimal: precision must be at least 2")
	}
	return &Hook{
		Precision:   precision,
		Rounding:    rounding,
		MaxExponent: DefaultMaxExponent,
		MinExponent: DefaultMinExponent,
	}
}

// NoOp returns a hook that only sets condition flags.
func NoOp(precision uint32) *Hook {
	return New(precision, HalfUp)
}

// Throw returns a hook that panics with a typed error on division by
// zero, invalid operations, overflow, and underflow. The panic value
// wraps the corresponding Err* variable, so a recover may match it
// with errors.Cause or errors.Is.
func Throw(precision uint32) *Hook {
	h := New(precision, HalfUp)
	h.OnDivisionByZero = func(d *Decimal) { panic(errors.WithMessage(ErrDivisionByZero, d.String())) }
	h.OnInvalidOperation = func(d *Decimal) { panic(errors.WithMessage(ErrInvalidOperation, d.String())) }
	h.OnOverflow = func(d *Decimal) { panic(errors.WithMessage(ErrOverflow, d.String())) }
	h.OnUnderflow = func(d *Decimal) { panic(errors.WithMessage(ErrUnderflow, d.String())) }
	return h
}

// Abort returns a hook that halts the program on division by zero,
// invalid operations, overflow, and underflow.
func Abort(precision uint32) *Hook {
	h := New(precision, HalfUp)
	h.OnDivisionByZero = abort(ErrDivisionByZero)
	h.OnInvalidOperation = abort(ErrInvalidOperation)
	h.OnOverflow = abort(ErrOverflow)
	h.OnUnderflow = abort(ErrUnderflow)
	return h
}

func abort(err error) Callback {
	return func(d *Decimal) {
		log.Fatalf("decimal: %v: %s", err, d.String())
	}
}

// HighPrecision returns an aborting hook with 64 digits of precision.
func HighPrecision() *Hook {
	return Abort(64)
}

// DefaultHook is used by Decimals built without an explicit hook and by
// the package-level constructors.
var DefaultHook = NoOp(DefaultPrecision)

// WithPrecision returns a copy of h with the given precision.
func (h *Hook) WithPrecision(precision uint32) *Hook {
	if precision < MinPrecision {
		panic("decimal: precision must be at least 2")
	}
	r := *h
	r.Precision = precision
	return &r
}

// WithRounding returns a copy of h with the given rounding mode.
func (h *Hook) WithRounding(rounding RoundingMode) *Hook {
	r := *h
	r.Rounding = rounding
	return &r
}

// WithExponents returns a copy of h with the given exponent bounds.
func (h *Hook) WithExponents(min, max int32) *Hook {
	if min >= max {
		panic("decimal: min exponent must be below max")
	}
	r := *h
	r.MinExponent, r.MaxExponent = min, max
	return &r
}

func (h *Hook) prec() int {
	if h.Precision < MinPrecision {
		return DefaultPrecision
	}
	return int(h.Precision)
}

func (h *Hook) limits() (min, max int32) {
	if h.MinExponent == 0 && h.MaxExponent == 0 {
		return DefaultMinExponent, DefaultMaxExponent
	}
	return h.MinExponent, h.MaxExponent
}

func (h *Hook) callbackFor(f Flags) Callback {
	switch f {
	case Clamped:
		return h.OnClamped
	case DivisionByZero:
		return h.OnDivisionByZero
	case Inexact:
		return h.OnInexact
	case InvalidOperation:
		return h.OnInvalidOperation
	case Overflow:
		return h.OnOverflow
	case Rounded:
		return h.OnRounded
	case Subnormal:
		return h.OnSubnormal
	case Underflow:
		return h.OnUnderflow
	}
	return nil
}
