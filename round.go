// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"github.com/avdva/decimal/internal/bignat"
)

// incRequired decides whether the kept coefficient is incremented after
// discarding digits. lead is the leading discarded digit, restNonzero
// tells if anything nonzero follows it, keepLast is the last digit of
// the kept part.
func incRequired(mode RoundingMode, neg bool, lead uint64, restNonzero bool, keepLast uint64) bool {
	anyNonzero := lead != 0 || restNonzero
	switch mode {
	case Down:
		return false
	case Up:
		return anyNonzero
	case Ceiling:
		return anyNonzero && !neg
	case Floor:
		return anyNonzero && neg
	case HalfUp:
		return lead >= 5
	case HalfDown:
		return lead > 5 || lead == 5 && restNonzero
	case HalfEven:
		return lead > 5 || lead == 5 && (restNonzero || keepLast%2 == 1)
	case ZeroFiveUp:
		return anyNonzero && (keepLast == 0 || keepLast == 5)
	}
	return false
}

// round reduces the coefficient to the hook's precision and applies the
// exponent bounds.
func (d *Decimal) round() {
	d.roundSticky(false)
}

// roundSticky is round with an extra "something nonzero was already
// discarded" bit, used by division to account for a nonzero remainder.
func (d *Decimal) roundSticky(sticky bool) {
	if d.kind != finite {
		return
	}
	p := d.h().prec()
	n := d.coeff.Digits()
	if n <= p {
		if sticky {
			d.raise(Inexact)
			d.raise(Rounded)
		}
		d.checkExponent()
		return
	}
	k := n - p
	keep, rem := d.coeff.QuoRemPow10(k)
	lead, rest := rem.QuoRemPow10(k - 1)
	ld, _ := lead.Uint64()
	restNonzero := !rest.IsZero() || sticky
	if incRequired(d.h().Rounding, d.neg, ld, restNonzero, keep.Mod10()) {
		keep = keep.Inc()
		if keep.Digits() > p { // an all-nines coefficient carried over
			keep, _ = keep.QuoRemPow10(1)
			k++
		}
	}
	d.coeff = keep
	d.exp += int32(k)
	if !rem.IsZero() || sticky {
		d.raise(Inexact)
	}
	d.raise(Rounded)
	d.checkExponent()
}

// checkExponent forces the exponent into the hook's bounds. The bounds
// apply to the raw exponent, matching the Max and Min factories.
func (d *Decimal) checkExponent() {
	if d.kind != finite {
		return
	}
	min, max := d.h().limits()
	if d.coeff.IsZero() {
		if d.exp > max {
			d.exp = max
			d.raise(Clamped)
		} else if d.exp < min {
			d.exp = min
			d.raise(Clamped)
		}
		return
	}
	if d.exp > max {
		shift := int(d.exp - max)
		if d.coeff.Digits()+shift <= d.h().prec() {
			// pad with zeros, the value is unchanged
			d.coeff = d.coeff.MulPow10(shift)
			d.exp = max
			d.raise(Clamped)
		} else {
			d.overflow()
		}
		return
	}
	if d.exp < min {
		d.rescaleUp(min)
	}
}

// overflow replaces a too-large result with an infinity or with the
// largest finite value, depending on the rounding direction.
func (d *Decimal) overflow() {
	_, max := d.h().limits()
	if roundsAway(d.h().Rounding, d.neg) {
		d.kind = infinite
		d.coeff = bignat.Nat{}
		d.exp = 0
	} else {
		d.coeff = bignat.AllNines(d.h().prec())
		d.exp = max
	}
	d.raiseOnce(Inexact)
	d.raiseOnce(Rounded)
	d.raise(Overflow)
}

// raiseOnce raises a condition unless the operation already did.
func (d *Decimal) raiseOnce(f Flags) {
	if d.flags&f == 0 {
		d.raise(f)
	}
}

// roundsAway tells whether the mode sends an overflowed value to
// infinity rather than saturating at the largest finite value.
func roundsAway(mode RoundingMode, neg bool) bool {
	switch mode {
	case Down, ZeroFiveUp:
		return false
	case Ceiling:
		return !neg
	case Floor:
		return neg
	}
	return true
}

// rescaleUp raises a too-small exponent to min, discarding low digits
// with the hook's rounding mode.
func (d *Decimal) rescaleUp(min int32) {
	k := int(min - d.exp)
	keep, rem := d.coeff.QuoRemPow10(k)
	lead, rest := rem.QuoRemPow10(k - 1)
	ld, _ := lead.Uint64()
	if incRequired(d.h().Rounding, d.neg, ld, !rest.IsZero(), keep.Mod10()) {
		keep = keep.Inc()
	}
	lost := !rem.IsZero()
	d.coeff = keep
	d.exp = min
	d.raise(Subnormal)
	if lost {
		d.raiseOnce(Inexact)
		d.raiseOnce(Rounded)
		d.raise(Underflow)
	} else {
		d.raise(Clamped)
	}
}
