// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

// Cmp compares two values under the total order
//
//	-Infinity < -NaN < NaN < finite numbers < +Infinity,
//
// returning -1, 0, or 1. Finite operands are compared numerically, so
// representation does not matter: 1 equals 1.00, and +0 equals -0.
// The order makes slices of Decimals sortable deterministically.
func (d Decimal) Cmp(other Decimal) int {
	rl, rr := d.rank(), other.rank()
	switch {
	case rl < rr:
		return -1
	case rl > rr:
		return 1
	}
	if d.kind != finite { // specials of equal rank
		return 0
	}
	return cmpFinite(d, other)
}

// Equal reports whether the comparison yields 0.
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}

// CmpInt64 compares d to an integer lifted under d's hook.
func (d Decimal) CmpInt64(v int64) int {
	return d.Cmp(d.h().FromInt64(v))
}

func (d Decimal) rank() int {
	switch d.kind {
	case infinite:
		if d.neg {
			return 0
		}
		return 4
	case qnan:
		if d.neg {
			return 1
		}
		return 2
	}
	return 3
}

// cmpFinite inspects the sign of the unrounded difference of two finite
// values.
func cmpFinite(x, y Decimal) int {
	xz, yz := x.coeff.IsZero(), y.coeff.IsZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		if y.neg {
			return 1
		}
		return -1
	case yz:
		if x.neg {
			return -1
		}
		return 1
	}
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpAbs(x, y)
	if x.neg {
		c = -c
	}
	return c
}

// cmpAbs compares the magnitudes of two nonzero finite values. The
// adjusted exponents decide most cases without aligning coefficients.
func cmpAbs(x, y Decimal) int {
	ax := x.exp + int32(x.coeff.Digits())
	ay := y.exp + int32(y.coeff.Digits())
	switch {
	case ax > ay:
		return 1
	case ax < ay:
		return -1
	}
	cl, cr, _ := alignCoeffs(x, y)
	return cl.Cmp(cr)
}
