// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"github.com/avdva/decimal/internal/bignat"
)

// Add returns d + other, rounded to d's hook.
func (d Decimal) Add(other Decimal) Decimal {
	return add(d, other)
}

// Sub returns d - other. Subtraction is addition with the right
// operand's sign flipped; a NaN keeps its sign.
func (d Decimal) Sub(other Decimal) Decimal {
	if other.kind != qnan {
		other.neg = !other.neg
	}
	return add(d, other)
}

func add(x, y Decimal) Decimal {
	res := Decimal{hook: x.hook}
	if x.kind == qnan || y.kind == qnan {
		res.kind = qnan
		if x.kind == qnan {
			res.neg = x.neg
		} else {
			res.neg = y.neg
		}
		return res
	}
	if x.kind == infinite && y.kind == infinite {
		if x.neg == y.neg {
			res.kind, res.neg = infinite, x.neg
			return res
		}
		res.kind = qnan
		res.raise(InvalidOperation)
		return res
	}
	if x.kind == infinite {
		res.kind, res.neg = infinite, x.neg
		return res
	}
	if y.kind == infinite {
		res.kind, res.neg = infinite, y.neg
		return res
	}
	cl, cr, e := alignCoeffs(x, y)
	res.exp = e
	if x.neg == y.neg {
		res.coeff = cl.Add(cr)
		res.neg = x.neg
	} else {
		switch cl.Cmp(cr) {
		case 1:
			res.coeff = cl.Sub(cr)
			res.neg = x.neg
		case -1:
			res.coeff = cr.Sub(cl)
			res.neg = y.neg
		default: // the operands cancel out exactly
			res.neg = res.h().Rounding == Floor
		}
	}
	res.round()
	return res
}

// alignCoeffs brings both coefficients to the smaller exponent.
func alignCoeffs(x, y Decimal) (cl, cr bignat.Nat, e int32) {
	cl, cr = x.coeff, y.coeff
	switch {
	case x.exp > y.exp:
		cl = cl.MulPow10(int(x.exp - y.exp))
		e = y.exp
	case x.exp < y.exp:
		cr = cr.MulPow10(int(y.exp - x.exp))
		e = x.exp
	default:
		e = x.exp
	}
	return cl, cr, e
}

// Mul returns d * other, rounded to d's hook.
func (d Decimal) Mul(other Decimal) Decimal {
	x, y := d, other
	res := Decimal{hook: x.hook}
	if x.kind == qnan || y.kind == qnan {
		res.kind = qnan
		if x.kind == qnan {
			res.neg = x.neg
		} else {
			res.neg = y.neg
		}
		return res
	}
	if x.kind == infinite || y.kind == infinite {
		if x.IsZero() || y.IsZero() {
			res.kind = qnan
			res.raise(InvalidOperation)
			return res
		}
		res.kind, res.neg = infinite, x.neg != y.neg
		return res
	}
	res.neg = x.neg != y.neg
	res.coeff = x.coeff.Mul(y.coeff)
	res.exp = x.exp + y.exp
	res.round()
	return res
}

// Div returns d / other, rounded to d's hook.
func (d Decimal) Div(other Decimal) Decimal {
	x, y := d, other
	res := Decimal{hook: x.hook}
	if x.kind == qnan || y.kind == qnan {
		res.kind = qnan
		if x.kind == qnan {
			res.neg = x.neg
		} else {
			res.neg = y.neg
		}
		return res
	}
	if x.kind == infinite && y.kind == infinite {
		res.kind = qnan
		res.raise(InvalidOperation)
		return res
	}
	if y.IsZero() {
		if x.IsZero() {
			res.kind = qnan
			res.raise(DivisionByZero)
			return res
		}
		res.kind, res.neg = infinite, x.neg != y.neg
		res.raise(DivisionByZero)
		res.raise(InvalidOperation)
		return res
	}
	if x.kind == infinite {
		res.kind, res.neg = infinite, x.neg != y.neg
		return res
	}
	if y.kind == infinite {
		res.neg = x.neg != y.neg
		return res
	}
	res.neg = x.neg != y.neg
	if x.IsZero() {
		res.exp = x.exp - y.exp
		res.round()
		return res
	}
	coeff, adjust, rem := longDiv(x.coeff, y.coeff, res.h().prec())
	res.coeff = coeff
	res.exp = x.exp - (y.exp + adjust)
	res.roundSticky(!rem.IsZero())
	return res
}

// longDiv runs decimal long division of two coefficients, producing up
// to prec+1 quotient digits, enough for the rounding step to decide.
func longDiv(dividend, divisor bignat.Nat, prec int) (quo bignat.Nat, adjust int32, rem bignat.Nat) {
	for dividend.Cmp(divisor) < 0 {
		dividend = dividend.MulPow10(1)
		adjust++
	}
	for next := divisor.MulPow10(1); dividend.Cmp(next) >= 0; next = divisor.MulPow10(1) {
		divisor = next
		adjust--
	}
	for {
		for divisor.Cmp(dividend) <= 0 {
			dividend = dividend.Sub(divisor)
			quo = quo.Inc()
		}
		if dividend.IsZero() && adjust >= 0 || quo.Digits() == prec+1 {
			break
		}
		quo = quo.MulPow10(1)
		dividend = dividend.MulPow10(1)
		adjust++
	}
	return quo, adjust, dividend
}
