// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

// Neg returns the value with its sign flipped. Negating a NaN or a
// zero preserves the sign.
func (d Decimal) Neg() Decimal {
	r := d.IDup()
	if r.kind == qnan || r.IsZero() {
		return r
	}
	r.neg = !r.neg
	return r
}

// Abs returns the value with a positive sign.
func (d Decimal) Abs() Decimal {
	r := d.IDup()
	r.neg = false
	return r
}

// Inc adds 1 in place, with the hook's rounding.
func (d *Decimal) Inc() {
	*d = d.Add(d.h().FromInt64(1))
}

// Dec subtracts 1 in place, with the hook's rounding.
func (d *Decimal) Dec() {
	*d = d.Sub(d.h().FromInt64(1))
}
