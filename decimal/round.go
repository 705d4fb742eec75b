package decimal

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	z := d.Clone()
	z.sign = -z.sign

	return z
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	z := d.Clone()
	z.sign *= z.sign

	return z
}

// Trunc returns d with its fractional limbs dropped (rounding toward zero).
func (d Decimal) Trunc() Decimal {
	z := d.Clone()
	z.trunc()

	return z
}

func (z *Decimal) trunc() {
	if z.scale > 0 {
		if z.scale >= len(z.limbs) {
			z.setZero()
			return
		}

		z.limbs = z.limbs[z.scale:]
		z.scale = 0
	}

	z.normalize()
}

// Floor returns the greatest integer not greater than d.
func (d Decimal) Floor() Decimal {
	if d.sign < 0 && !d.IsInt() {
		return d.Sub().Trunc()
	}

	return d.Trunc()
}

// Ceil returns the least integer not less than d.
func (d Decimal) Ceil() Decimal {
	if d.sign > 0 && !d.IsInt() {
		return d.Add().Trunc()
	}

	return d.Trunc()
}

// Round returns Floor(d + 0.5): halves round toward positive infinity.
func (d Decimal) Round() Decimal {
	return d.Add(half).Floor()
}

// Not returns -(Trunc(d) + 1), the bitwise complement of d's integer part in
// two's complement.
func (d Decimal) Not() Decimal {
	return d.Trunc().Add().Neg()
}
