package decimal

// Add returns d plus every operand in turn. With no operands it returns
// d + 1.
func (d Decimal) Add(ops ...Decimal) Decimal {
	if len(ops) == 0 {
		ops = []Decimal{one}
	}

	z := d.Clone()
	for _, x := range ops {
		z.add(x.Clone())
	}

	return z
}

// Sub returns d minus every operand in turn. With no operands it returns
// d - 1.
func (d Decimal) Sub(ops ...Decimal) Decimal {
	if len(ops) == 0 {
		ops = []Decimal{one}
	}

	z := d.Clone()
	for _, x := range ops {
		z.add(x.Neg())
	}

	return z
}

// Mul returns d multiplied by every operand in turn. With no operands it
// returns d * 2. Mul panics with ErrScaleOverflow if the scale of the product
// does not fit in an int.
func (d Decimal) Mul(ops ...Decimal) Decimal {
	if len(ops) == 0 {
		ops = []Decimal{two}
	}

	z := d.Clone()
	for _, x := range ops {
		z.mul(x)
	}

	return z
}

// Quo is not provided. It always fails with a CapabilityError.
func (d Decimal) Quo(ops ...Decimal) (Decimal, error) {
	return Decimal{}, CapabilityError.New("division is not supported")
}

// add sets z to z + x in place. x is consumed: alignment pads it.
func (z *Decimal) add(x Decimal) {
	switch {
	case x.sign == 0:
		return
	case z.sign == 0:
		*z = x
		return
	}

	align(z, &x)

	if z.sign == x.sign {
		var carry uint16
		for i := range z.limbs {
			s := z.limbs[i] + x.limbs[i] + carry

			carry = 0
			if s >= base {
				s -= base
				carry = 1
			}

			z.limbs[i] = s
		}

		if carry != 0 {
			z.limbs = append(z.limbs, 1)
		}

		z.normalize()

		return
	}

	z.sign *= cmpAligned(z, &x, true)

	borrow := 0
	for i := range z.limbs {
		v := int(z.limbs[i]) - int(x.limbs[i]) - borrow

		borrow = 0
		if v < 0 {
			v += base
			borrow = 1
		}

		z.limbs[i] = uint16(v)
	}

	// The subtrahend was the larger magnitude: z holds base^n - |result|.
	if borrow != 0 {
		complement(z.limbs)
	}

	z.normalize()
}

// complement replaces m with base^len(m) - m.
func complement(m []uint16) {
	i := 0
	for i < len(m) && m[i] == 0 {
		i++
	}
	if i == len(m) {
		return
	}

	m[i] = base - m[i]
	for i++; i < len(m); i++ {
		m[i] = base - 1 - m[i]
	}
}

// addScale returns a + b. Scales past the range of int cannot be
// represented, so an overflowing sum panics with ErrScaleOverflow.
func addScale(a, b int) int {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(ErrScaleOverflow)
	}

	return s
}

// mul sets z to z * x in place using schoolbook multiplication.
func (z *Decimal) mul(x Decimal) {
	z.sign *= x.sign
	if z.sign == 0 {
		z.setZero()
		return
	}

	z.scale = addScale(z.scale, x.scale)

	a, b := z.limbs, x.limbs
	prod := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		var carry uint32
		for j, bj := range b {
			t := prod[i+j] + uint32(ai)*uint32(bj) + carry
			prod[i+j] = t % base
			carry = t / base
		}
		prod[i+len(b)] += carry
	}

	limbs := make([]uint16, len(prod))
	for i, p := range prod {
		limbs[i] = uint16(p)
	}

	z.limbs = limbs
	z.normalize()
}
