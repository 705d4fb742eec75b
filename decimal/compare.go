package decimal

// CompareOptions controls Compare.
type CompareOptions struct {
	// Aligned asserts that both operands already share scale and limb
	// count. Operands that do not are aligned regardless.
	Aligned bool

	// IgnoreSign orders the magnitudes only.
	IgnoreSign bool
}

// CompareOption adjusts the comparison done by Cmp and its predicates.
type CompareOption func(*CompareOptions)

// IgnoreSign makes a comparison order magnitudes only.
func IgnoreSign() CompareOption {
	return func(o *CompareOptions) {
		o.IgnoreSign = true
	}
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than
// b. It works in place: both operands are aligned and then normalized again
// before returning. Operands of different sign are ordered without aligning.
func Compare(a, b *Decimal, opts CompareOptions) int {
	if !opts.IgnoreSign && a.Sign() != b.Sign() {
		a.ensure()
		b.ensure()

		return cmpAligned(a, b, false)
	}

	if !opts.Aligned || !aligned(a, b) {
		align(a, b)
	}

	r := cmpAligned(a, b, opts.IgnoreSign)

	a.normalize()
	b.normalize()

	return r
}

// cmpAligned compares two aligned values. Unless ignoreSign is set,
// differing signs decide outright.
func cmpAligned(a, b *Decimal, ignoreSign bool) int {
	if !ignoreSign && a.sign != b.sign {
		if a.sign > b.sign {
			return +1
		}
		return -1
	}

	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] == b.limbs[i] {
			continue
		}

		r := +1
		if a.limbs[i] < b.limbs[i] {
			r = -1
		}

		// A larger magnitude is a smaller negative number.
		if !ignoreSign {
			r *= a.sign
		}

		return r
	}

	return 0
}

// Cmp returns -1, 0 or +1 as d is less than, equal to or greater than e.
func (d Decimal) Cmp(e Decimal, opts ...CompareOption) int {
	var o CompareOptions
	for _, opt := range opts {
		opt(&o)
	}

	a, b := d.Clone(), e.Clone()

	return Compare(&a, &b, o)
}

// CmpAbs compares the magnitudes of d and e.
func (d Decimal) CmpAbs(e Decimal) int {
	return d.Cmp(e, IgnoreSign())
}

// Less reports whether d < e.
func (d Decimal) Less(e Decimal, opts ...CompareOption) bool {
	return d.Cmp(e, opts...) < 0
}

// LessOrEqual reports whether d <= e.
func (d Decimal) LessOrEqual(e Decimal, opts ...CompareOption) bool {
	return d.Cmp(e, opts...) <= 0
}

// Equal reports whether d == e.
func (d Decimal) Equal(e Decimal, opts ...CompareOption) bool {
	return d.Cmp(e, opts...) == 0
}

// GreaterOrEqual reports whether d >= e.
func (d Decimal) GreaterOrEqual(e Decimal, opts ...CompareOption) bool {
	return d.Cmp(e, opts...) >= 0
}

// Greater reports whether d > e.
func (d Decimal) Greater(e Decimal, opts ...CompareOption) bool {
	return d.Cmp(e, opts...) > 0
}
