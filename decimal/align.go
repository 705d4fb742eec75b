package decimal

// align brings a and b to the same scale and limb count by padding zero
// limbs, then drops limb pairs that are zero in both at either end. The
// values represented do not change, but the results are not normalized.
func align(a, b *Decimal) {
	a.ensure()
	b.ensure()

	switch {
	case a.scale < b.scale:
		a.shiftIn(b.scale - a.scale)
	case b.scale < a.scale:
		b.shiftIn(a.scale - b.scale)
	}

	switch {
	case len(a.limbs) < len(b.limbs):
		a.limbs = append(a.limbs, make([]uint16, len(b.limbs)-len(a.limbs))...)
	case len(b.limbs) < len(a.limbs):
		b.limbs = append(b.limbs, make([]uint16, len(a.limbs)-len(b.limbs))...)
	}

	lo := 0
	for lo < len(a.limbs)-1 && a.limbs[lo] == 0 && b.limbs[lo] == 0 {
		lo++
	}
	a.limbs, b.limbs = a.limbs[lo:], b.limbs[lo:]
	a.scale -= lo
	b.scale -= lo

	hi := len(a.limbs)
	for hi > 1 && a.limbs[hi-1] == 0 && b.limbs[hi-1] == 0 {
		hi--
	}
	a.limbs, b.limbs = a.limbs[:hi], b.limbs[:hi]
}

// aligned reports whether a and b can be compared limb by limb.
func aligned(a, b *Decimal) bool {
	return a.scale == b.scale && len(a.limbs) == len(b.limbs) && len(a.limbs) > 0
}

// ensure gives the zero value its single zero limb.
func (d *Decimal) ensure() {
	if len(d.limbs) == 0 {
		d.setZero()
	}
}

// shiftIn prepends n least significant zero limbs, raising the scale by n.
func (d *Decimal) shiftIn(n int) {
	limbs := make([]uint16, n, n+len(d.limbs))
	d.limbs = append(limbs, d.limbs...)
	d.scale += n
}
