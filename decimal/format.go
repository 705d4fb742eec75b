package decimal

import "strings"

// String returns d in base 10 without exponent or grouping: an optional
// minus sign, the integer digits and, when d is fractional, a point and the
// fractional digits without trailing zeros.
func (d Decimal) String() string {
	c := d.Clone()
	u := one.Clone()

	// Aligning with 1 guarantees a limb for the units position.
	align(&c, &u)

	buf := make([]byte, 0, limbDigits*len(c.limbs)+2)
	for i := len(c.limbs) - 1; i >= 0; i-- {
		if i == c.scale-1 {
			buf = append(buf, '.')
		}

		l := c.limbs[i]
		buf = append(buf, byte('0'+l/100), byte('0'+l/10%10), byte('0'+l%10))
	}

	s := string(buf)
	if c.scale > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	s = strings.TrimLeft(s, "0")
	if s == "" || s[0] == '.' {
		s = "0" + s
	}

	if c.sign < 0 {
		s = "-" + s
	}

	return s
}

// Text returns d in the given base. Only base 10 is supported; any other
// base fails with a CapabilityError.
func (d Decimal) Text(radix int) (string, error) {
	if radix != 10 {
		return "", CapabilityError.New("cannot format in base %d", radix)
	}

	return d.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	*d, err = Parse(string(text))
	return err
}
