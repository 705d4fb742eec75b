package decimal

import (
	"fmt"
	"math/big"
	"strconv"
)

const (
	// base is the radix of a limb.
	base = 1000

	// limbDigits is the number of decimal digits packed into a limb.
	limbDigits = 3
)

// Decimal is an arbitrary-precision signed decimal number.
//
// The magnitude is a sequence of base 1000 limbs, least significant first,
// and scale counts the limbs lying to the right of the decimal point:
//
//  value = sign * (limbs[0] + limbs[1]*1000 + ...) * 10^(-3*scale)
//
// Scale is negative when the decimal point lies beyond the stored limbs.
// The zero value is 0. Operations never modify their receiver or
// arguments, so a Decimal may be copied and shared freely.
type Decimal struct {
	sign  int
	limbs []uint16
	scale int
}

var (
	one  = New(1)
	two  = New(2)
	half = Decimal{sign: 1, limbs: []uint16{500}, scale: 1}
)

// New returns a decimal holding v.
func New(v int64) Decimal {
	d := Decimal{}
	if v == 0 {
		d.setZero()
		return d
	}

	d.sign = 1
	u := uint64(v)
	if v < 0 {
		d.sign = -1
		u = uint64(-v)
	}

	for u > 0 {
		d.limbs = append(d.limbs, uint16(u%base))
		u /= base
	}

	d.normalize()

	return d
}

// NewFromFloat64 returns a decimal holding the shortest decimal text that
// round trips to f.
func NewFromFloat64(f float64) (Decimal, error) {
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

// From converts v to a decimal. It accepts Decimal and *Decimal (the result
// is a deep copy), string and []byte literals, every integer and float
// kind, *big.Int and fmt.Stringer.
func From(v interface{}) (Decimal, error) {
	switch v := v.(type) {
	case nil:
		return Decimal{}, syntaxError("<nil>", nil)
	case Decimal:
		return v.Clone(), nil
	case *Decimal:
		if v == nil {
			return Decimal{}, syntaxError("<nil>", nil)
		}
		return v.Clone(), nil
	case string:
		return Parse(v)
	case []byte:
		return Parse(string(v))
	case int:
		return New(int64(v)), nil
	case int8:
		return New(int64(v)), nil
	case int16:
		return New(int64(v)), nil
	case int32:
		return New(int64(v)), nil
	case int64:
		return New(v), nil
	case uint:
		return Parse(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return New(int64(v)), nil
	case uint16:
		return New(int64(v)), nil
	case uint32:
		return New(int64(v)), nil
	case uint64:
		return Parse(strconv.FormatUint(v, 10))
	case float32:
		return Parse(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return NewFromFloat64(v)
	case *big.Int:
		if v == nil {
			return Decimal{}, syntaxError("<nil>", nil)
		}
		return Parse(v.String())
	case fmt.Stringer:
		return Parse(v.String())
	}

	return Decimal{}, syntaxError(fmt.Sprintf("%T", v), nil)
}

// Clone returns a deep copy of d.
func (d Decimal) Clone() Decimal {
	if len(d.limbs) == 0 {
		return Decimal{limbs: []uint16{0}}
	}

	limbs := make([]uint16, len(d.limbs))
	copy(limbs, d.limbs)

	return Decimal{
		sign:  d.sign,
		limbs: limbs,
		scale: d.scale,
	}
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.sign
}

// Scale returns the number of limbs after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Limbs returns a copy of the magnitude, least significant limb first.
func (d Decimal) Limbs() []uint16 {
	return d.Clone().limbs
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d.sign == 0
}

// IsInt reports whether d has no fractional part.
func (d Decimal) IsInt() bool {
	return d.scale <= 0
}

func (d *Decimal) setZero() {
	d.sign = 0
	d.limbs = []uint16{0}
	d.scale = 0
}

// normalize strips zero limbs from both ends. Removing a least significant
// limb divides the stored integer by 1000, so scale follows it.
func (d *Decimal) normalize() *Decimal {
	lo := 0
	for lo < len(d.limbs)-1 && d.limbs[lo] == 0 {
		lo++
	}
	d.limbs = d.limbs[lo:]
	d.scale -= lo

	hi := len(d.limbs)
	for hi > 1 && d.limbs[hi-1] == 0 {
		hi--
	}
	d.limbs = d.limbs[:hi]

	if len(d.limbs) == 0 || (len(d.limbs) == 1 && d.limbs[0] == 0) {
		d.setZero()
	}

	return d
}
