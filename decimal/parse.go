package decimal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts text to a decimal. Grouping separators (commas,
// underscores and white space) are ignored anywhere in the text. The
// accepted grammar is:
//
//  [+-]? (digits [. digits*] | . digits+) ([eE] [+-]? digits)?
//
// A literal starting with the exponent marker has an implied leading 1, so
// "e-3" is 0.001. Any literal without a nonzero digit is 0, whatever its
// sign. The exponent must fit in 32 bits. Errors are of the FormatError
// class.
func Parse(s string) (Decimal, error) {
	var d Decimal

	err := d.parse(s)
	if err != nil {
		return Decimal{}, err
	}

	return d, nil
}

// MustParse is like Parse but panics if the text is not a decimal.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return d
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == '_' || unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// scanDigits returns the index of the first non-digit at or after i.
func scanDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	return i
}

// divMod3 returns q and r such that n = 3q + r and 0 <= r < 3.
func divMod3(n int) (q, r int) {
	q, r = n/3, n%3
	if r < 0 {
		q--
		r += 3
	}

	return q, r
}

// limb packs up to three decimal digits.
func limb(digits string) uint16 {
	var v uint16
	for i := 0; i < len(digits); i++ {
		v = v*10 + uint16(digits[i]-'0')
	}

	return v
}

func (d *Decimal) parse(orig string) error {
	s := stripSeparators(orig)
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = "1" + s
	}

	i := 0

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	start := i
	i = scanDigits(s, i)
	whole := s[start:i]

	var frac string
	if i < len(s) && s[i] == '.' {
		start = i + 1
		i = scanDigits(s, start)
		frac = s[start:i]
	}

	if len(whole)+len(frac) == 0 {
		return syntaxError(orig, nil)
	}

	var exp int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		start = i + 1
		i = start
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}

		end := scanDigits(s, i)
		if end == i {
			return syntaxError(orig, nil)
		}
		i = end

		var err error
		exp, err = strconv.ParseInt(s[start:i], 10, 32)
		if err != nil {
			return syntaxError(orig, err)
		}
	}

	if i != len(s) {
		return syntaxError(orig, nil)
	}

	digits := whole + frac
	if strings.Trim(digits, "0") == "" {
		d.setZero()
		return nil
	}

	// The exponent is split into whole limbs, which only move the scale,
	// and a remainder of 0-2 digits, which moves the decimal point within
	// the digits.
	shift, r := divMod3(int(exp))
	point := len(whole) + r
	if point > len(digits) {
		digits += strings.Repeat("0", point-len(digits))
	}

	whole, frac = digits[:point], digits[point:]
	if r := len(frac) % limbDigits; r != 0 {
		frac += strings.Repeat("0", limbDigits-r)
	}

	limbs := make([]uint16, 0, len(frac)/limbDigits+len(whole)/limbDigits+1)
	for j := len(frac); j > 0; j -= limbDigits {
		limbs = append(limbs, limb(frac[j-limbDigits:j]))
	}
	for j := len(whole); j > 0; j -= limbDigits {
		lo := j - limbDigits
		if lo < 0 {
			lo = 0
		}
		limbs = append(limbs, limb(whole[lo:j]))
	}

	d.sign = 1
	if negative {
		d.sign = -1
	}
	d.limbs = limbs
	d.scale = len(frac)/limbDigits - shift
	d.normalize()

	return nil
}
