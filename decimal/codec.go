package decimal

import (
	"bytes"
	"math/big"

	"github.com/calebcase/bn/control"
	"github.com/calebcase/bn/integer"
)

var bigBase = big.NewInt(base)

// scaleBits is the width of the zigzag scale for each scale size code.
var scaleBits = [4]uint{0, 6, 14, 22}

// Block is the wire form of a decimal: the signed unscaled coefficient (the
// limbs read as one base 1000 integer), the signed scale in limbs and the
// code for how many bits the scale occupies in the packed data.
//
// A zero scale is stored as a nil Scale with ScaleSize 0b00.
type Block struct {
	Value     *integer.Block
	Scale     *integer.Block
	ScaleSize uint8
}

// coefficient returns the limbs read as one signed base 1000 integer.
func coefficient(sign int, limbs []uint16) *big.Int {
	coef := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		coef.Mul(coef, bigBase)
		coef.Add(coef, big.NewInt(int64(limbs[i])))
	}
	if sign < 0 {
		coef.Neg(coef)
	}

	return coef
}

// fromCoefficient returns the normalized decimal coef * 1000^-scale.
func fromCoefficient(coef *big.Int, scale int) Decimal {
	d := Decimal{
		sign:  coef.Sign(),
		scale: scale,
	}

	coef = new(big.Int).Abs(coef)
	m := new(big.Int)
	for coef.Sign() > 0 {
		coef.DivMod(coef, bigBase, m)
		d.limbs = append(d.limbs, uint16(m.Int64()))
	}

	d.normalize()

	return d
}

// zigzag returns the zigzag form of b as an integer.
func zigzag(b *integer.Block) (*big.Int, error) {
	data, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(data), nil
}

// Block returns the wire form of d. ScaleSize is the smallest code whose
// width holds the scale, or 0b11 when none does.
func (d Decimal) Block() *Block {
	c := d.Clone()

	b := &Block{
		Value: new(integer.Block).SetInt(coefficient(c.sign, c.limbs)),
	}

	if c.scale == 0 {
		return b
	}

	b.Scale = new(integer.Block).SetInt(big.NewInt(int64(c.scale)))
	b.ScaleSize = 0b11

	zz, _ := zigzag(b.Scale)
	for size := uint8(0b01); size < 0b11; size++ {
		if zz.BitLen() <= int(scaleBits[size]) {
			b.ScaleSize = size
			break
		}
	}

	return b
}

// MarshalBinary implements encoding.BinaryMarshaler. The zigzag value, the
// zigzag scale and the two bit scale size are packed into one big-endian
// integer, low bits last.
func (b *Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		return nil, Error.New("incomplete block")
	}
	if b.ScaleSize > 0b11 {
		return nil, Error.New("invalid scale size: %d", b.ScaleSize)
	}

	packed, err := zigzag(b.Value)
	if err != nil {
		return nil, err
	}

	if b.ScaleSize != 0b00 {
		if b.Scale == nil {
			return nil, Error.New("incomplete block")
		}

		scale, err := zigzag(b.Scale)
		if err != nil {
			return nil, err
		}

		bits := scaleBits[b.ScaleSize]
		if scale.BitLen() > int(bits) {
			return nil, Error.New("scale out of range: %s", b.Scale.Int())
		}

		packed.Lsh(packed, bits)
		packed.Or(packed, scale)
	} else if b.Scale != nil && b.Scale.Int().Sign() != 0 {
		return nil, Error.New("scale without scale size")
	}

	packed.Lsh(packed, 2)
	packed.Or(packed, big.NewInt(int64(b.ScaleSize)))

	data = packed.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	b.ScaleSize = data[len(data)-1] & 0b0000_0011

	packed := new(big.Int).SetBytes(data)
	packed.Rsh(packed, 2)

	switch b.ScaleSize {
	case 0b00:
		b.Scale = nil
	case 0b01, 0b10, 0b11:
		bits := scaleBits[b.ScaleSize]

		mask := new(big.Int).Lsh(big.NewInt(1), bits)
		mask.Sub(mask, big.NewInt(1))

		scale := new(big.Int).And(packed, mask)
		packed.Rsh(packed, bits)

		b.Scale = &integer.Block{}
		err = b.Scale.UnmarshalBinary(intBytes(scale))
		if err != nil {
			return err
		}
	}

	b.Value = &integer.Block{}

	return b.Value.UnmarshalBinary(intBytes(packed))
}

func intBytes(i *big.Int) []byte {
	data := i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// Decimal returns the normalized decimal held by b.
func (b *Block) Decimal() (_ Decimal, err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		return Decimal{}, Error.New("incomplete block")
	}

	scale := new(big.Int)
	if b.Scale != nil {
		scale = b.Scale.Int()
	}
	if !scale.IsInt64() || int64(int(scale.Int64())) != scale.Int64() {
		return Decimal{}, Error.New("scale out of range: %s", scale)
	}

	return fromCoefficient(b.Value.Int(), int(scale.Int64())), nil
}

// Schema represents a configured decimal field.
type Schema struct {
	// Scale is the scale in limbs shared by every value of a Fixed field.
	// Fixed fields carry only the coefficient, as a signed integer.
	Scale int
	Fixed bool

	Nullable bool
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
	fixed  *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
		fixed:  integer.NewEncoder(integer.Schema{Signed: true, Nullable: schema.Nullable}, ce),
	}
}

// Encode writes d as one data block. A nil d is written as a null block when
// the schema is nullable.
func (e *Encoder) Encode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if d == nil {
		if !e.schema.Nullable {
			return Error.New("invalid: nil decimal for non-nullable schema")
		}

		return e.ce.Null()
	}

	if e.schema.Fixed {
		c := d.Clone()
		if c.scale > e.schema.Scale {
			return Error.New("invalid: %s has more than %d fractional limbs", c, e.schema.Scale)
		}

		if c.sign != 0 {
			c.shiftIn(e.schema.Scale - c.scale)
		}

		return e.fixed.Encode(new(integer.Block).SetInt(coefficient(c.sign, c.limbs)))
	}

	data, err := d.Block().MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
	fixed  *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
		fixed:  integer.NewDecoder(integer.Schema{Signed: true, Nullable: schema.Nullable}, cd),
	}
}

// Decode reads the next decimal. It returns nil for a null field.
func (d *Decoder) Decode() (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	if d.schema.Fixed {
		ib := &integer.Block{}

		null, err := d.fixed.Decode(ib)
		if err != nil {
			return nil, err
		}
		if null {
			return nil, nil
		}

		v := fromCoefficient(ib.Int(), d.schema.Scale)

		return &v, nil
	}

	if !d.cd.Next() {
		err = d.cd.Err()
		if err != nil {
			return nil, err
		}

		return nil, Error.New("unexpected end of input")
	}

	switch t := d.cd.Type(); {
	case t == control.Null && d.schema.Nullable:
		return nil, nil
	case !t.IsData():
		return nil, Error.New("unexpected field %q", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}

	b := &Block{}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	v, err := b.Decimal()
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}

	err := NewEncoder(Schema{}, control.NewEncoder(buf)).Encode(&d)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	cd := control.NewDecoder(bytes.NewReader(data))

	v, err := NewDecoder(Schema{}, cd).Decode()
	if err != nil {
		return err
	}

	if cd.Consumed() != uint64(len(data)) {
		return Error.New("trailing data after decimal: %d bytes", uint64(len(data))-cd.Consumed())
	}

	*d = *v

	return nil
}
