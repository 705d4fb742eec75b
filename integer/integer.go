package integer

import (
	"math/big"

	"github.com/calebcase/bn/control"
)

// Block is a signed integer number stored as its big-endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// SetInt sets b to the value of i and returns b.
func (b *Block) SetInt(i *big.Int) *Block {
	b.Value = new(big.Int).Abs(i).Bytes()
	b.Negative = i.Sign() < 0

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}

	return b
}

// Int returns the value of b.
func (b Block) Int() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler. The sign is stored in
// the lowest bit (zigzag).
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	Signed   bool
	Nullable bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next field into b. It returns null=true (and leaves b
// untouched) when the field is a null block of a nullable schema.
func (d *Decoder) Decode(b *Block) (null bool, err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		err = d.cd.Err()
		if err != nil {
			return false, err
		}

		return false, Error.New("unexpected end of input")
	}

	switch t := d.cd.Type(); {
	case t == control.Null && d.schema.Nullable:
		return true, nil
	case !t.IsData():
		return false, Error.New("unexpected field %q", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return false, err
	}

	if d.schema.Signed {
		return false, b.UnmarshalBinary(data)
	}

	b.Value = append([]byte(nil), data...)
	b.Negative = false

	return false, nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes b to the underlying control encoder. A nil block is written
// as null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil {
		if !e.schema.Nullable {
			return Error.New("invalid: nil block for non-nullable schema")
		}

		return e.ce.Null()
	}

	if b.Negative && !e.schema.Signed {
		return Error.New("invalid: negative value for unsigned schema")
	}

	data := b.Value
	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	}

	if len(data) == 0 {
		data = []byte{0}
	}

	return e.ce.Data(data)
}
