package control

import (
	"errors"
	"io"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r. If r is also an io.Seeker,
// unread payloads are skipped by seeking.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if d.s != nil {
		_, err := d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// skip moves the reading position to the end of the current field.
func (d *decoder) skip() (err error) {
	if d.finished {
		return nil
	}

	switch d.t {
	case Data1:
		err = d.seek(1)
	case Data2:
		err = d.seek(2)
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}

	d.finished = true

	return nil
}

// Next advances to the next field. It returns false at the end of the input
// or on error (see Err).
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if d.t != Unknown {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field. If the field
// does not contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		_, err = io.ReadFull(d.r, sizeBytes)
		if err != nil {
			return 0, Error.Wrap(err)
		}

		d.consumed += sizeSize

		var size uint64
		for _, b := range sizeBytes {
			size = size<<8 | uint64(b)
		}

		if size == ^uint64(0) {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size + 1
	default:
		return 0, ErrInvalidOperation
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, ErrInvalidOperation
	}

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("field already skipped")
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	d.data = make([]byte, size)

	switch d.t {
	case Data:
		d.data[0] = d.value[0] & d.t.Mask
	case Data1, Data2:
		d.data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, d.data[1:])
		if err != nil {
			return nil, Error.Wrap(err)
		}

		d.consumed += size - 1
	case DataSize, DataSizeSize:
		_, err = io.ReadFull(d.r, d.data)
		if err != nil {
			return nil, Error.Wrap(err)
		}

		d.consumed += size
	}

	d.finished = true

	return d.data, nil
}
