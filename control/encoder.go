package control

import (
	"encoding/binary"
	"io"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

// sizeBytes returns the big-endian bytes of size without leading zeros. Zero
// is encoded as a single zero byte.
func sizeBytes(size uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, size)

	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}

	return buf[i:]
}

// Data writes data using the smallest block able to hold it.
func (e *encoder) Data(data []byte) (err error) {
	defer Error.WrapP(&err)

	size := len(data)

	var header []byte

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		_, err = e.w.Write([]byte{
			Data.Prefix | data[0],
		})

		return err
	case size == 2 && data[0]&Data1.Mask == data[0]:
		header = []byte{Data1.Prefix | data[0]}
		data = data[1:]
	case size == 3 && data[0]&Data2.Mask == data[0]:
		header = []byte{Data2.Prefix | data[0]}
		data = data[1:]
	case size <= 64:
		header = []byte{DataSize.Prefix | byte(size-1)}
	default:
		sb := sizeBytes(uint64(size - 1))

		header = append([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb...)
	}

	_, err = e.w.Write(header)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return err
	}

	return nil
}

// Null writes a null block.
func (e *encoder) Null() (err error) {
	defer Error.WrapP(&err)

	_, err = e.w.Write([]byte{
		Null.Prefix,
	})

	return err
}
