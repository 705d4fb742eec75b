package control_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bn/control"
)

// onlyReader hides any io.Seeker implementation of the wrapped reader.
type onlyReader struct {
	r *bytes.Reader
}

func (o onlyReader) Read(p []byte) (int, error) {
	return o.r.Read(p)
}

func TestDecoder(t *testing.T) {
	type TC struct {
		Input []byte
		Types []control.Type
		Mark  error
	}

	tcs := []TC{
		{
			Input: []byte{0b_1000_0000},
			Types: []control.Type{control.Data},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{0b_0100_0000, 0b_0000_0000},
			Types: []control.Type{control.DataSize},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{0b_0010_0000, 0b_0000_0000},
			Types: []control.Type{control.Data1},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
			Types: []control.Type{control.Data2},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
			Types: []control.Type{control.DataSizeSize},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{0b_0000_0001},
			Types: []control.Type{control.Empty},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{0b_0000_0000},
			Types: []control.Type{control.Null},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []byte{
				0b_0100_0001, 0b_0000_0001, 0b_0000_0010, // dz
				0b_1000_0011, // d
				0b_0000_0000, // n
				0b_0001_0000, 0b_0000_0000, 0b_0000_0000, // d2
			},
			Types: []control.Type{
				control.DataSize,
				control.Data,
				control.Null,
				control.Data2,
			},
			Mark: oops.New("unexpected"),
		},
	}

	readers := map[string]func([]byte) control.Decoder{
		"seeker": func(input []byte) control.Decoder {
			return control.NewDecoder(bytes.NewReader(input))
		},
		"reader": func(input []byte) control.Decoder {
			return control.NewDecoder(onlyReader{bytes.NewReader(input)})
		},
	}

	for rname, newDecoder := range readers {
		t.Run(rname, func(t *testing.T) {
			for _, tc := range tcs {
				name := []string{}
				for _, field := range tc.Types {
					name = append(name, field.Abbr)
				}

				t.Run(strings.Join(name, ","), func(t *testing.T) {
					d := newDecoder(tc.Input)

					types := []control.Type{}

					// Fields are never read: Next must skip every payload.
					for d.Next() {
						field := d.Type()
						types = append(types, field)

						t.Logf("Type: %s\n", field.Abbr)
					}
					err := d.Err()
					require.NoError(t, err, tc.Mark)

					require.Equal(t, tc.Types, types, tc.Mark)
					require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
				})
			}
		})
	}
}

func TestDecoderData(t *testing.T) {
	input := []byte{
		0b_0100_0001, 0b_0000_0001, 0b_0000_0010, // dz
		0b_1000_0011, // d
		0b_0010_0001, 0b_0000_0100, // d1
	}

	d := control.NewDecoder(bytes.NewReader(input))

	require.True(t, d.Next())
	data, err := d.Data()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, data)

	// Reading twice returns the buffered payload.
	data, err = d.Data()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, data)

	require.True(t, d.Next())
	data, err = d.Data()
	require.NoError(t, err)
	require.Equal(t, []byte{3}, data)

	require.True(t, d.Next())
	data, err = d.Data()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 4}, data)

	require.False(t, d.Next())
	require.NoError(t, d.Err())
}

func TestDecoderErrors(t *testing.T) {
	type TC struct {
		Name  string
		Input []byte
		Mark  error
	}

	tcs := []TC{
		{
			Name:  "container",
			Input: []byte{0b_0000_0101, 0b_1000_0000},
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "skip",
			Input: []byte{0b_0000_0010, 0b_0000_0000},
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "truncated",
			Input: []byte{0b_0100_0011, 0b_0000_0000},
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "truncated size",
			Input: []byte{0b_0000_1001, 0b_0000_0000},
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			d := control.NewDecoder(bytes.NewReader(tc.Input))

			for d.Next() {
				_, err := d.Data()
				if err != nil {
					break
				}
			}

			err := d.Err()
			t.Logf("Decoder: %s\n", spew.Sdump(d))
			require.Error(t, err, tc.Mark)
			require.True(t, control.Error.Has(err), tc.Mark)
		})
	}
}
