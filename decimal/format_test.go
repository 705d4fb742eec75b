package decimal

import (
	"encoding/json"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	type TC struct {
		input string
		text  string
		Mark  error
	}

	tcs := []TC{
		{input: "1", text: "1", Mark: oops.New("unexpected")},
		{input: "1234000", text: "1234000", Mark: oops.New("unexpected")},
		{input: "0.0005678", text: "0.0005678", Mark: oops.New("unexpected")},
		{input: "1234000.0005678", text: "1234000.0005678", Mark: oops.New("unexpected")},
		{input: "-12", text: "-12", Mark: oops.New("unexpected")},
		{input: "0", text: "0", Mark: oops.New("unexpected")},
		{input: "-0.000", text: "0", Mark: oops.New("unexpected")},
		{input: "0.5", text: "0.5", Mark: oops.New("unexpected")},
		{input: "-0.5", text: "-0.5", Mark: oops.New("unexpected")},
		{input: "12.300", text: "12.3", Mark: oops.New("unexpected")},
		{input: "007", text: "7", Mark: oops.New("unexpected")},
		{input: "1e6", text: "1000000", Mark: oops.New("unexpected")},
		{input: "1e-10", text: "0.0000000001", Mark: oops.New("unexpected")},
		{input: "1000.0006", text: "1000.0006", Mark: oops.New("unexpected")},
		{input: "1,234,567.890", text: "1234567.89", Mark: oops.New("unexpected")},
		{input: "999.999", text: "999.999", Mark: oops.New("unexpected")},
		{input: "-123456789.000001", text: "-123456789.000001", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			d := MustParse(tc.input)
			require.Equal(t, tc.text, d.String(), tc.Mark)

			text, err := d.Text(10)
			require.NoError(t, err)
			require.Equal(t, tc.text, text, tc.Mark)
		})
	}
}

func TestFromFloatString(t *testing.T) {
	type TC struct {
		v    float64
		text string
	}

	tcs := []TC{
		{v: 123, text: "123"},
		{v: 123000, text: "123000"},
		{v: 0.000456, text: "0.000456"},
		{v: 123.456, text: "123.456"},
		{v: 1000.0006, text: "1000.0006"},
		{v: -1, text: "-1"},
		{v: 0.0005678, text: "0.0005678"},
		{v: 1234000.0005678, text: "1234000.0005678"},
		{v: 1e21, text: "1000000000000000000000"},
	}

	for _, tc := range tcs {
		t.Run(tc.text, func(t *testing.T) {
			d, err := NewFromFloat64(tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.text, d.String())
		})
	}
}

func TestText(t *testing.T) {
	for _, radix := range []int{2, 8, 16, 36} {
		_, err := New(255).Text(radix)
		require.Error(t, err)
		require.True(t, CapabilityError.Has(err))
	}
}

func TestTextMarshaling(t *testing.T) {
	type invoice struct {
		Total  Decimal  `json:"total"`
		Refund *Decimal `json:"refund,omitempty"`
	}

	refund := MustParse("-0.25")
	in := invoice{
		Total:  MustParse("1234.5600"),
		Refund: &refund,
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"total":"1234.56","refund":"-0.25"}`, string(data))

	var out invoice
	err = json.Unmarshal(data, &out)
	require.NoError(t, err)
	require.True(t, in.Total.Equal(out.Total))
	require.NotNil(t, out.Refund)
	require.True(t, refund.Equal(*out.Refund))

	err = json.Unmarshal([]byte(`{"total":"12..5"}`), &out)
	require.Error(t, err)
	require.True(t, FormatError.Has(err))
}
