package decimal

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestRounding(t *testing.T) {
	type TC struct {
		input string
		trunc string
		floor string
		ceil  string
		round string
		not   string
		Mark  error
	}

	tcs := []TC{
		{input: "2.5", trunc: "2", floor: "2", ceil: "3", round: "3", not: "-3", Mark: oops.New("unexpected")},
		{input: "-2.5", trunc: "-2", floor: "-3", ceil: "-2", round: "-2", not: "1", Mark: oops.New("unexpected")},
		{input: "2.4", trunc: "2", floor: "2", ceil: "3", round: "2", not: "-3", Mark: oops.New("unexpected")},
		{input: "-2.6", trunc: "-2", floor: "-3", ceil: "-2", round: "-3", not: "1", Mark: oops.New("unexpected")},
		{input: "7", trunc: "7", floor: "7", ceil: "7", round: "7", not: "-8", Mark: oops.New("unexpected")},
		{input: "-7", trunc: "-7", floor: "-7", ceil: "-7", round: "-7", not: "6", Mark: oops.New("unexpected")},
		{input: "0", trunc: "0", floor: "0", ceil: "0", round: "0", not: "-1", Mark: oops.New("unexpected")},
		{input: "0.5", trunc: "0", floor: "0", ceil: "1", round: "1", not: "-1", Mark: oops.New("unexpected")},
		{input: "-0.5", trunc: "0", floor: "-1", ceil: "0", round: "0", not: "-1", Mark: oops.New("unexpected")},
		{input: "-0.001", trunc: "0", floor: "-1", ceil: "0", round: "0", not: "-1", Mark: oops.New("unexpected")},
		{input: "1000.001", trunc: "1000", floor: "1000", ceil: "1001", round: "1000", not: "-1001", Mark: oops.New("unexpected")},
		{input: "1e-10", trunc: "0", floor: "0", ceil: "1", round: "0", not: "-1", Mark: oops.New("unexpected")},
		{input: "123456.999", trunc: "123456", floor: "123456", ceil: "123457", round: "123457", not: "-123457", Mark: oops.New("unexpected")},
		{input: "1e6", trunc: "1000000", floor: "1000000", ceil: "1000000", round: "1000000", not: "-1000001", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			d := MustParse(tc.input)

			require.Equal(t, tc.trunc, d.Trunc().String(), tc.Mark)
			require.Equal(t, tc.floor, d.Floor().String(), tc.Mark)
			require.Equal(t, tc.ceil, d.Ceil().String(), tc.Mark)
			require.Equal(t, tc.round, d.Round().String(), tc.Mark)
			require.Equal(t, tc.not, d.Not().String(), tc.Mark)

			for _, r := range []Decimal{d.Trunc(), d.Floor(), d.Ceil(), d.Round(), d.Not()} {
				requireCanonical(t, r)
				require.True(t, r.IsInt())
			}

			require.Equal(t, MustParse(tc.input), d)
		})
	}
}

func TestRoundingBounds(t *testing.T) {
	for _, input := range corpus {
		d := MustParse(input)

		require.True(t, d.Floor().LessOrEqual(d), input)
		require.True(t, d.Ceil().GreaterOrEqual(d), input)
		require.True(t, d.Trunc().CmpAbs(d) <= 0, input)
		require.True(t, d.Ceil().Sub(d.Floor()).LessOrEqual(one), input)
		require.True(t, d.Not().Not().Equal(d.Trunc()), input)
	}
}

func TestNegAbs(t *testing.T) {
	type TC struct {
		input string
		neg   string
		abs   string
	}

	tcs := []TC{
		{input: "1.5", neg: "-1.5", abs: "1.5"},
		{input: "-1.5", neg: "1.5", abs: "1.5"},
		{input: "0", neg: "0", abs: "0"},
		{input: "-1000", neg: "1000", abs: "1000"},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			d := MustParse(tc.input)

			require.Equal(t, tc.neg, d.Neg().String())
			require.Equal(t, tc.abs, d.Abs().String())
			require.True(t, d.Neg().Neg().Equal(d))
			require.Zero(t, d.Neg().Sign()+d.Sign())
		})
	}

	var z Decimal
	require.Equal(t, 0, z.Neg().Sign())
	require.Equal(t, []uint16{0}, z.Abs().Limbs())
}
