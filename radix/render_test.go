package radix_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/changebase/digit"
	"github.com/calebcase/changebase/numeric"
	"github.com/calebcase/changebase/radix"
)

func TestValueToBase(t *testing.T) {
	type TC struct {
		value decimal.Decimal
		base  decimal.Decimal
		text  string
		Mark  error
	}

	tcs := []TC{
		{d("255"), d("16"), "FF", oops.New("unexpected")},
		{d("135"), d("100"), "1[35]", oops.New("unexpected")},
		{d("0.5"), d("2"), "0.1", oops.New("unexpected")},
		{d("0.25"), d("2"), "0.01", oops.New("unexpected")},
		{d("4.9"), d("2.5"), "12.1", oops.New("unexpected")},
		{d("10"), d("10"), "10", oops.New("unexpected")},
		{d("100"), d("10"), "100", oops.New("unexpected")},
		{d("-12.5"), d("10"), "-12.5", oops.New("unexpected")},
		{d("10.3"), d("10.3"), "10", oops.New("unexpected")},
		{d("35"), d("36"), "Z", oops.New("unexpected")},
		{d("1000"), d("100"), "[10]0", oops.New("unexpected")},
		{d("36"), d("36"), "10", oops.New("unexpected")},
		{d("0.00000001"), d("10"), "0.00000001", oops.New("unexpected")},
		{d("3"), phi(), "100.01", oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.text), func(t *testing.T) {
			text, err := radix.ValueToBase(tc.value, tc.base)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.text, text, tc.Mark)
		})
	}
}

func TestValueToBaseZero(t *testing.T) {
	for _, base := range []decimal.Decimal{d("1.0001"), d("2"), d("10"), d("10.3"), phi(), sqrt(2), d("1000000")} {
		text, err := radix.ValueToBase(decimal.Zero, base)
		require.NoError(t, err)
		require.Equal(t, "0", text)
	}
}

func TestValueToBaseInvalidBase(t *testing.T) {
	for _, base := range []decimal.Decimal{d("1"), d("0.999"), d("0"), d("-2")} {
		_, err := radix.ValueToBase(d("5"), base)
		require.Error(t, err)
		require.True(t, radix.ErrInvalidBase.Has(err), "%+v", err)
	}
}

func TestValueToBaseBracket(t *testing.T) {
	text, err := radix.ValueToBase(d("135"), d("100"))
	require.NoError(t, err)
	require.Contains(t, text, "[")
}

// The elided form drops the digit at the floor. The ellipsis takes its
// place, so it has fewer digits than the exact form but the same rune count.
func TestValueToBaseElisionDropsDigits(t *testing.T) {
	exact := "0.000000001"

	text, err := radix.ValueToBase(d(exact), d("10"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(text, digit.Ellipsis), text)
	require.Equal(t, utf8.RuneCountInString(exact), utf8.RuneCountInString(text))

	digits := strings.TrimSuffix(text, digit.Ellipsis)
	require.Less(t, utf8.RuneCountInString(digits), utf8.RuneCountInString(exact))
	require.Equal(t, "0.00000000", digits)
	require.Len(t, radix.DigitExponentPairs(text), 9)
	require.Len(t, radix.DigitExponentPairs(exact), 10)

	_, err = radix.ValueFromBase(text, d("10"))
	require.True(t, radix.ErrUnrecognizedDigit.Has(err), "%+v", err)

	token, ok := radix.Token(err)
	require.True(t, ok)
	require.Equal(t, digit.Ellipsis, token)

	t.Run("irrational", func(t *testing.T) {
		text, err := radix.ValueToBase(d("1"), d("3.14159265358979323846264338327950288419716939937510"))
		require.NoError(t, err)
		require.Equal(t, "1", text)

		text, err = radix.ValueToBase(d("4"), d("3.14159265358979323846264338327950288419716939937510"))
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(text, "10.2"), text)
		require.True(t, strings.HasSuffix(text, digit.Ellipsis), text)

		pairs := radix.DigitExponentPairs(text)
		require.Equal(t, 1, pairs[0].Exponent)
		require.Equal(t, -8, pairs[len(pairs)-1].Exponent)
	})
}

func TestValueToBaseFloor(t *testing.T) {
	c := radix.NewConverter(numeric.Context{
		Precision: numeric.DefaultPrecision,
		Floor:     -3,
	})

	text, err := c.ValueToBase(d("0.125"), d("10"))
	require.NoError(t, err)
	require.Equal(t, "0.12"+digit.Ellipsis, text)

	text, err = c.ValueToBase(d("0.12"), d("10"))
	require.NoError(t, err)
	require.Equal(t, "0.12", text)

	text, err = c.ValueToBase(d("0.125"), d("2"))
	require.NoError(t, err)
	require.Equal(t, "0.00"+digit.Ellipsis, text)
}

func TestValueToBaseFloorAtPoint(t *testing.T) {
	c := radix.NewConverter(numeric.Context{
		Precision: numeric.DefaultPrecision,
		Floor:     -1,
	})

	text, err := c.ValueToBase(d("0.5"), d("10"))
	require.NoError(t, err)
	require.Equal(t, "0."+digit.Ellipsis, text)

	text, err = c.ValueToBase(d("12.5"), d("10"))
	require.NoError(t, err)
	require.Equal(t, "12."+digit.Ellipsis, text)

	text, err = c.ValueToBase(d("12"), d("10"))
	require.NoError(t, err)
	require.Equal(t, "12", text)
}

func TestValueToBaseLongValues(t *testing.T) {
	type TC struct {
		name  string
		value decimal.Decimal
		base  decimal.Decimal
		text  string
		Mark  error
	}

	ffs, err := radix.ValueFromBase(strings.Repeat("F", 40), d("16"))
	require.NoError(t, err)

	tcs := []TC{
		{"47 nines", d(strings.Repeat("9", 47)), d("10"), strings.Repeat("9", 47), oops.New("unexpected")},
		{"49 nines", d(strings.Repeat("9", 49)), d("10"), strings.Repeat("9", 49), oops.New("unexpected")},
		{"40 hex F", ffs, d("2"), strings.Repeat("1", 160), oops.New("unexpected")},
		{"40 hex F in hex", ffs, d("16"), strings.Repeat("F", 40), oops.New("unexpected")},
		{"one and nines", d("1" + strings.Repeat("9", 46)), d("10"), "1" + strings.Repeat("9", 46), oops.New("unexpected")},
		{"nines fraction", d("0." + strings.Repeat("9", 40)), d("10"), "0.99999999" + digit.Ellipsis, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			text, err := radix.ValueToBase(tc.value, tc.base)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.text, text, tc.Mark)

			if strings.HasSuffix(text, digit.Ellipsis) {
				return
			}

			back, err := radix.ValueFromBase(text, tc.base)
			require.NoError(t, err, tc.Mark)
			require.True(t, back.Equal(tc.value), "%s != %s: %v", back, tc.value, tc.Mark)
		})
	}
}

func BenchmarkValueToBase(b *testing.B) {
	base := phi()
	value := d("123456.789")

	for n := 0; n < b.N; n++ {
		_, err := radix.ValueToBase(value, base)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
