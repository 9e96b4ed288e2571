package constant_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/changebase/constant"
	"github.com/calebcase/changebase/radix"
)

const (
	phi   = "1.61803398874989484820458683436563811772030917980576286213544862"
	sqrt2 = "1.41421356237309504880168872420969807856967187537694807317667973799"
)

func TestResolve(t *testing.T) {
	type TC struct {
		name  string
		value string
		Mark  error
	}

	tcs := []TC{
		{"pi", constant.Pi, oops.New("unexpected")},
		{"PI", constant.Pi, oops.New("unexpected")},
		{"π", constant.Pi, oops.New("unexpected")},
		{"Π", constant.Pi, oops.New("unexpected")},
		{" e ", constant.E, oops.New("unexpected")},
		{"E", constant.E, oops.New("unexpected")},
		{"binary", "2", oops.New("unexpected")},
		{"Two", "2", oops.New("unexpected")},
		{"octal", "8", oops.New("unexpected")},
		{"decimal", "10", oops.New("unexpected")},
		{"dozenal", "12", oops.New("unexpected")},
		{"duodecimal", "12", oops.New("unexpected")},
		{"HEX", "16", oops.New("unexpected")},
		{"vigesimal", "20", oops.New("unexpected")},
		{"sixty", "60", oops.New("unexpected")},
		{"sexagesimal", "60", oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, ok := constant.Resolve(tc.name)
			require.True(t, ok, tc.Mark)
			require.True(t, v.Equal(decimal.RequireFromString(tc.value)), "%s: %v", v, tc.Mark)
		})
	}

	t.Run("derived", func(t *testing.T) {
		v, ok := constant.Resolve("phi")
		require.True(t, ok)
		require.Equal(t, decimal.RequireFromString(phi).Round(45).String(), v.Round(45).String())

		alt, ok := constant.Resolve("φ")
		require.True(t, ok)
		require.True(t, v.Equal(alt))

		v, ok = constant.Resolve("sqrt2")
		require.True(t, ok)
		require.Equal(t, decimal.RequireFromString(sqrt2).Round(45).String(), v.Round(45).String())
	})

	t.Run("unknown", func(t *testing.T) {
		for _, name := range []string{"", "tau", "pie", "2", "one"} {
			_, ok := constant.Resolve(name)
			require.False(t, ok, name)
		}
	})
}

func TestNames(t *testing.T) {
	names := constant.Names()
	require.Contains(t, names, "pi")
	require.Contains(t, names, "sexagesimal")
	require.IsIncreasing(t, names)

	for _, name := range names {
		v, ok := constant.Resolve(name)
		require.True(t, ok, name)
		require.NoError(t, radix.CheckBase(v), name)
	}
}

func TestParseBase(t *testing.T) {
	type TC struct {
		text  string
		value string
	}

	tcs := []TC{
		{"10", "10"},
		{" 2.5 ", "2.5"},
		{"10.3", "10.3"},
		{"hex", "16"},
		{"π", constant.Pi},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.text), func(t *testing.T) {
			v, err := constant.ParseBase(tc.text)
			require.NoError(t, err)
			require.True(t, v.Equal(decimal.RequireFromString(tc.value)), v.String())
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := constant.ParseBase("tau")
		require.True(t, constant.Error.Has(err), "%+v", err)

		_, err = constant.ParseBase("1")
		require.True(t, radix.ErrInvalidBase.Has(err), "%+v", err)

		_, err = constant.ParseBase("0.5")
		require.True(t, radix.ErrInvalidBase.Has(err), "%+v", err)
	})
}
