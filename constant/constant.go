// Package constant resolves symbolic base names such as "pi", "phi" or
// "hex" to their values.
package constant

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/changebase/numeric"
	"github.com/calebcase/changebase/radix"
)

// Error is the class of constant errors.
var Error = errs.Class("constant")

// Literals carry the same number of digits as the default working precision.
const (
	Pi = "3.14159265358979323846264338327950288419716939937510"
	E  = "2.71828182845904523536028747135266249775724709369995"
)

var table = build(numeric.Default())

func build(ctx numeric.Context) map[string]decimal.Decimal {
	sqrt2, _ := ctx.Sqrt(decimal.New(2, 0))
	sqrt5, _ := ctx.Sqrt(decimal.New(5, 0))
	phi := ctx.Round(sqrt5.Add(decimal.New(1, 0)).Mul(decimal.New(5, -1)))
	pi := decimal.RequireFromString(Pi)

	t := map[string]decimal.Decimal{
		"phi":   phi,
		"φ":     phi,
		"pi":    pi,
		"π":     pi,
		"e":     decimal.RequireFromString(E),
		"sqrt2": sqrt2,
		"√2":    sqrt2,
	}

	integers := []struct {
		value int64
		names []string
	}{
		{2, []string{"two", "binary"}},
		{3, []string{"three", "ternary"}},
		{4, []string{"four", "quaternary"}},
		{5, []string{"five", "quinary"}},
		{6, []string{"six", "senary"}},
		{7, []string{"seven", "septenary"}},
		{8, []string{"eight", "octal"}},
		{9, []string{"nine", "nonary"}},
		{10, []string{"ten", "decimal"}},
		{11, []string{"eleven", "undecimal"}},
		{12, []string{"twelve", "duodecimal", "dozenal"}},
		{13, []string{"thirteen"}},
		{14, []string{"fourteen"}},
		{15, []string{"fifteen"}},
		{16, []string{"sixteen", "hex", "hexadecimal"}},
		{17, []string{"seventeen"}},
		{18, []string{"eighteen"}},
		{19, []string{"nineteen"}},
		{20, []string{"twenty", "vigesimal"}},
		{30, []string{"thirty"}},
		{36, []string{"hexatrigesimal"}},
		{40, []string{"forty"}},
		{50, []string{"fifty"}},
		{60, []string{"sixty", "sexagesimal"}},
	}

	for _, i := range integers {
		for _, name := range i.names {
			t[name] = decimal.New(i.value, 0)
		}
	}

	return t
}

// Resolve returns the value of a named base. Names are matched case
// insensitively after trimming surrounding space.
func Resolve(name string) (v decimal.Decimal, ok bool) {
	v, ok = table[strings.ToLower(strings.TrimSpace(name))]

	return v, ok
}

// Names returns every name in the table, sorted.
func Names() (names []string) {
	names = make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ParseBase returns the base described by text: a decimal number or a name
// known to Resolve. The base must be greater than one.
func ParseBase(text string) (base decimal.Decimal, err error) {
	base, err = decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		var ok bool

		base, ok = Resolve(text)
		if !ok {
			return decimal.Zero, Error.New("unknown base %q", text)
		}
	}

	err = radix.CheckBase(base)
	if err != nil {
		return decimal.Zero, err
	}

	return base, nil
}
