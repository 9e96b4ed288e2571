package radix

import (
	"github.com/shopspring/decimal"

	"github.com/calebcase/changebase/digit"
	"github.com/calebcase/changebase/numeric"
)

var one = decimal.New(1, 0)

// Converter parses and renders representations using a fixed precision
// context.
type Converter struct {
	ctx numeric.Context

	// wide carries guard digits for the renderer's intermediate arithmetic.
	wide numeric.Context
}

// guardDigits is the number of extra digits carried by the renderer, and the
// number of trailing digits treated as noise in values that were rounded to
// the working precision.
const guardDigits = 5

// NewConverter returns a converter using ctx.
func NewConverter(ctx numeric.Context) *Converter {
	return &Converter{
		ctx: ctx,
		wide: numeric.Context{
			Precision: ctx.Precision + guardDigits,
			Floor:     ctx.Floor,
		},
	}
}

// Context returns the converter's precision context.
func (c *Converter) Context() numeric.Context {
	return c.ctx
}

var std = NewConverter(numeric.Default())

// ValueFromBase parses text in base using the default context.
func ValueFromBase(text string, base decimal.Decimal) (decimal.Decimal, error) {
	return std.ValueFromBase(text, base)
}

// ValueToBase renders value in base using the default context.
func ValueToBase(value, base decimal.Decimal) (string, error) {
	return std.ValueToBase(value, base)
}

// CheckBase returns ErrInvalidBase unless base is greater than one.
func CheckBase(base decimal.Decimal) error {
	if base.LessThanOrEqual(one) {
		return ErrInvalidBase.New("must be greater than 1: %s", base)
	}

	return nil
}

// DigitValue returns the value of token in base. Single character tokens and
// bracket tokens are both limited to values below the ceiling of base, so
// base 8.5 accepts 0 through 8.
func DigitValue(token string, base decimal.Decimal) (v decimal.Decimal, err error) {
	if err := CheckBase(base); err != nil {
		return decimal.Zero, err
	}

	v, ok := digit.Value(token)
	if !ok || v.GreaterThanOrEqual(base.Ceil()) {
		return decimal.Zero, unrecognized(token)
	}

	return v, nil
}
