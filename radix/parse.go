package radix

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calebcase/changebase/digit"
)

// maxExponent bounds the number of digits on either side of the radix point.
var maxExponent = math.MaxInt32

// ValueFromBase returns the value of text interpreted in base.
//
// Text is an optional sign followed by digit tokens with at most one radix
// point. Empty integer or fractional parts are zero.
func (c *Converter) ValueFromBase(text string, base decimal.Decimal) (value decimal.Decimal, err error) {
	err = CheckBase(base)
	if err != nil {
		return decimal.Zero, err
	}

	negative := false

	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	tokens := digit.Tokenize(text)

	point := -1
	for i, t := range tokens {
		if t != digit.Point {
			continue
		}

		if point >= 0 {
			return decimal.Zero, ErrMultipleRadixPoints.New("%q", text)
		}

		point = i
	}

	integer, fraction := tokens, []string(nil)
	if point >= 0 {
		integer, fraction = tokens[:point], tokens[point+1:]
	}

	if len(integer) > maxExponent {
		return decimal.Zero, ErrExponentOverflow.New("integer length %d", len(integer))
	}

	if len(fraction) > maxExponent {
		return decimal.Zero, ErrExponentOverflow.New("fractional length %d", len(fraction))
	}

	// Resolve every token left to right first so the leftmost bad token is
	// the one reported.
	intDigits, err := digitValues(integer, base)
	if err != nil {
		return decimal.Zero, err
	}

	fracDigits, err := digitValues(fraction, base)
	if err != nil {
		return decimal.Zero, err
	}

	value = c.evaluate(intDigits, base)

	if len(fracDigits) > 0 {
		f := c.evaluate(fracDigits, base)
		value = value.Add(c.ctx.Quo(f, c.ctx.Pow(base, len(fracDigits))))
	}

	value = c.ctx.Round(value)

	if negative {
		value = value.Neg()
	}

	return value, nil
}

func digitValues(tokens []string, base decimal.Decimal) (values []decimal.Decimal, err error) {
	values = make([]decimal.Decimal, 0, len(tokens))

	for _, t := range tokens {
		v, err := DigitValue(t, base)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

// evaluate sums digit * base^position, least significant digit first,
// carrying a running power instead of computing each power from scratch.
func (c *Converter) evaluate(digits []decimal.Decimal, base decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	power := one

	for i := len(digits) - 1; i >= 0; i-- {
		if !digits[i].IsZero() {
			sum = c.ctx.Round(sum.Add(digits[i].Mul(power)))
		}

		if i > 0 {
			power = c.ctx.Round(power.Mul(base))
		}
	}

	return sum
}
