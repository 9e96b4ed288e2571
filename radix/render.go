package radix

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calebcase/changebase/digit"
	"github.com/calebcase/changebase/numeric"
)

// ValueToBase returns the representation of value in base.
//
// Digits are produced from the highest exponent whose power does not exceed
// the value down through the fractional positions. Fractional digits stop
// once the remainder drops below base^(2*Floor). If the precision floor is
// reached first the output ends in digit.Ellipsis.
func (c *Converter) ValueToBase(value, base decimal.Decimal) (text string, err error) {
	err = CheckBase(base)
	if err != nil {
		return "", err
	}

	if value.IsZero() {
		return "0", nil
	}

	sb := &strings.Builder{}

	if value.Sign() < 0 {
		sb.WriteString("-")
	}

	remaining := c.ctx.Round(value.Abs())
	noise := c.noise(remaining, base)
	top := base.Ceil().Sub(one)
	floor := int(c.ctx.Floor)
	limit := decimal.Max(c.wide.Pow(base, 2*floor), noise)

	exp := c.highestExponent(remaining, base, noise)
	for exp > 0 && c.digitAt(remaining, base, top, noise, exp).IsZero() {
		exp--
	}

	for ; exp >= 0 || remaining.GreaterThan(limit); exp-- {
		if exp == -1 {
			sb.WriteString(digit.Point)
		}

		if exp < 0 && exp <= floor {
			sb.WriteString(digit.Ellipsis)

			break
		}

		position := c.wide.Pow(base, exp)
		d := c.digit(remaining, position, top, noise)

		sb.WriteString(digit.TextIn(d, base))

		if !d.IsZero() {
			remaining = c.wide.Round(remaining.Sub(d.Mul(position)))
		}
	}

	return sb.String(), nil
}

// noise returns the absolute error below which a quotient just short of an
// integer is taken to be that integer. Exact inputs only absorb the
// renderer's own rounding. A value or base that was itself rounded to the
// working precision also gives up its last guardDigits digits.
func (c *Converter) noise(value, base decimal.Decimal) decimal.Decimal {
	digits := c.ctx.Precision
	if c.rounded(value) || c.rounded(base) {
		digits -= guardDigits
	}

	return value.Mul(decimal.New(1, -digits))
}

// rounded reports whether d carries the full working precision.
func (c *Converter) rounded(d decimal.Decimal) bool {
	return int32(numeric.Normalize(d).NumDigits()) >= c.ctx.Precision
}

// highestExponent returns the largest e >= 0 with base^e <= value, found by
// repeated multiplication.
func (c *Converter) highestExponent(value, base, noise decimal.Decimal) (e int) {
	value = value.Add(noise)
	power := base

	for power.LessThanOrEqual(value) {
		e++
		power = c.wide.Round(power.Mul(base))
	}

	return e
}

func (c *Converter) digitAt(value, base, top, noise decimal.Decimal, exp int) decimal.Decimal {
	return c.digit(value, c.wide.Pow(base, exp), top, noise)
}

// digit returns floor(value / position) clamped to [0, top]. A quotient that
// falls short of the next integer by less than noise/position is rounded up
// to it.
func (c *Converter) digit(value, position, top, noise decimal.Decimal) decimal.Decimal {
	q := c.wide.Quo(value, position)
	if q.Sign() <= 0 {
		return decimal.Zero
	}

	d := q.Floor()
	if d.Add(one).Sub(q).Mul(position).LessThan(noise) {
		d = d.Add(one)
	}

	if d.GreaterThan(top) {
		return top
	}

	return d
}
