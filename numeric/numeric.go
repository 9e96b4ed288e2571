package numeric

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Default precision constants.
const (
	DefaultPrecision int32 = 50
	DefaultFloor     int32 = -9
)

// MinPrecision is the smallest working precision accepted by Validate.
const MinPrecision int32 = 32

var (
	one  = decimal.New(1, 0)
	half = decimal.New(5, -1)
	ten  = big.NewInt(10)
)

// Context carries the precision constants.
type Context struct {
	// Precision is the number of significant digits kept after every
	// compound arithmetic step.
	Precision int32

	// Floor is the lowest (most negative) exponent rendered before the
	// output is elided.
	Floor int32
}

// Default returns the default context.
func Default() Context {
	return Context{
		Precision: DefaultPrecision,
		Floor:     DefaultFloor,
	}
}

// Validate returns an error if the context cannot be used.
func (c Context) Validate() error {
	if c.Precision < MinPrecision {
		return Error.New("precision must be at least %d: %d", MinPrecision, c.Precision)
	}

	if c.Floor >= 0 {
		return Error.New("floor must be negative: %d", c.Floor)
	}

	return nil
}

// IntDigits returns the position of the most significant digit of d
// relative to the radix point: 123.4 has 3, 0.5 has 0 and 0.001 has -2.
func IntDigits(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// Normalize strips trailing zeros from the coefficient of d.
func Normalize(d decimal.Decimal) decimal.Decimal {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return decimal.New(0, 0)
	}

	exp := d.Exponent()
	q, r := new(big.Int), new(big.Int)

	for {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}

		coef.Set(q)
		exp++
	}

	return decimal.NewFromBigInt(coef, exp)
}

// Round rounds d to c.Precision significant digits.
func (c Context) Round(d decimal.Decimal) decimal.Decimal {
	places := c.Precision - IntDigits(d)
	if places < 0 {
		places = 0
	}

	if -d.Exponent() <= places {
		return d
	}

	return d.Round(places)
}

// Quo returns x / y rounded to c.Precision significant digits. y must not be
// zero.
func (c Context) Quo(x, y decimal.Decimal) decimal.Decimal {
	places := c.Precision - IntDigits(x) + IntDigits(y) + 1
	if places < 0 {
		places = 0
	}

	return c.Round(x.DivRound(y, places))
}

// Pow returns base raised to exponent using exponentiation by squaring.
// Negative exponents return the reciprocal of the positive power. base must
// not be zero when exponent is negative.
func (c Context) Pow(base decimal.Decimal, exponent int) decimal.Decimal {
	if exponent < 0 {
		// -(exponent+1)+1 avoids overflowing on the minimum int.
		n := uint64(-(exponent + 1)) + 1

		return c.Quo(one, c.pow(base, n))
	}

	return c.pow(base, uint64(exponent))
}

func (c Context) pow(base decimal.Decimal, n uint64) decimal.Decimal {
	switch n {
	case 0:
		return one
	case 1:
		return base
	}

	result := one

	for n > 0 {
		if n&1 == 1 {
			result = c.Round(result.Mul(base))
		}

		n >>= 1

		if n > 0 {
			base = c.Round(base.Mul(base))
		}
	}

	return result
}

// sqrtGuard is the number of extra digits carried while iterating.
const sqrtGuard = 10

// sqrtIterations bounds the Newton iteration. Convergence is quadratic, so
// this is only reached when the last guard digit oscillates.
const sqrtIterations = 200

// Sqrt returns the square root of d. The result is false if d is negative.
func (c Context) Sqrt(d decimal.Decimal) (decimal.Decimal, bool) {
	switch d.Sign() {
	case -1:
		return decimal.Zero, false
	case 0:
		return decimal.Zero, true
	}

	wide := Context{
		Precision: c.Precision + sqrtGuard,
		Floor:     c.Floor,
	}

	// Start from a power of ten with half the magnitude of d.
	x := decimal.New(1, IntDigits(d)/2)

	for i := 0; i < sqrtIterations; i++ {
		next := wide.Round(x.Add(wide.Quo(d, x)).Mul(half))
		if next.Equal(x) {
			break
		}

		x = next
	}

	return c.Round(x), true
}
