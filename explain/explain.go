// Package explain breaks a representation down into the weighted terms whose
// sum is its value, for showing how a conversion works.
//
// For 1[35] in base 100:
//
//  | Digit | Exponent | Value | Power | Product |
//  |-------|----------|-------|-------|---------|
//  | 1     | 1        | 1     | 100   | 100     |
//  | [35]  | 0        | 35    | 1     | 35      |
//  |-------|----------|-------|-------|---------|
//  |                                  | 135     |
package explain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calebcase/changebase/numeric"
	"github.com/calebcase/changebase/radix"
)

// DefaultTerms is the number of terms shown by default.
const DefaultTerms = 5

// Term is one digit of a representation with its weight.
type Term struct {
	Digit    string
	Exponent int

	Value   decimal.Decimal
	Power   decimal.Decimal
	Product decimal.Decimal
}

// Breakdown is the explanation of a representation.
type Breakdown struct {
	Base decimal.Decimal

	// Terms holds at most the requested number of leading terms.
	Terms []Term

	// Sum is the sum of the products in Terms.
	Sum decimal.Decimal

	// Total is the sum over every digit, including those not in Terms.
	Total decimal.Decimal

	// Truncated is true when the representation has more digits than
	// Terms.
	Truncated bool

	// Negative is true when the representation has a leading minus sign.
	// Every product, and so both sums, carries the sign.
	Negative bool
}

// Explainer builds breakdowns using a precision context.
type Explainer struct {
	ctx numeric.Context
}

// New returns an explainer using ctx.
func New(ctx numeric.Context) *Explainer {
	return &Explainer{
		ctx: ctx,
	}
}

// Explain breaks text down in base, keeping at most limit terms. A limit of
// zero or less keeps every term.
func (e *Explainer) Explain(text string, base decimal.Decimal, limit int) (b *Breakdown, err error) {
	err = radix.CheckBase(base)
	if err != nil {
		return nil, err
	}

	pairs := radix.DigitExponentPairs(text)

	b = &Breakdown{
		Base:     base,
		Sum:      decimal.Zero,
		Total:    decimal.Zero,
		Negative: strings.HasPrefix(text, "-"),
	}

	for i, p := range pairs {
		v, err := radix.DigitValue(p.Digit, base)
		if err != nil {
			return nil, err
		}

		power := e.ctx.Pow(base, p.Exponent)
		product := e.ctx.Round(v.Mul(power))
		if b.Negative {
			product = product.Neg()
		}

		b.Total = e.ctx.Round(b.Total.Add(product))

		if limit > 0 && i >= limit {
			b.Truncated = true

			continue
		}

		b.Terms = append(b.Terms, Term{
			Digit:    p.Digit,
			Exponent: p.Exponent,
			Value:    v,
			Power:    power,
			Product:  product,
		})
		b.Sum = e.ctx.Round(b.Sum.Add(product))
	}

	return b, nil
}

// Explain breaks text down in base using the default context.
func Explain(text string, base decimal.Decimal, limit int) (*Breakdown, error) {
	return New(numeric.Default()).Explain(text, base, limit)
}
