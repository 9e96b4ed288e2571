// Package display formats base 10 magnitudes for people to read: powers of
// a base, products and sums shown alongside a conversion.
//
// Formatting is independent of the renderer's precision floor. Values are
// cut toward zero and an elided tail is marked with digit.Ellipsis.
package display

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calebcase/changebase/digit"
	"github.com/calebcase/changebase/numeric"
)

// FractionCap is the number of fractional digits shown when no hard limit is
// given.
const FractionCap = 8

// RoundedString returns value formatted for display. A hardLimit of zero
// means no limit on significant digits.
func RoundedString(value decimal.Decimal, hardLimit uint) string {
	if hardLimit > 0 && significant(value) > int64(hardLimit) {
		limit := int32(hardLimit)
		cut := value.RoundDown(limit - numeric.IntDigits(value))

		if s, ok := scientific(cut, limit); ok {
			return s
		}

		s := plain(cut)
		if !cut.Equal(value) {
			s += digit.Ellipsis
		}

		return s
	}

	n := numeric.Normalize(value)

	if n.Exponent() >= 0 {
		return integer(n)
	}

	if -n.Exponent() > FractionCap {
		return n.Truncate(FractionCap).StringFixed(FractionCap) + digit.Ellipsis
	}

	return n.String()
}

// significant returns the number of digits in the plain form of d, not
// counting leading zeros.
func significant(d decimal.Decimal) int64 {
	n := int64(d.NumDigits())
	if d.Exponent() > 0 {
		n += int64(d.Exponent())
	}

	return n
}

// scientific formats d in scientific notation if its plain form would need
// more than limit padding zeros on either side of the radix point.
func scientific(d decimal.Decimal, limit int32) (string, bool) {
	n := numeric.Normalize(d)
	if n.IsZero() {
		return "", false
	}

	adjusted := numeric.IntDigits(n) - 1
	if n.Exponent() <= limit && adjusted >= -limit {
		return "", false
	}

	sb := &strings.Builder{}

	if n.Sign() < 0 {
		sb.WriteString("-")
	}

	digits := n.Coefficient()
	s := digits.Abs(digits).String()

	sb.WriteString(s[:1])

	if len(s) > 1 {
		sb.WriteString(".")
		sb.WriteString(s[1:])
	}

	sb.WriteString("E")

	if adjusted >= 0 {
		sb.WriteString("+")
	}

	sb.WriteString(strconv.FormatInt(int64(adjusted), 10))

	return sb.String(), true
}

func plain(d decimal.Decimal) string {
	n := numeric.Normalize(d)
	if n.Exponent() >= 0 {
		return integer(n)
	}

	return n.String()
}

// integer formats an integral d, using the native fast path when it fits.
func integer(d decimal.Decimal) string {
	i := d.BigInt()
	if i.IsInt64() {
		return strconv.FormatInt(i.Int64(), 10)
	}

	return i.String()
}
