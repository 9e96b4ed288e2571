package radix

import (
	"github.com/calebcase/changebase/digit"
)

// Pair is a digit token and the exponent of the base it is weighted by.
type Pair struct {
	Digit    string
	Exponent int
}

// DigitExponentPairs splits a rendered representation into its digits and
// their exponents. The digit immediately left of the radix point has
// exponent 0. The radix point, a leading sign and the ellipsis are not
// digits and are skipped.
//
// The text is not validated; every token other than those above is returned
// as a digit.
func DigitExponentPairs(text string) (pairs []Pair) {
	tokens := digit.Tokenize(text)

	if len(tokens) > 0 && (tokens[0] == "-" || tokens[0] == "+") {
		tokens = tokens[1:]
	}

	point := -1
	count := 0

	for _, t := range tokens {
		switch t {
		case digit.Ellipsis:
		case digit.Point:
			if point < 0 {
				point = count
			}
		default:
			count++
		}
	}

	if point < 0 {
		point = count
	}

	exp := point - 1

	for _, t := range tokens {
		switch t {
		case digit.Ellipsis, digit.Point:
			continue
		}

		pairs = append(pairs, Pair{
			Digit:    t,
			Exponent: exp,
		})
		exp--
	}

	return pairs
}
