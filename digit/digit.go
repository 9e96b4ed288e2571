// Package digit maps digit values to and from their text form.
//
// Values 0 through 35 have a single character form, 0-9 followed by A-Z
// (lower case is accepted on input). Any value may also be written as a
// bracket escaped decimal numeral, which is the only form for values of 36
// and up:
//
//  | Value | Token |
//  |-------|-------|
//  | 0     | 0     |
//  | 10    | A     |
//  | 35    | Z     |
//  | 36    | [36]  |
//  | 135   | [135] |
//  |-------|-------|
//
// In bases with more digits than the alphabet, TextIn writes every digit
// above 9 in brackets so letters and numerals are never mixed within a
// place value: 135 in base 100 is 1[35], not 1Z.
package digit

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Ellipsis is appended by the renderer when digits beyond the precision
// floor were not computed. It never resolves to a digit.
const Ellipsis = "…"

// Point is the radix point token.
const Point = "."

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Radix is the number of values with a single character form.
const Radix = len(alphabet)

var (
	radix = decimal.New(int64(Radix), 0)
	ten   = decimal.New(10, 0)
)

// Text returns the token for the non-negative integer v.
func Text(v decimal.Decimal) string {
	if v.LessThan(radix) {
		i := v.IntPart()

		return alphabet[i : i+1]
	}

	return "[" + v.String() + "]"
}

// TextIn returns the token for the digit v in base.
func TextIn(v, base decimal.Decimal) string {
	if base.Ceil().GreaterThan(radix) && v.GreaterThanOrEqual(ten) {
		return "[" + v.String() + "]"
	}

	return Text(v)
}

// Value returns the value of a single token. Bracket tokens must contain a
// non-empty run of ASCII digits.
func Value(token string) (v decimal.Decimal, ok bool) {
	if IsBracket(token) {
		inner := token[1 : len(token)-1]
		if inner == "" {
			return decimal.Zero, false
		}

		for i := 0; i < len(inner); i++ {
			if inner[i] < '0' || inner[i] > '9' {
				return decimal.Zero, false
			}
		}

		v, err := decimal.NewFromString(inner)
		if err != nil {
			return decimal.Zero, false
		}

		return v, true
	}

	if len(token) != 1 {
		return decimal.Zero, false
	}

	i := strings.IndexByte(alphabet, upper(token[0]))
	if i < 0 {
		return decimal.Zero, false
	}

	return decimal.New(int64(i), 0), true
}

// IsBracket returns true if token is a closed bracket token.
func IsBracket(token string) bool {
	return len(token) >= 2 && token[0] == '[' && token[len(token)-1] == ']'
}

// Tokenize splits text into tokens. A '[' opens a token that runs to the
// next ']' (or to the end of the text if unclosed); every other rune is a
// token of its own.
func Tokenize(text string) (tokens []string) {
	for len(text) > 0 {
		if text[0] == '[' {
			end := strings.IndexByte(text, ']')
			if end < 0 {
				end = len(text) - 1
			}

			tokens = append(tokens, text[:end+1])
			text = text[end+1:]

			continue
		}

		_, size := utf8.DecodeRuneInString(text)
		tokens = append(tokens, text[:size])
		text = text[size:]
	}

	return tokens
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}
