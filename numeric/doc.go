// Package numeric provides the arbitrary precision arithmetic shared by the
// parser, renderer and explanation code.
//
// Values are shopspring decimals: an unscaled integer and a base 10
// exponent.
//
//  value = coefficient * 10 ^ exponent
//
// Multiplication and addition of decimals are exact, so products of
// irrational bases grow without bound. Every compound step is therefore
// passed through Context.Round, which keeps Context.Precision significant
// digits:
//
//  | Operation | Rounded                                   |
//  |-----------|-------------------------------------------|
//  | Round     | result                                    |
//  | Quo       | result                                    |
//  | Pow       | every intermediate product and the result |
//  | Sqrt      | every iteration (with guard digits)       |
//  |-----------|-------------------------------------------|
//
// Digits left of the radix point are never rounded away. Integers stay
// exact no matter how large they are; only fractional digits are dropped.
//
// Precision Floor
//
// Context.Floor is the lowest exponent a renderer emits a digit for. It is
// carried here so both precision constants travel together and can be set
// from one place.
package numeric
