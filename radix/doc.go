// Package radix converts representations between positional numeral systems
// whose base is any real number greater than one.
//
// A representation in base b is a sequence of digits d with an implied
// exponent for each position:
//
//  value = sum(d[i] * b ^ e[i])
//
// The digit just left of the radix point has exponent 0, and exponents
// decrease by one per position to the right. For example, in base φ:
//
//  | Digit | Exponent | Weight      |
//  |-------|----------|-------------|
//  | 1     |  2       | 2.61803398… |
//  | 0     |  1       | 1.61803398… |
//  | 0     |  0       | 1           |
//  | .     |          |             |
//  | 0     | -1       | 0.61803398… |
//  | 1     | -2       | 0.38196601… |
//  |-------|----------|-------------|
//
//  100.01 (base φ) = 3
//
// Digits
//
// Digits are tokens as defined by package digit. A base accepts digit
// values below its ceiling: base 10 accepts 0-9, base 8.5 accepts 0-8,
// base 100 accepts 0-99 (values from 36 up in bracket form, e.g. [99]).
//
// Rendering
//
// ValueToBase emits digits greedily from the most significant position.
// Digit positions below the converter's precision floor are not computed;
// when a value still has a remainder at the floor the output ends in
// digit.Ellipsis. Parsing such output fails with ErrUnrecognizedDigit
// rather than silently returning the truncated value.
//
// Errors
//
// Failures are reported with the error classes ErrInvalidBase,
// ErrMultipleRadixPoints, ErrUnrecognizedDigit and ErrExponentOverflow. The
// token behind ErrUnrecognizedDigit is available from Token.
package radix
