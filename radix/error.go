package radix

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error classes.
var (
	ErrInvalidBase         = errs.Class("invalid base")
	ErrMultipleRadixPoints = errs.Class("multiple radix points")
	ErrUnrecognizedDigit   = errs.Class("unrecognized digit")
	ErrExponentOverflow    = errs.Class("exponent overflow")
)

// DigitError reports the token that failed to resolve. It is always wrapped
// by ErrUnrecognizedDigit.
type DigitError struct {
	Token string
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%q", e.Token)
}

// Token returns the offending token of an ErrUnrecognizedDigit error.
func Token(err error) (token string, ok bool) {
	var de *DigitError
	if errors.As(err, &de) {
		return de.Token, true
	}

	return "", false
}

func unrecognized(token string) error {
	return ErrUnrecognizedDigit.Wrap(&DigitError{Token: token})
}
