package bigint

import (
	"github.com/pkg/errors"
)

// Sentinel errors returned (wrapped with context) by this package. Use
// errors.Is or errors.Cause to test for them.
var (
	// ErrParse is returned for malformed textual or byte input: empty input,
	// a misplaced sign character, a digit that is not valid in the requested
	// radix, or a radix outside [MinRadix, MaxRadix].
	ErrParse = errors.New("bigint: invalid number")

	// ErrSignMagnitude is returned by FromBytes if the signum is not one of
	// -1, 0 or 1, or does not agree with the magnitude.
	ErrSignMagnitude = errors.New("bigint: signum-magnitude mismatch")

	ErrDivideByZero       = errors.New("bigint: division by zero")
	ErrNegativeExponent   = errors.New("bigint: negative exponent")
	ErrNonPositiveModulus = errors.New("bigint: modulus not positive")
	ErrNotInvertible      = errors.New("bigint: not invertible")

	// ErrShiftRange is returned when a shift distance can not be negated or
	// does not fit in an int.
	ErrShiftRange = errors.New("bigint: unsupported shift distance")
)

func parseError(s string, reason string) error {
	return errors.Wrapf(ErrParse, "%s in %q", reason, s)
}
