package bigint

import (
	"github.com/pkg/errors"
)

// QuoRem returns the quotient x/y and remainder x%y for y != 0. QuoRem
// implements truncated division like Go: the quotient is rounded towards
// zero and the remainder takes the sign of x.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.sign == 0 {
		return Int{}, Int{}, errors.Wrapf(ErrDivideByZero, "%s / 0", x)
	}

	quotient := newMutable()
	a := newMutableFrom(x.mag)
	b := newMutableFrom(y.mag)
	rem, err := a.divide(b, quotient)
	if err != nil {
		return Int{}, Int{}, err
	}
	return quotient.toInt(x.sign * y.sign), rem.toInt(x.sign), nil
}

// Quo returns the quotient x/y for y != 0, rounded towards zero.
func (x Int) Quo(y Int) (Int, error) {
	if y.sign == 0 {
		return Int{}, errors.Wrapf(ErrDivideByZero, "%s / 0", x)
	}
	if x.sign == 0 || cmpMag(x.mag, y.mag) < 0 {
		return Int{}, nil
	}
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder x%y for y != 0. The result is zero or has the
// sign of x.
func (x Int) Rem(y Int) (Int, error) {
	if y.sign == 0 {
		return Int{}, errors.Wrapf(ErrDivideByZero, "%s %% 0", x)
	}
	_, r, err := x.QuoRem(y)
	return r, err
}

// Mod returns x mod m, which is always non-negative. m must be positive.
func (x Int) Mod(m Int) (Int, error) {
	if m.sign <= 0 {
		return Int{}, errors.Wrapf(ErrNonPositiveModulus, "%s mod %s", x, m)
	}
	r, err := x.Rem(m)
	if err != nil {
		return Int{}, err
	}
	if r.sign < 0 {
		return r.Add(m), nil
	}
	return r, nil
}
