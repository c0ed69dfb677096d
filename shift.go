package bigint

import (
	"math"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// Lsh returns x << n. It panics if n does not fit in an int; see ShiftLeft
// for the checked variant that also accepts negative distances.
func (x Int) Lsh(n uint) Int {
	s, err := shiftFromUint(n)
	if err != nil {
		panic(err)
	}
	return x.shiftLeft(s)
}

// Rsh returns x >> n, rounding towards negative infinity. It panics if n
// does not fit in an int.
func (x Int) Rsh(n uint) Int {
	s, err := shiftFromUint(n)
	if err != nil {
		panic(err)
	}
	return x.shiftRight(s)
}

// ShiftLeft returns x << n. A negative n shifts right instead.
func (x Int) ShiftLeft(n int) (Int, error) {
	if n == math.MinInt {
		return Int{}, errors.Wrapf(ErrShiftRange, "shift left by %d", n)
	}
	if n < 0 {
		return x.shiftRight(-n), nil
	}
	return x.shiftLeft(n), nil
}

// ShiftRight returns x >> n, with sign extension: the result is rounded
// towards negative infinity. A negative n shifts left instead.
func (x Int) ShiftRight(n int) (Int, error) {
	if n == math.MinInt {
		return Int{}, errors.Wrapf(ErrShiftRange, "shift right by %d", n)
	}
	if n < 0 {
		return x.shiftLeft(-n), nil
	}
	return x.shiftRight(n), nil
}

func (x Int) shiftLeft(n int) Int {
	if x.sign == 0 || n == 0 {
		return x
	}
	return newInt(shiftLeftMag(x.mag, n), x.sign)
}

func (x Int) shiftRight(n int) Int {
	if x.sign == 0 || n == 0 {
		return x
	}

	newMag := shiftRightMag(x.mag, n)
	if x.sign < 0 {
		// Arithmetic shift rounds towards negative infinity, so if any one
		// bits were shifted off the magnitude must be bumped by one:
		nInts := n >> 5
		nBits := uint(n & 0x1f)
		magLen := len(x.mag)
		onesLost := false
		for i, j := magLen-1, magLen-nInts; i >= j && i >= 0 && !onesLost; i-- {
			onesLost = x.mag[i] != 0
		}
		if !onesLost && nBits != 0 && nInts < magLen {
			onesLost = x.mag[magLen-nInts-1]<<(32-nBits) != 0
		}
		if onesLost {
			newMag = incrementMag(newMag)
		}
	}
	return newInt(stripLeadingZeroWords(newMag), x.sign)
}

func shiftFromUint(n uint) (int, error) {
	s, err := safecast.Conv[int](n)
	if err != nil {
		return 0, errors.Wrapf(ErrShiftRange, "shift by %d", n)
	}
	return s, nil
}
