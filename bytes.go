package bigint

import (
	"github.com/pkg/errors"
)

// FromBytes creates an Int from a sign and a big-endian unsigned magnitude.
// sign must be -1, 0 or 1, and must be 0 if and only if the magnitude is
// zero. Leading zero bytes in magnitude are ignored. magnitude is not
// retained.
func FromBytes(sign int, magnitude []byte) (Int, error) {
	if sign < -1 || sign > 1 {
		return Int{}, errors.Wrapf(ErrSignMagnitude, "invalid signum %d", sign)
	}
	mag := stripLeadingZeroBytes(magnitude)
	if (len(mag) == 0) != (sign == 0) {
		return Int{}, errors.Wrapf(ErrSignMagnitude, "signum %d with %d byte magnitude", sign, len(magnitude))
	}
	if sign == 0 {
		return Int{}, nil
	}
	return newInt(mag, sign), nil
}

// FromTwosComplement creates an Int from a big-endian two's-complement byte
// sequence, the format produced by Bytes. The most significant bit of b[0]
// is the sign bit. b must not be empty.
func FromTwosComplement(b []byte) (Int, error) {
	if len(b) == 0 {
		return Int{}, parseError("", "zero length")
	}
	if int8(b[0]) >= 0 {
		return newInt(stripLeadingZeroBytes(b), 1), nil
	}

	// Sign-extend to a whole number of words:
	words := make([]uint32, (len(b)+3)>>2)
	for i := range words {
		words[i] = wordMask
	}
	for i, j := len(b)-1, 0; i >= 0; i, j = i-1, j+1 {
		w := len(words) - 1 - j>>2
		shift := uint(j&3) << 3
		words[w] = words[w]&^(0xff<<shift) | uint32(b[i])<<shift
	}
	return newInt(stripLeadingZeroWords(makePositive(words)), -1), nil
}

// Bytes returns the two's-complement representation of x as a big-endian
// byte slice. The slice is the minimum length needed to hold x including
// one sign bit, so it is never empty: zero is a single zero byte.
func (x Int) Bytes() []byte {
	byteLen := x.BitLen()/8 + 1
	out := make([]byte, byteLen)

	var nextInt uint32
	for i, bytesCopied, intIndex := byteLen-1, 4, 0; i >= 0; i-- {
		if bytesCopied == 4 {
			nextInt = x.getInt(intIndex)
			intIndex++
			bytesCopied = 1
		} else {
			nextInt >>= 8
			bytesCopied++
		}
		out[i] = byte(nextInt)
	}
	return out
}
