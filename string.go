package bigint

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromString parses s as an optionally signed integer in the given radix,
// which must be in [MinRadix, MaxRadix]. A single leading '-' or '+' is
// permitted, as are leading zeros. Digits above 9 may be in either case.
//
// Any failure wraps ErrParse.
func FromString(s string, radix int) (Int, error) {
	if !validRadix(radix) {
		return Int{}, errors.Wrapf(ErrParse, "radix %d out of range", radix)
	}
	if len(s) == 0 {
		return Int{}, parseError(s, "zero length")
	}

	sign := 1
	cursor := 0
	minus := strings.LastIndexByte(s, '-')
	plus := strings.LastIndexByte(s, '+')
	if minus >= 0 {
		if minus != 0 || plus >= 0 {
			return Int{}, parseError(s, "illegal embedded sign character")
		}
		sign = -1
		cursor = 1
	} else if plus >= 0 {
		if plus != 0 {
			return Int{}, parseError(s, "illegal embedded sign character")
		}
		cursor = 1
	}
	if cursor == len(s) {
		return Int{}, parseError(s, "zero length")
	}

	for cursor < len(s) && s[cursor] == '0' {
		cursor++
	}
	if cursor == len(s) {
		return Int{}, nil
	}

	numDigits := len(s) - cursor

	// Pre-allocate an array of the expected size; bitsPerDigit rounds up so
	// this may be one word too many, which is stripped at the end:
	numBits := ((numDigits * bitsPerDigit[radix]) >> 10) + 1
	numWords := (numBits + 31) >> 5
	mag := make([]uint32, numWords)

	// Process the first, possibly short, group of digits:
	firstGroupLen := numDigits % digitsPerInt[radix]
	if firstGroupLen == 0 {
		firstGroupLen = digitsPerInt[radix]
	}
	group := s[cursor : cursor+firstGroupLen]
	cursor += firstGroupLen
	v, err := strconv.ParseUint(group, radix, 32)
	if err != nil {
		return Int{}, parseError(s, "illegal digit")
	}
	mag[numWords-1] = uint32(v)

	// Process the remaining groups:
	superRadix := intRadix[radix]
	for cursor < len(s) {
		group = s[cursor : cursor+digitsPerInt[radix]]
		cursor += digitsPerInt[radix]
		v, err = strconv.ParseUint(group, radix, 32)
		if err != nil {
			return Int{}, parseError(s, "illegal digit")
		}
		destructiveMulAdd(mag, superRadix, uint32(v))
	}

	return newInt(stripLeadingZeroWords(mag), sign), nil
}

// MustFromString is like FromString but panics on error. It is intended for
// literals and tests.
func MustFromString(s string, radix int) Int {
	v, err := FromString(s, radix)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the decimal representation of x.
func (x Int) String() string {
	return x.Text(10)
}

// Text returns the representation of x in the given radix, using lower-case
// letters for digits above 9. If radix is outside [MinRadix, MaxRadix], base
// 10 is used.
func (x Int) Text(radix int) string {
	if x.sign == 0 {
		return "0"
	}
	if !validRadix(radix) {
		radix = 10
	}

	// Peel groups of digitsPerLong[radix] digits off the bottom of the
	// magnitude, least significant group first:
	var groups []string
	tmp := newMutableFrom(x.mag)
	d := newMutableFrom(magFromU64(longRadix[radix]))
	for !tmp.isZero() {
		q := newMutable()
		r, err := tmp.divide(d, q)
		if err != nil {
			panic(err) // d is never zero
		}
		groups = append(groups, strconv.FormatUint(r.uint64(), radix))
		tmp = q
	}

	var sb strings.Builder
	if x.sign < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(groups[len(groups)-1])

	// Inner groups are padded with leading zeros:
	for i := len(groups) - 2; i >= 0; i-- {
		if pad := digitsPerLong[radix] - len(groups[i]); pad > 0 {
			sb.WriteString(zeros[:pad])
		}
		sb.WriteString(groups[i])
	}
	return sb.String()
}
