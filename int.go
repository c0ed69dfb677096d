package bigint

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Int is an immutable arbitrary-precision signed integer. All operations
// behave as if Ints were represented in two's-complement notation with an
// infinite number of sign bits.
//
// The zero value is 0 and ready to use. Ints are values: they may be copied
// and shared between goroutines freely, and no operation modifies its
// receiver or arguments.
type Int struct {
	sign int      // -1, 0 or 1; 0 if and only if mag is empty
	mag  []uint32 // big-endian, no leading zero words

	memo *intMemo
}

var (
	zero   = Int{}
	one    = newInt([]uint32{1}, 1)
	negOne = newInt([]uint32{1}, -1)
)

// Indexes into intMemo.vals.
const (
	memoBitLen = iota
	memoBitCount
	memoLowestSetBit
	memoFirstNonzeroInt
	memoCount
)

// intMemo caches values derived from the sign and magnitude of an Int. Each
// slot holds the cached value plus one, so zero means "not computed yet".
// Concurrent writers can only ever store the same value.
type intMemo struct {
	vals [memoCount]atomic.Int64
}

func (m *intMemo) get(slot int, calc func() int) int {
	if m == nil {
		return calc()
	}
	if v := m.vals[slot].Load(); v != 0 {
		return int(v - 1)
	}
	v := calc()
	m.vals[slot].Store(int64(v) + 1)
	return v
}

// newInt trusts that mag is stripped and is not referenced by anything that
// may modify it later.
func newInt(mag []uint32, sign int) Int {
	if len(mag) == 0 {
		return Int{}
	}
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	return Int{sign: sign, mag: mag, memo: &intMemo{}}
}

// From64 creates an Int from an int64.
func From64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	sign := 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = -u
	}
	return newInt(magFromU64(u), sign)
}

func From32(v int32) Int { return From64(int64(v)) }
func FromInt(v int) Int   { return From64(int64(v)) }

// FromU64 creates an Int from a uint64.
func FromU64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return newInt(magFromU64(v), 1)
}

func magFromU64(u uint64) []uint32 {
	if hi := uint32(u >> 32); hi != 0 {
		return []uint32{hi, uint32(u)}
	}
	return []uint32{uint32(u)}
}

// FromMagnitude creates an Int from a big-endian sequence of 32-bit words and
// a sign. Leading zero words are ignored, any negative sign is treated as -1
// and any positive sign as 1. words is copied.
func FromMagnitude(words []uint32, sign int) Int {
	words = stripLeadingZeroWords(words)
	if len(words) == 0 || sign == 0 {
		return Int{}
	}
	mag := make([]uint32, len(words))
	copy(mag, words)
	return newInt(mag, sign)
}

// Magnitude returns a copy of the big-endian words of |x|. It is empty if x
// is zero.
func (x Int) Magnitude() []uint32 {
	out := make([]uint32, len(x.mag))
	copy(out, x.mag)
	return out
}

// Sign returns -1, 0 or 1.
func (x Int) Sign() int { return x.sign }

func (x Int) IsZero() bool { return x.sign == 0 }

// Int64 returns the low 64 bits of x's two's-complement representation, as
// with a Go conversion from a wider integer type.
func (x Int) Int64() int64 {
	return int64(uint64(x.getInt(1))<<32 | uint64(x.getInt(0)))
}

// Int32 returns the low 32 bits of x's two's-complement representation.
func (x Int) Int32() int32 {
	return int32(x.getInt(0))
}

// Uint64 returns the low 64 bits of x's two's-complement representation,
// interpreted as unsigned.
func (x Int) Uint64() uint64 {
	return uint64(x.Int64())
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	return x.BitLen() <= 63
}

// Int64Exact returns x as an int64 if it fits, and false otherwise.
func (x Int) Int64Exact() (int64, bool) {
	if !x.IsInt64() {
		return 0, false
	}
	return x.Int64(), true
}

// BitLen returns the number of bits in the minimal two's-complement
// representation of x, excluding a sign bit. For positive x this is the
// number of bits in the ordinary binary representation. It computes
// ceil(log2(x < 0 ? -x : x+1)).
func (x Int) BitLen() int {
	return x.memo.get(memoBitLen, x.calcBitLen)
}

func (x Int) calcBitLen() int {
	n := bitLenMag(x.mag)
	if x.sign < 0 {
		// A negative power of two needs one bit fewer than its magnitude:
		pow2 := bitCountWord(x.mag[0]) == 1
		for i := 1; i < len(x.mag) && pow2; i++ {
			pow2 = x.mag[i] == 0
		}
		if pow2 {
			n--
		}
	}
	return n
}

// BitCount returns the number of bits in the two's-complement representation
// of x that differ from its sign bit.
func (x Int) BitCount() int {
	return x.memo.get(memoBitCount, x.calcBitCount)
}

func (x Int) calcBitCount() int {
	bc := 0
	for _, w := range x.mag {
		bc += bitCountWord(w)
	}
	if x.sign < 0 {
		// Count the trailing zeros in the magnitude:
		magTrailingZeroCount := 0
		var j int
		for j = len(x.mag) - 1; x.mag[j] == 0; j-- {
			magTrailingZeroCount += 32
		}
		magTrailingZeroCount += trailingZerosWord(x.mag[j])
		bc += magTrailingZeroCount - 1
	}
	return bc
}

// LowestSetBit returns the index of the rightmost one bit in x, or -1 if x is
// zero.
func (x Int) LowestSetBit() int {
	return x.memo.get(memoLowestSetBit, func() int {
		if x.sign == 0 {
			return -1
		}
		i := 0
		var b uint32
		for b = x.getInt(i); b == 0; b = x.getInt(i) {
			i++
		}
		return (i << 5) + trailingZerosWord(b)
	})
}

// intLength returns the number of words needed to hold the two's-complement
// representation of x, including at least one sign bit.
func (x Int) intLength() int {
	return (x.BitLen() >> 5) + 1
}

func (x Int) signInt() uint32 {
	if x.sign < 0 {
		return wordMask
	}
	return 0
}

// getInt returns word n of the little-endian two's-complement representation
// of x; word 0 is the least significant. n may be arbitrarily high: x is
// logically preceded by infinitely many sign words.
func (x Int) getInt(n int) uint32 {
	if n < 0 {
		return 0
	}
	if n >= len(x.mag) {
		return x.signInt()
	}

	magInt := x.mag[len(x.mag)-n-1]
	if x.sign >= 0 {
		return magInt
	}
	if n <= x.firstNonzeroIntNum() {
		return -magInt
	}
	return ^magInt
}

// firstNonzeroIntNum returns the index, counted from the least significant
// end, of the first nonzero word of the magnitude.
func (x Int) firstNonzeroIntNum() int {
	return x.memo.get(memoFirstNonzeroInt, func() int {
		mlen := len(x.mag)
		i := mlen - 1
		for i >= 0 && x.mag[i] == 0 {
			i--
		}
		return mlen - i - 1
	})
}

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) Cmp(y Int) int {
	if x.sign != y.sign {
		if x.sign > y.sign {
			return 1
		}
		return -1
	}
	switch x.sign {
	case 1:
		return cmpMag(x.mag, y.mag)
	case -1:
		return cmpMag(y.mag, x.mag)
	default:
		return 0
	}
}

// CmpAbs compares |x| to |y|.
func (x Int) CmpAbs(y Int) int {
	return cmpMag(x.mag, y.mag)
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool {
	if x.sign != y.sign || len(x.mag) != len(y.mag) {
		return false
	}
	for i := range x.mag {
		if x.mag[i] != y.mag[i] {
			return false
		}
	}
	return true
}

func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.sign == 0 {
		return x
	}
	return newInt(x.mag, -x.sign)
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if y.sign == 0 {
		return x
	}
	if x.sign == 0 {
		return y
	}
	if y.sign == x.sign {
		return newInt(addMag(x.mag, y.mag), x.sign)
	}
	return x.addOpposite(y.mag, y.sign)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	if y.sign == 0 {
		return x
	}
	if x.sign == 0 {
		return y.Neg()
	}
	if y.sign != x.sign {
		return newInt(addMag(x.mag, y.mag), x.sign)
	}
	return x.addOpposite(y.mag, -y.sign)
}

// addOpposite adds a value with magnitude mag and the opposite sign to x.
func (x Int) addOpposite(mag []uint32, sign int) Int {
	cmp := cmpMag(x.mag, mag)
	if cmp == 0 {
		return Int{}
	}
	if cmp > 0 {
		return newInt(stripLeadingZeroWords(subMag(x.mag, mag)), x.sign)
	}
	return newInt(stripLeadingZeroWords(subMag(mag, x.mag)), sign)
}

// Inc returns x + 1.
func (x Int) Inc() Int { return x.Add(one) }

// Dec returns x - 1.
func (x Int) Dec() Int { return x.Sub(one) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.sign == 0 || y.sign == 0 {
		return Int{}
	}
	if len(x.mag) > len(y.mag) {
		// The outer loop of multiplyToLen runs over its first operand:
		x, y = y, x
	}
	result := multiplyToLen(x.mag, y.mag, nil)
	return newInt(stripLeadingZeroWords(result), x.sign*y.sign)
}

// Square returns x * x. It needs roughly half the word products of Mul.
func (x Int) Square() Int {
	if x.sign == 0 {
		return Int{}
	}
	return newInt(stripLeadingZeroWords(squareToLen(x.mag, nil)), 1)
}

// Pow returns x**exponent. exponent must not be negative.
func (x Int) Pow(exponent int) (Int, error) {
	if exponent < 0 {
		return Int{}, errors.Wrapf(ErrNegativeExponent, "pow %d", exponent)
	}
	if x.sign == 0 {
		if exponent == 0 {
			return one, nil
		}
		return Int{}, nil
	}

	sign := 1
	if x.sign < 0 && exponent&1 == 1 {
		sign = -1
	}

	// Binary exponentiation, scanning the exponent from the least
	// significant bit:
	result := []uint32{1}
	baseToPow2 := x.mag
	for exponent != 0 {
		if exponent&1 == 1 {
			result = stripLeadingZeroWords(multiplyToLen(result, baseToPow2, nil))
		}
		exponent >>= 1
		if exponent != 0 {
			baseToPow2 = stripLeadingZeroWords(squareToLen(baseToPow2, nil))
		}
	}
	return newInt(result, sign), nil
}

// Max returns the larger of x and y.
func Max(x, y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func Min(x, y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
