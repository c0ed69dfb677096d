package bigint

import (
	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// The bitwise operations below work on the two's-complement representation of
// their operands, produced a word at a time by getInt. The result words are
// little-endian here and converted back to sign-magnitude by fromTwosWords.

// fromTwosWords builds an Int from a big-endian two's-complement word array.
// words is consumed.
func fromTwosWords(words []uint32) Int {
	if len(words) > 0 && int32(words[0]) < 0 {
		return newInt(stripLeadingZeroWords(makePositive(words)), -1)
	}
	return newInt(stripLeadingZeroWords(words), 1)
}

func (x Int) bitwise(y Int, op func(a, b uint32) uint32) Int {
	n := x.intLength()
	if yl := y.intLength(); yl > n {
		n = yl
	}
	result := make([]uint32, n)
	for i := range result {
		result[i] = op(x.getInt(n-i-1), y.getInt(n-i-1))
	}
	return fromTwosWords(result)
}

// And returns x & y.
func (x Int) And(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a & b })
}

// Or returns x | y.
func (x Int) Or(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a | b })
}

// Xor returns x ^ y.
func (x Int) Xor(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns x &^ y.
func (x Int) AndNot(y Int) Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a &^ b })
}

// Not returns ^x, which is -x - 1.
func (x Int) Not() Int {
	n := x.intLength()
	result := make([]uint32, n)
	for i := range result {
		result[i] = ^x.getInt(n - i - 1)
	}
	return fromTwosWords(result)
}

func bitIndex(i uint) int {
	n, err := safecast.Conv[int](i)
	if err != nil {
		panic(errors.Wrapf(ErrShiftRange, "bit index %d", i))
	}
	return n
}

// Bit returns the value of the i'th bit of x's two's-complement
// representation, 0 or 1. Negative x have infinitely many one bits.
func (x Int) Bit(i uint) uint {
	n := bitIndex(i)
	return uint(x.getInt(n>>5)>>(n&31)) & 1
}

// TestBit reports whether bit i of x is set.
func (x Int) TestBit(i uint) bool {
	return x.Bit(i) == 1
}

// SetBit returns x with bit i set.
func (x Int) SetBit(i uint) Int {
	n := bitIndex(i)
	intNum := n >> 5
	size := x.intLength()
	if intNum+2 > size {
		size = intNum + 2
	}

	result := make([]uint32, size)
	for j := range result {
		result[size-j-1] = x.getInt(j)
	}
	result[size-intNum-1] |= 1 << (n & 31)
	return fromTwosWords(result)
}

// ClearBit returns x with bit i cleared.
func (x Int) ClearBit(i uint) Int {
	n := bitIndex(i)
	intNum := n >> 5
	size := x.intLength()
	if s := ((n + 1) >> 5) + 1; s > size {
		size = s
	}

	result := make([]uint32, size)
	for j := range result {
		result[size-j-1] = x.getInt(j)
	}
	result[size-intNum-1] &^= 1 << (n & 31)
	return fromTwosWords(result)
}

// FlipBit returns x with bit i inverted.
func (x Int) FlipBit(i uint) Int {
	n := bitIndex(i)
	intNum := n >> 5
	size := x.intLength()
	if intNum+2 > size {
		size = intNum + 2
	}

	result := make([]uint32, size)
	for j := range result {
		result[size-j-1] = x.getInt(j)
	}
	result[size-intNum-1] ^= 1 << (n & 31)
	return fromTwosWords(result)
}
