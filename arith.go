package bigint

import "math/bits"

// The engine does its carry and borrow arithmetic in uint64 "double words":
// a word-by-word product plus two word-sized addends always fits, and
// bits.Div32 gives the two-words-by-one division used by long division.

const wordMask = 0xffffffff

// divWord divides the double word hi:lo by d. The caller must ensure hi < d,
// which guarantees the quotient fits in one word.
func divWord(hi, lo, d uint32) (q, r uint32) {
	return bits.Div32(hi, lo, d)
}

// mulAddWord returns x*y + a + c as a double word. It can not overflow:
// (2^32-1)^2 + 2*(2^32-1) == 2^64-1.
func mulAddWord(x, y, a, c uint32) uint64 {
	return uint64(x)*uint64(y) + uint64(a) + uint64(c)
}

// inverseMod32 returns the inverse of val modulo 2^32. val must be odd.
//
// Each Newton step doubles the number of correct low bits, starting from
// the 3 bits that val*val == 1 (mod 8) gives us for free.
func inverseMod32(val uint32) uint32 {
	t := val
	t *= 2 - val*t
	t *= 2 - val*t
	t *= 2 - val*t
	t *= 2 - val*t
	return t
}
