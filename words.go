package bigint

import "math/bits"

// Magnitudes are big-endian sequences of 32-bit words: mag[0] is the most
// significant word. Helpers in this file never retain their inputs.

func bitLenWord(w uint32) int { return bits.Len32(w) }

// bitLenMag returns the number of bits in the magnitude, ignoring any sign.
func bitLenMag(mag []uint32) int {
	if len(mag) == 0 {
		return 0
	}
	return ((len(mag) - 1) << 5) + bitLenWord(mag[0])
}

// stripLeadingZeroWords returns the suffix of val that starts with the first
// nonzero word. The result shares storage with val.
func stripLeadingZeroWords(val []uint32) []uint32 {
	keep := 0
	for keep < len(val) && val[keep] == 0 {
		keep++
	}
	return val[keep:]
}

// stripLeadingZeroBytes converts a big-endian byte magnitude to words,
// dropping any leading zero bytes.
func stripLeadingZeroBytes(a []byte) []uint32 {
	byteLength := len(a)
	keep := 0
	for keep < byteLength && a[keep] == 0 {
		keep++
	}

	intLength := ((byteLength - keep) + 3) >> 2
	result := make([]uint32, intLength)
	b := byteLength - 1
	for i := intLength - 1; i >= 0; i-- {
		result[i] = uint32(a[b])
		b--
		bytesToTransfer := b - keep + 1
		if bytesToTransfer > 3 {
			bytesToTransfer = 3
		}
		for j := 8; j <= bytesToTransfer<<3; j += 8 {
			result[i] |= uint32(a[b]) << uint(j)
			b--
		}
	}
	return result
}

// makePositive takes a big-endian two's-complement word array that
// represents a negative number and returns the magnitude of that number.
func makePositive(a []uint32) []uint32 {
	keep := 0
	for keep < len(a) && a[keep] == wordMask {
		keep++
	}

	// If all the non-sign words are zero, the magnitude needs one extra
	// word to hold the carry out of the increment below.
	j := keep
	for j < len(a) && a[j] == 0 {
		j++
	}
	extra := 0
	if j == len(a) {
		extra = 1
	}

	result := make([]uint32, len(a)-keep+extra)
	for i := keep; i < len(a); i++ {
		result[i-keep+extra] = ^a[i]
	}
	for i := len(result) - 1; i >= 0; i-- {
		result[i]++
		if result[i] != 0 {
			break
		}
	}
	return result
}

// cmpMag compares two stripped magnitudes as unsigned numbers.
func cmpMag(a, b []uint32) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMag adds the magnitudes x and y into a newly allocated magnitude, which
// is one word longer than the longer operand if the addition carries out.
func addMag(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}

	xi, yi := len(x), len(y)
	result := make([]uint32, xi)
	var sum uint64
	for yi > 0 {
		xi--
		yi--
		sum = uint64(x[xi]) + uint64(y[yi]) + (sum >> 32)
		result[xi] = uint32(sum)
	}

	carry := sum>>32 != 0
	for xi > 0 && carry {
		xi--
		result[xi] = x[xi] + 1
		carry = result[xi] == 0
	}
	for xi > 0 {
		xi--
		result[xi] = x[xi]
	}

	if carry {
		grown := make([]uint32, len(result)+1)
		grown[0] = 1
		copy(grown[1:], result)
		return grown
	}
	return result
}

// subMag subtracts little from big into a newly allocated magnitude. big
// must be greater than or equal to little. The result is not stripped.
func subMag(big, little []uint32) []uint32 {
	bi, li := len(big), len(little)
	result := make([]uint32, bi)
	var diff int64
	for li > 0 {
		bi--
		li--
		diff = int64(big[bi]) - int64(little[li]) + (diff >> 32)
		result[bi] = uint32(diff)
	}

	borrow := diff>>32 != 0
	for bi > 0 && borrow {
		bi--
		result[bi] = big[bi] - 1
		borrow = result[bi] == wordMask
	}
	for bi > 0 {
		bi--
		result[bi] = big[bi]
	}
	return result
}

// incrementMag adds one to val in place, returning a new, longer magnitude
// if the increment carries out of the most significant word.
func incrementMag(val []uint32) []uint32 {
	for i := len(val) - 1; i >= 0; i-- {
		val[i]++
		if val[i] != 0 {
			return val
		}
	}
	grown := make([]uint32, len(val)+1)
	grown[0] = 1
	return grown
}

// multiplyToLen multiplies x by y using schoolbook word-by-word products.
// z is used for the result if it has room for len(x)+len(y) words, otherwise
// a new array is allocated. The result is not stripped.
func multiplyToLen(x, y, z []uint32) []uint32 {
	xstart := len(x) - 1
	ystart := len(y) - 1

	zlen := len(x) + len(y)
	if cap(z) < zlen {
		z = make([]uint32, zlen)
	}
	z = z[:zlen]

	var carry uint64
	for j, k := ystart, ystart+1+xstart; j >= 0; j, k = j-1, k-1 {
		product := uint64(y[j])*uint64(x[xstart]) + carry
		z[k] = uint32(product)
		carry = product >> 32
	}
	z[xstart] = uint32(carry)

	for i := xstart - 1; i >= 0; i-- {
		carry = 0
		for j, k := ystart, ystart+1+i; j >= 0; j, k = j-1, k-1 {
			product := mulAddWord(y[j], x[i], z[k], uint32(carry))
			z[k] = uint32(product)
			carry = product >> 32
		}
		z[i] = uint32(carry)
	}
	return z
}

// squareToLen squares x. Only the products above the diagonal are
// computed; they are doubled and the diagonal squares added in.
//
// The result has exactly 2*len(x) words and is not stripped. z is reused if
// it is large enough.
func squareToLen(x, z []uint32) []uint32 {
	xlen := len(x)
	zlen := 2 * xlen
	if cap(z) < zlen {
		z = make([]uint32, zlen)
	}
	z = z[:zlen]

	// Store the squares, right shifted one bit (i.e. divided by 2):
	var lastProductLowWord uint32
	for j, i := 0, 0; j < xlen; j++ {
		piece := uint64(x[j])
		product := piece * piece
		z[i] = lastProductLowWord<<31 | uint32(product>>33)
		z[i+1] = uint32(product >> 1)
		i += 2
		lastProductLowWord = uint32(product)
	}

	// Add in the off-diagonal sums:
	for i, offset := xlen, 1; i > 0; i, offset = i-1, offset+2 {
		t := x[i-1]
		t = mulAdd(z, x, offset, i-1, t)
		addOne(z, offset-1, i, t)
	}

	// Shift back up and set the low bit:
	primitiveLeftShift(z, zlen, 1)
	z[zlen-1] |= x[xlen-1] & 1
	return z
}

// mulAdd multiplies the first n words of in by k and adds the product into
// out, ending offset words from the least significant end of out. Returns
// the carry out.
func mulAdd(out, in []uint32, offset, n int, k uint32) uint32 {
	var carry uint64
	offset = len(out) - offset - 1
	for j := n - 1; j >= 0; j-- {
		product := mulAddWord(in[j], k, out[offset], uint32(carry))
		out[offset] = uint32(product)
		offset--
		carry = product >> 32
	}
	return uint32(carry)
}

// addOne adds carry into a at the word mlen+offset words from the least
// significant end, propagating towards the most significant word. Returns 1
// if the carry ran off the top of a.
func addOne(a []uint32, offset, mlen int, carry uint32) uint32 {
	offset = len(a) - 1 - mlen - offset
	t := uint64(a[offset]) + uint64(carry)
	a[offset] = uint32(t)
	if t>>32 == 0 {
		return 0
	}
	for mlen--; mlen >= 0; mlen-- {
		offset--
		if offset < 0 {
			return 1
		}
		a[offset]++
		if a[offset] != 0 {
			return 0
		}
	}
	return 1
}

// subN subtracts the first n words of b from the first n words of a in place.
// Returns 0, or -1 if the subtraction borrowed.
func subN(a, b []uint32, n int) int {
	var sum int64
	for n--; n >= 0; n-- {
		sum = int64(a[n]) - int64(b[n]) + (sum >> 32)
		a[n] = uint32(sum)
	}
	return int(sum >> 32)
}

// cmpToLen compares the first n words of a and b as unsigned numbers.
func cmpToLen(a, b []uint32, n int) int {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// primitiveLeftShift shifts the first n words of a left by s bits in place,
// 0 <= s < 32. Bits shifted out of a[0] are lost.
func primitiveLeftShift(a []uint32, n int, s uint) {
	if n == 0 || s == 0 {
		return
	}
	s2 := 32 - s
	c := a[0]
	for i := 0; i < n-1; i++ {
		b := c
		c = a[i+1]
		a[i] = (b << s) | (c >> s2)
	}
	a[n-1] <<= s
}

// shiftLeftMag returns mag shifted left by n bits in a new array. mag must
// be nonempty and stripped.
func shiftLeftMag(mag []uint32, n int) []uint32 {
	nInts := n >> 5
	nBits := uint(n & 0x1f)
	magLen := len(mag)

	if nBits == 0 {
		newMag := make([]uint32, magLen+nInts)
		copy(newMag, mag)
		return newMag
	}

	var newMag []uint32
	i := 0
	nBits2 := 32 - nBits
	highBits := mag[0] >> nBits2
	if highBits != 0 {
		newMag = make([]uint32, magLen+nInts+1)
		newMag[i] = highBits
		i++
	} else {
		newMag = make([]uint32, magLen+nInts)
	}
	j := 0
	for j < magLen-1 {
		newMag[i] = mag[j]<<nBits | mag[j+1]>>nBits2
		i++
		j++
	}
	newMag[i] = mag[j] << nBits
	return newMag
}

// shiftRightMag returns mag shifted right by n bits in a new array, rounding
// towards zero. The result may be empty.
func shiftRightMag(mag []uint32, n int) []uint32 {
	nInts := n >> 5
	nBits := uint(n & 0x1f)
	magLen := len(mag)
	if nInts >= magLen {
		return nil
	}

	if nBits == 0 {
		newMag := make([]uint32, magLen-nInts)
		copy(newMag, mag)
		return newMag
	}

	var newMag []uint32
	i := 0
	highBits := mag[0] >> nBits
	if highBits != 0 {
		newMag = make([]uint32, magLen-nInts)
		newMag[i] = highBits
		i++
	} else {
		newMag = make([]uint32, magLen-nInts-1)
	}
	nBits2 := 32 - nBits
	for j := 0; j < magLen-nInts-1; j++ {
		newMag[i] = mag[j]<<nBits2 | mag[j+1]>>nBits
		i++
	}
	return newMag
}

// destructiveMulAdd multiplies x by y and adds z, in place. The caller
// guarantees x has room for the result.
func destructiveMulAdd(x []uint32, y, z uint32) {
	var carry uint64
	n := len(x)
	for i := n - 1; i >= 0; i-- {
		product := uint64(y)*uint64(x[i]) + carry
		x[i] = uint32(product)
		carry = product >> 32
	}

	sum := uint64(x[n-1]) + uint64(z)
	x[n-1] = uint32(sum)
	carry = sum >> 32
	for i := n - 2; i >= 0; i-- {
		sum = uint64(x[i]) + carry
		x[i] = uint32(sum)
		carry = sum >> 32
	}
}

func bitCountWord(w uint32) int       { return bits.OnesCount32(w) }
func trailingZerosWord(w uint32) int { return bits.TrailingZeros32(w) }
