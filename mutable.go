package bigint

import (
	"math/bits"

	"github.com/decred/slog"
	"github.com/pkg/errors"
)

// mutableInt is a scratch magnitude used by operations that need to modify a
// value in place (division, string conversion and Montgomery setup). It never
// escapes the operation that created it.
//
// The active magnitude is value[offset:offset+intLen], big-endian. In normal
// form value[offset] is nonzero, or intLen == 0 and offset == 0.
type mutableInt struct {
	value  []uint32
	intLen int
	offset int
}

func newMutable() *mutableInt {
	return &mutableInt{value: make([]uint32, 1)}
}

// newMutableFrom wraps val without copying it; the mutableInt takes
// ownership of val.
func newMutableFrom(val []uint32) *mutableInt {
	return &mutableInt{value: val, intLen: len(val)}
}

func newMutableWord(val uint32) *mutableInt {
	return &mutableInt{value: []uint32{val}, intLen: 1}
}

// clear resets m to zero for reuse, keeping its backing array.
func (m *mutableInt) clear() {
	m.offset, m.intLen = 0, 0
	for i := range m.value {
		m.value[i] = 0
	}
}

func (m *mutableInt) clone() *mutableInt {
	val := make([]uint32, m.intLen)
	copy(val, m.value[m.offset:m.offset+m.intLen])
	return newMutableFrom(val)
}

func (m *mutableInt) setValue(val []uint32, length int) {
	m.value = val
	m.intLen = length
	m.offset = 0
}

func (m *mutableInt) isZero() bool { return m.intLen == 0 }

// magnitude returns a copy of the active window.
func (m *mutableInt) magnitude() []uint32 {
	out := make([]uint32, m.intLen)
	copy(out, m.value[m.offset:m.offset+m.intLen])
	return out
}

// toInt converts m to an Int with the given sign. m is left untouched.
func (m *mutableInt) toInt(sign int) Int {
	if m.intLen == 0 || sign == 0 {
		return Int{}
	}
	return newInt(stripLeadingZeroWords(m.magnitude()), sign)
}

// uint64 returns the low 64 bits of the magnitude.
func (m *mutableInt) uint64() uint64 {
	switch {
	case m.intLen == 0:
		return 0
	case m.intLen == 1:
		return uint64(m.value[m.offset])
	default:
		end := m.offset + m.intLen
		return uint64(m.value[end-2])<<32 | uint64(m.value[end-1])
	}
}

// compare compares the magnitudes of m and b as unsigned numbers. Both must
// be in normal form.
func (m *mutableInt) compare(b *mutableInt) int {
	if m.intLen < b.intLen {
		return -1
	} else if m.intLen > b.intLen {
		return 1
	}
	for i, j := m.offset, b.offset; i < m.intLen+m.offset; i, j = i+1, j+1 {
		b1, b2 := m.value[i], b.value[j]
		if b1 < b2 {
			return -1
		} else if b1 > b2 {
			return 1
		}
	}
	return 0
}

// normalize strips leading zero words from the active window.
func (m *mutableInt) normalize() {
	if m.intLen == 0 {
		m.offset = 0
		return
	}

	index := m.offset
	if m.value[index] != 0 {
		return
	}

	indexBound := index + m.intLen
	for index++; index < indexBound && m.value[index] == 0; index++ {
	}
	numZeros := index - m.offset
	m.intLen -= numZeros
	if m.intLen == 0 {
		m.offset = 0
	} else {
		m.offset += numZeros
	}
}

// primitiveLeftShift shifts the active window left by n bits, 0 <= n < 32.
// Bits shifted out of the high word are lost.
func (m *mutableInt) primitiveLeftShift(n uint) {
	val := m.value
	n2 := 32 - n
	c := val[m.offset]
	for i, last := m.offset, m.offset+m.intLen-1; i < last; i++ {
		b := c
		c = val[i+1]
		val[i] = (b << n) | (c >> n2)
	}
	val[m.offset+m.intLen-1] <<= n
}

// primitiveRightShift shifts the active window right by n bits, 0 < n < 32.
func (m *mutableInt) primitiveRightShift(n uint) {
	val := m.value
	n2 := 32 - n
	c := val[m.offset+m.intLen-1]
	for i := m.offset + m.intLen - 1; i > m.offset; i-- {
		b := c
		c = val[i-1]
		val[i] = (c << n2) | (b >> n)
	}
	val[m.offset] >>= n
}

// leftShift shifts m left by n bits. Slack in the backing array is reused
// where possible, preferring space to the right of the active window.
func (m *mutableInt) leftShift(n int) {
	if m.intLen == 0 {
		return
	}
	nInts := n >> 5
	nBits := uint(n & 0x1f)
	bitsInHighWord := bitLenWord(m.value[m.offset])

	// If the shift can be done without moving words, do so:
	if n <= 32-bitsInHighWord {
		m.primitiveLeftShift(nBits)
		return
	}

	newLen := m.intLen + nInts + 1
	if int(nBits) <= 32-bitsInHighWord {
		newLen--
	}

	if len(m.value) < newLen {
		// The array must grow:
		result := make([]uint32, newLen)
		copy(result, m.value[m.offset:m.offset+m.intLen])
		m.setValue(result, newLen)

	} else if len(m.value)-m.offset >= newLen {
		// Use space on the right:
		for i := 0; i < newLen-m.intLen; i++ {
			m.value[m.offset+m.intLen+i] = 0
		}

	} else {
		// Must use space on the left:
		copy(m.value, m.value[m.offset:m.offset+m.intLen])
		for i := m.intLen; i < newLen; i++ {
			m.value[i] = 0
		}
		m.offset = 0
	}

	m.intLen = newLen
	if nBits == 0 {
		return
	}
	if int(nBits) <= 32-bitsInHighWord {
		m.primitiveLeftShift(nBits)
	} else {
		m.primitiveRightShift(32 - nBits)
	}
}

// rightShift shifts m right by n bits, discarding the bits shifted off. m is
// left in normal form.
func (m *mutableInt) rightShift(n int) {
	if m.intLen == 0 {
		return
	}
	nInts := n >> 5
	nBits := uint(n & 0x1f)
	if nInts >= m.intLen {
		m.intLen, m.offset = 0, 0
		return
	}

	m.intLen -= nInts
	if nBits != 0 {
		bitsInHighWord := bitLenWord(m.value[m.offset])
		if int(nBits) >= bitsInHighWord {
			m.primitiveLeftShift(32 - nBits)
			m.intLen--
		} else {
			m.primitiveRightShift(nBits)
		}
	}
	m.normalize()
}

// divide computes the quotient of m / b, which is placed in quotient, and
// returns the remainder. m and b are not modified; both must be in normal
// form.
//
// Single-word divisors take a fast path; everything else goes through
// Knuth's Algorithm D (TAOCP vol. 2, 4.3.1).
func (m *mutableInt) divide(b, quotient *mutableInt) (*mutableInt, error) {
	if b.intLen == 0 {
		return nil, errors.WithStack(ErrDivideByZero)
	}
	if len(quotient.value) == 0 {
		quotient.value = make([]uint32, 1)
	}

	// Dividend is zero:
	if m.intLen == 0 {
		quotient.intLen, quotient.offset = 0, 0
		return newMutable(), nil
	}

	cmp := m.compare(b)
	if cmp < 0 {
		quotient.intLen, quotient.offset = 0, 0
		return m.clone(), nil

	} else if cmp == 0 {
		quotient.value[0] = 1
		quotient.intLen, quotient.offset = 1, 0
		return newMutable(), nil
	}

	quotient.clear()
	if b.intLen == 1 {
		r := m.divideOneWord(b.value[b.offset], quotient)
		if r == 0 {
			return newMutable(), nil
		}
		return newMutableWord(r), nil
	}

	// Copy the divisor; divideMagnitude normalizes it in place:
	div := make([]uint32, b.intLen)
	copy(div, b.value[b.offset:b.offset+b.intLen])
	return m.divideMagnitude(div, quotient), nil
}

// divideOneWord divides m by a single word divisor, placing the quotient in
// quotient and returning the remainder.
func (m *mutableInt) divideOneWord(divisor uint32, quotient *mutableInt) uint32 {
	// Special case of one word dividend:
	if m.intLen == 1 {
		dividend := m.value[m.offset]
		q, r := dividend/divisor, dividend%divisor
		quotient.value[0] = q
		quotient.offset = 0
		quotient.intLen = 0
		if q != 0 {
			quotient.intLen = 1
		}
		return r
	}

	if len(quotient.value) < m.intLen {
		quotient.value = make([]uint32, m.intLen)
	}
	quotient.offset = 0
	quotient.intLen = m.intLen

	rem := m.value[m.offset]
	if rem < divisor {
		quotient.value[0] = 0
	} else {
		quotient.value[0] = rem / divisor
		rem = rem % divisor
	}

	for xlen := m.intLen - 1; xlen > 0; xlen-- {
		var q uint32
		q, rem = divWord(rem, m.value[m.offset+m.intLen-xlen], divisor)
		quotient.value[m.intLen-xlen] = q
	}

	quotient.normalize()
	return rem
}

// divideMagnitude divides m by the magnitude in divisor, which must be at
// least two words long and is destroyed. The quotient is placed in quotient,
// which must have been cleared, and the remainder is returned.
func (m *mutableInt) divideMagnitude(divisor []uint32, quotient *mutableInt) *mutableInt {
	// Remainder starts as dividend with space for a leading zero:
	rem := &mutableInt{value: make([]uint32, m.intLen+1), intLen: m.intLen, offset: 1}
	copy(rem.value[1:], m.value[m.offset:m.offset+m.intLen])

	nlen := rem.intLen
	dlen := len(divisor)
	limit := nlen - dlen + 1
	if len(quotient.value) < limit {
		quotient.value = make([]uint32, limit)
		quotient.offset = 0
	}
	quotient.intLen = limit
	q := quotient.value

	// D1: normalize the divisor so its high bit is set.
	shift := uint(bits.LeadingZeros32(divisor[0]))
	if shift > 0 {
		// The first shift will not grow the array, but this one might:
		primitiveLeftShift(divisor, dlen, shift)
		rem.leftShift(int(shift))
	}

	// Must insert a leading 0 in rem if its length did not change:
	if rem.intLen == nlen {
		rem.offset = 0
		rem.value[0] = 0
		rem.intLen++
	}

	dh := divisor[0]
	dl := divisor[1]

	// D2: loop over the quotient digits.
	for j := 0; j < limit; j++ {
		// D3: estimate qhat from the top two remainder words.
		var qhat, qrem uint32
		skipCorrection := false
		nh := rem.value[j+rem.offset]
		nm := rem.value[j+1+rem.offset]

		if nh == dh {
			qhat = wordMask
			qrem = nh + nm
			skipCorrection = qrem < nh
		} else {
			qhat, qrem = divWord(nh, nm, dh)
		}

		if qhat == 0 {
			continue
		}

		if !skipCorrection {
			nl := uint64(rem.value[j+2+rem.offset])
			rs := uint64(qrem)<<32 | nl
			estProduct := uint64(dl) * uint64(qhat)

			if estProduct > rs {
				qhat--
				qrem = uint32(uint64(qrem) + uint64(dh))
				if qrem >= dh {
					estProduct -= uint64(dl)
					rs = uint64(qrem)<<32 | nl
					if estProduct > rs {
						qhat--
					}
				}
			}
		}

		// D4: multiply and subtract.
		rem.value[j+rem.offset] = 0
		borrow := mulsub(rem.value, divisor, qhat, dlen, j+rem.offset)

		// D5: if the subtraction went negative, qhat was one too large.
		if borrow > nh {
			// D6: add back.
			if log.Level() <= slog.LevelTrace {
				log.Tracef("division add-back at quotient digit %d of %d (qhat %#x)", j, limit, qhat)
			}
			divadd(divisor, rem.value, j+1+rem.offset)
			qhat--
		}

		q[j] = qhat
	}

	// D8: unnormalize.
	if shift > 0 {
		rem.rightShift(int(shift))
	}

	quotient.normalize()
	rem.normalize()
	return rem
}

// mulsub multiplies the n word input a by x and subtracts the product from q,
// ending at q[offset+n]. Returns the final borrow.
func mulsub(q, a []uint32, x uint32, n, offset int) uint32 {
	var carry uint64
	offset += n
	for j := n - 1; j >= 0; j-- {
		product := uint64(a[j])*uint64(x) + carry
		difference := q[offset] - uint32(product)
		q[offset] = difference
		offset--
		carry = product >> 32
		if difference > ^uint32(product) {
			carry++
		}
	}
	return uint32(carry)
}

// divadd adds the divisor a back into result at offset, after mulsub has
// been given an estimate that was one too large. Returns the carry.
func divadd(a, result []uint32, offset int) uint32 {
	var carry uint64
	for j := len(a) - 1; j >= 0; j-- {
		sum := uint64(a[j]) + uint64(result[j+offset]) + carry
		result[j+offset] = uint32(sum)
		carry = sum >> 32
	}
	return uint32(carry)
}
