package bigint

type RandSource interface {
	Uint64() uint64
}

// Rand generates a uniformly distributed random Int in [0, 2**bits) from an
// external source. bits <= 0 gives zero.
func Rand(source RandSource, bits int) Int {
	if bits <= 0 {
		return Int{}
	}

	numWords := (bits + 31) >> 5
	mag := make([]uint32, numWords)
	for i := 0; i < numWords; i += 2 {
		r := source.Uint64()
		mag[i] = uint32(r)
		if i+1 < numWords {
			mag[i+1] = uint32(r >> 32)
		}
	}

	excessBits := uint(numWords<<5 - bits)
	mag[0] &= wordMask >> excessBits
	return newInt(stripLeadingZeroWords(mag), 1)
}
