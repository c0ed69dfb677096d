package bigint

import (
	"math/big"
)

// FromBigInt creates an Int from a big.Int. The conversion is always exact.
func FromBigInt(v *big.Int) Int {
	words := v.Bits()
	if len(words) == 0 {
		return Int{}
	}

	var mag []uint32
	switch intSize {
	case 64:
		mag = make([]uint32, 2*len(words))
		for i, w := range words {
			j := len(mag) - 1 - 2*i
			mag[j] = uint32(w)
			mag[j-1] = uint32(uint64(w) >> 32)
		}

	case 32:
		mag = make([]uint32, len(words))
		for i, w := range words {
			mag[len(mag)-1-i] = uint32(w)
		}

	default:
		panic("bigint: unsupported bit size")
	}

	return newInt(stripLeadingZeroWords(mag), v.Sign())
}

// IntoBigInt stores x in b, reusing b's storage where possible.
func (x Int) IntoBigInt(b *big.Int) {
	bits := b.Bits()[:0]

	switch intSize {
	case 64:
		for i := len(x.mag) - 1; i >= 0; i -= 2 {
			w := uint64(x.mag[i])
			if i > 0 {
				w |= uint64(x.mag[i-1]) << 32
			}
			bits = append(bits, big.Word(w))
		}

	case 32:
		for i := len(x.mag) - 1; i >= 0; i-- {
			bits = append(bits, big.Word(x.mag[i]))
		}

	default:
		panic("bigint: unsupported bit size")
	}

	b.SetBits(bits)
	if x.sign < 0 {
		b.Neg(b)
	}
}

func (x Int) AsBigInt() (b *big.Int) {
	var v big.Int
	x.IntoBigInt(&v)
	return &v
}

func (x Int) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(x.AsBigInt())
}
