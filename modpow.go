package bigint

import (
	"github.com/decred/slog"
	"github.com/pkg/errors"
)

// ModPow returns x**exponent mod m. m must be positive. A negative exponent
// computes the modular inverse of x**|exponent|, which fails with
// ErrNotInvertible unless x and m are coprime. The result is in [0, m).
//
// Odd moduli use Montgomery multiplication. Even moduli are split into an odd
// part and a power of two, solved separately and recombined with the Chinese
// Remainder Theorem.
func (x Int) ModPow(exponent, m Int) (Int, error) {
	if m.sign <= 0 {
		return Int{}, errors.Wrapf(ErrNonPositiveModulus, "modpow mod %s", m)
	}

	// Trivial cases:
	mIsOne := m.Equal(one)
	if exponent.sign == 0 || x.Equal(one) || (x.Equal(negOne) && exponent.Bit(0) == 0) {
		if mIsOne {
			return Int{}, nil
		}
		return one, nil
	}
	if x.sign == 0 && exponent.sign > 0 {
		return Int{}, nil
	}

	invertResult := false
	if exponent.sign < 0 {
		exponent = exponent.Neg()
		invertResult = true
	}

	base := x
	if base.sign < 0 || base.Cmp(m) >= 0 {
		base, _ = x.Mod(m)
	}

	var result Int
	if m.mag[len(m.mag)-1]&1 == 1 {
		result = base.oddModPow(exponent, m)

	} else {
		// Even modulus: m = m1 * 2**p with m1 odd.
		p := m.LowestSetBit()
		m1 := m.shiftRight(p)
		m2 := one.shiftLeft(p)
		if log.Level() <= slog.LevelTrace {
			log.Tracef("modpow even modulus: %d bit odd part, 2**%d", m1.BitLen(), p)
		}

		base2 := x
		if base2.sign < 0 || base2.Cmp(m1) >= 0 {
			base2, _ = x.Mod(m1)
		}

		var a1 Int
		if !m1.Equal(one) {
			a1 = base2.oddModPow(exponent, m1)
		}
		a2 := base.modPow2(exponent, p)

		// Combine the results using the Chinese Remainder Theorem:
		var y1, y2 Int
		var err error
		if !m1.Equal(one) {
			if y1, err = m2.ModInverse(m1); err != nil {
				return Int{}, err
			}
		}
		if y2, err = m1.ModInverse(m2); err != nil {
			return Int{}, err
		}

		result, _ = a1.Mul(m2).Mul(y1).Add(a2.Mul(m1).Mul(y2)).Mod(m)
	}

	if invertResult {
		inv, err := result.ModInverse(m)
		if err != nil {
			return Int{}, errors.Wrapf(ErrNotInvertible, "%s**%s mod %s", x, exponent.Neg(), m)
		}
		return inv, nil
	}
	return result, nil
}

// oddModPow returns x**exponent mod m for odd m, 0 <= x < m and exponent > 0,
// by left-to-right binary exponentiation in Montgomery form.
func (x Int) oddModPow(exponent, m Int) Int {
	if x.sign == 0 {
		return Int{}
	}

	mod := m.mag
	modLen := len(mod)
	inv := -inverseMod32(mod[modLen-1])

	aMont := toMontgomery(x.mag, mod)
	result := toMontgomery([]uint32{1}, mod)
	t := make([]uint32, 2*modLen)

	exp := exponent.mag
	expLen := len(exp)
	for i := bitLenMag(exp) - 1; i >= 0; i-- {
		squareToLen(result, t)
		montReduce(t, mod, modLen, inv)
		copy(result, t[:modLen])

		if exp[expLen-1-i>>5]>>(i&31)&1 == 1 {
			multiplyToLen(result, aMont, t)
			montReduce(t, mod, modLen, inv)
			copy(result, t[:modLen])
		}
	}

	// Convert out of Montgomery form by reducing result * 1:
	for i := range t {
		t[i] = 0
	}
	copy(t[modLen:], result)
	montReduce(t, mod, modLen, inv)

	out := make([]uint32, modLen)
	copy(out, t[:modLen])
	return newInt(stripLeadingZeroWords(out), 1)
}

// toMontgomery returns a * 2**(32*len(mod)) mod mod, left-padded with zeros
// to len(mod) words. a must be stripped and nonzero.
func toMontgomery(a, mod []uint32) []uint32 {
	modLen := len(mod)
	shifted := make([]uint32, len(a)+modLen)
	copy(shifted, a)

	rem, err := newMutableFrom(shifted).divide(newMutableFrom(mod), newMutable())
	if err != nil {
		panic(err) // mod is odd, so never zero
	}

	out := make([]uint32, modLen)
	r := rem.magnitude()
	copy(out[modLen-len(r):], r)
	return out
}

// montReduce performs Montgomery reduction of the 2*mlen word value n in
// place, leaving n * 2**(-32*mlen) mod mod in n[:mlen]. inv is
// -mod**-1 mod 2**32.
func montReduce(n, mod []uint32, mlen int, inv uint32) {
	c := 0
	for offset := 0; offset < mlen; offset++ {
		nEnd := n[len(n)-1-offset]
		carry := mulAdd(n, mod, offset, mlen, inv*nEnd)
		c += int(addOne(n, offset, mlen, carry))
	}

	for c > 0 {
		c += subN(n, mod, mlen)
	}
	for cmpToLen(n, mod, mlen) >= 0 {
		subN(n, mod, mlen)
	}
}

// modPow2 returns x**exponent mod 2**p for x >= 0 and exponent > 0.
func (x Int) modPow2(exponent Int, p int) Int {
	result := one
	baseToPow2 := x.mod2(p)
	limit := exponent.BitLen()

	// The multiplicative order of an odd number mod 2**p divides
	// 2**(p-1), so higher exponent bits do not change the result:
	if x.Bit(0) == 1 && p-1 < limit {
		limit = p - 1
	}

	for expOffset := 0; expOffset < limit; {
		if exponent.Bit(uint(expOffset)) == 1 {
			result = result.Mul(baseToPow2).mod2(p)
		}
		expOffset++
		if expOffset < limit {
			baseToPow2 = baseToPow2.Square().mod2(p)
		}
	}
	return result
}

// mod2 returns x mod 2**p for x >= 0.
func (x Int) mod2(p int) Int {
	if x.BitLen() <= p {
		return x
	}

	numInts := (p + 31) >> 5
	mag := make([]uint32, numInts)
	copy(mag, x.mag[len(x.mag)-numInts:])

	excessBits := uint(numInts<<5 - p)
	mag[0] &= (uint32(1) << (32 - excessBits)) - 1
	return newInt(stripLeadingZeroWords(mag), 1)
}

// ModInverse returns the y in [0, m) for which x*y mod m == 1. m must be
// positive, and x and m must be coprime.
func (x Int) ModInverse(m Int) (Int, error) {
	if m.sign <= 0 {
		return Int{}, errors.Wrapf(ErrNonPositiveModulus, "modinverse mod %s", m)
	}
	if m.Equal(one) {
		return Int{}, nil
	}

	a, err := x.Mod(m)
	if err != nil {
		return Int{}, err
	}

	// Extended Euclid, tracking only the coefficient of a:
	oldR, r := a, m
	oldS, s := one, Int{}
	for !r.IsZero() {
		q, rem, err := oldR.QuoRem(r)
		if err != nil {
			return Int{}, err
		}
		oldR, r = r, rem
		oldS, s = s, oldS.Sub(q.Mul(s))
	}

	if !oldR.Equal(one) {
		return Int{}, errors.Wrapf(ErrNotInvertible, "%s mod %s", x, m)
	}
	return oldS.Mod(m)
}
