package bigint

import (
	"math"
)

// FromFloat64 creates an Int from a float64. Any fractional portion will be
// truncated towards zero.
//
// NaN and the infinities are treated as 0, and inRange is set to false.
func FromFloat64(f float64) (out Int, inRange bool) {
	if f != f || math.IsInf(f, 0) { // (f != f) == NaN
		return Int{}, false
	}
	if f > -1 && f < 1 {
		return Int{}, true
	}
	if f >= math.MinInt64 && f < -math.MinInt64 {
		return From64(int64(f)), true
	}

	// f = frac * 2**exp with 0.5 <= |frac| < 1, so frac * 2**53 is the
	// 53-bit integer mantissa:
	frac, exp := math.Frexp(f)
	sign := 1
	if frac < 0 {
		sign, frac = -1, -frac
	}
	mantissa := FromU64(uint64(frac * (1 << 53)))

	// |f| >= 2**63 here, so the mantissa only ever moves left:
	out = mantissa.shiftLeft(exp - 53)
	if sign < 0 {
		out = out.Neg()
	}
	return out, true
}

// AsFloat64 returns the float64 nearest to x, rounding half to even. Values
// too large in magnitude for a float64 become an infinity.
func (x Int) AsFloat64() float64 {
	n := bitLenMag(x.mag)
	if n == 0 {
		return 0
	}

	var f float64
	if n <= 64 {
		f = float64(x.magUint64())

	} else {
		// Keep the top 64 bits, and fold everything shifted off into the
		// lowest one so a tie can never be mistaken for an exact half:
		shift := n - 64
		top := newInt(shiftRightMag(x.mag, shift), 1).magUint64()
		if x.LowestSetBit() < shift {
			top |= 1
		}
		f = math.Ldexp(float64(top), shift)
	}

	if x.sign < 0 {
		return -f
	}
	return f
}

// magUint64 returns the low 64 bits of |x|.
func (x Int) magUint64() uint64 {
	switch len(x.mag) {
	case 0:
		return 0
	case 1:
		return uint64(x.mag[0])
	default:
		return uint64(x.mag[len(x.mag)-2])<<32 | uint64(x.mag[len(x.mag)-1])
	}
}
