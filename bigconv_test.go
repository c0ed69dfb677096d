package bigint

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a Int
		b *big.Int
	}{
		{i64(0), big.NewInt(0)},
		{i64(2), big.NewInt(2)},
		{i64(-2), big.NewInt(-2)},
		{FromMagnitude([]uint32{1, 0}, 1), bigs("4294967296")},
		{FromMagnitude([]uint32{1, 0, 0}, 1), bigs("18446744073709551616")},
		{FromMagnitude([]uint32{0xffffffff, 0xffffffff, 0xffffffff}, -1), bigs("-0xffffffffffffffffffffffff")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
			tt.MustAssert(tc.a.Equal(FromBigInt(tc.b)))

			f, _ := tc.a.AsBigFloat().Int(nil)
			tt.MustAssert(tc.b.Cmp(f) == 0, "found: %s", f)
		})
	}
}

func TestIntoBigIntReusesStorage(t *testing.T) {
	tt := assert.WrapTB(t)
	b := bigs("-0xffffffffffffffffffffffffffffffffffffffff")
	ints("0x1234").IntoBigInt(b)
	tt.MustEqual("4660", b.String())
	ints("-0x123456789abcdef0123456789").IntoBigInt(b)
	tt.MustEqual("-0x123456789abcdef0123456789", fmt.Sprintf("%#x", b))
}

func TestBigIntRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 1000; i++ {
		b := new(big.Int).Rand(rng, bigs("0x1"+fmt.Sprintf("%0200x", 0)))
		if rng.Intn(2) == 1 {
			b.Neg(b)
		}
		v := FromBigInt(b)
		tt.MustEqual(b.String(), v.String(), "failed at index %d", i)
		tt.MustAssert(b.Cmp(v.AsBigInt()) == 0, "failed at index %d", i)
	}
}
