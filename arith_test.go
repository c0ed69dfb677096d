package bigint

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestDivWord(t *testing.T) {
	for idx, tc := range []struct {
		n    uint64
		d    uint32
		q, r uint32
	}{
		{n: 0x868f0a879c438e75, d: 3725290298, q: 2602744839, r: 3414231007},
		{n: 0, d: 1, q: 0, r: 0},
		{n: 0xfffffffe_ffffffff, d: 0xffffffff, q: 0xffffffff, r: 0xfffffffe},
		{n: 100, d: 7, q: 14, r: 2},
	} {
		t.Run(fmt.Sprintf("%d/%d/%d", idx, tc.n, tc.d), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := divWord(uint32(tc.n>>32), uint32(tc.n), tc.d)
			tt.MustEqual(tc.q, q)
			tt.MustEqual(tc.r, r)
		})
	}
}

func TestInverseMod32(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint32(1831769167), inverseMod32(687))
	tt.MustEqual(uint32(1), inverseMod32(1))
	tt.MustEqual(uint32(0xffffffff), inverseMod32(0xffffffff))

	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 10000; i++ {
		v := rng.Uint32() | 1
		inv := inverseMod32(v)
		tt.MustEqual(uint32(1), v*inv, "failed at index %d for %d", i, v)
	}
}

func TestMulAddWord(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint64(1<<64-1), mulAddWord(wordMask, wordMask, wordMask, wordMask))
	tt.MustEqual(uint64(17), mulAddWord(3, 4, 2, 3))
}
