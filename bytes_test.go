package bigint

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func TestBytes(t *testing.T) {
	for idx, tc := range []struct {
		a   Int
		out []byte
	}{
		{i64(0), []byte{0}},
		{i64(1), []byte{1}},
		{i64(-1), []byte{0xff}},
		{i64(127), []byte{0x7f}},
		{i64(128), []byte{0x00, 0x80}},
		{i64(-128), []byte{0x80}},
		{i64(-129), []byte{0xff, 0x7f}},
		{i64(255), []byte{0x00, 0xff}},
		{i64(-256), []byte{0xff, 0x00}},
		{ints("0x100000000"), []byte{1, 0, 0, 0, 0}},
		{ints("-0x100000000"), []byte{0xff, 0, 0, 0, 0}},
		{ints("-" + hexLiteral), []byte{233, 182, 88, 163, 222, 215, 199, 24, 161, 246, 92, 224, 106, 119, 163, 60}},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Bytes())

			back, err := FromTwosComplement(tc.out)
			tt.MustOK(err)
			tt.MustAssert(tc.a.Equal(back), back)
		})
	}
}

func TestFromBytes(t *testing.T) {
	for idx, tc := range []struct {
		sign int
		in   []byte
		out  string
	}{
		{0, nil, "0"},
		{0, []byte{0, 0}, "0"},
		{1, []byte{1}, "1"},
		{-1, []byte{0, 0, 1, 0}, "-256"},
		{1, []byte("hello1234"), "1925769719185931383604"},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0xff}, "-1099511627775"},
	} {
		t.Run(fmt.Sprintf("%d/%d/%x", idx, tc.sign, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromBytes(tc.sign, tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestFromBytesErrors(t *testing.T) {
	for idx, tc := range []struct {
		sign int
		in   []byte
	}{
		{2, []byte{1}},
		{-2, []byte{1}},
		{0, []byte{1}},
		{1, nil},
		{-1, []byte{0, 0}},
	} {
		t.Run(fmt.Sprintf("%d/%d/%x", idx, tc.sign, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := FromBytes(tc.sign, tc.in)
			tt.MustAssert(errors.Is(err, ErrSignMagnitude), err)
		})
	}
}

func TestFromTwosComplement(t *testing.T) {
	for idx, tc := range []struct {
		in  []byte
		out string
	}{
		{[]byte{0}, "0"},
		{[]byte{0, 0, 0}, "0"},
		{[]byte{0xff}, "-1"},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff}, "-1"},
		{[]byte{0x80, 0, 0, 0, 0}, "-549755813888"},
		{[]byte{0xfe, 0xdc, 0xba}, "-74566"},
		{[]byte{0, 0xfe, 0xdc, 0xba}, "16702650"},
	} {
		t.Run(fmt.Sprintf("%d/%x", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromTwosComplement(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
		})
	}

	t.Run("empty", func(t *testing.T) {
		tt := assert.WrapTB(t)
		_, err := FromTwosComplement(nil)
		tt.MustAssert(errors.Is(err, ErrParse), err)
	})
}

func TestBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 1000; i++ {
		v := randInt(rng, 500)

		t.Run(fmt.Sprintf("%d/%s", i, v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			b := v.Bytes()
			tt.MustEqual(v.BitLen()/8+1, len(b))

			back, err := FromTwosComplement(b)
			tt.MustOK(err)
			tt.MustAssert(back.Equal(v))

			mag, err := FromBytes(v.Sign(), v.Abs().AsBigInt().Bytes())
			tt.MustOK(err)
			tt.MustAssert(mag.Equal(v))

			if v.Sign() > 0 {
				pos, err := FromBytes(1, b)
				tt.MustOK(err)
				tt.MustAssert(pos.Equal(v))
			}
		})
	}
}
