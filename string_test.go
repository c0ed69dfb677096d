package bigint

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func TestText(t *testing.T) {
	neg := ints("-" + hexLiteral)

	for idx, tc := range []struct {
		a     Int
		radix int
		out   string
	}{
		{i64(0), 10, "0"},
		{i64(0), 2, "0"},
		{i64(-1), 10, "-1"},
		{i64(255), 16, "ff"},
		{i64(255), 2, "11111111"},
		{neg, 2, "-10110010010011010011101011100001000010010100000111000111001110101111000001001101000110001111110010101100010000101110011000100"},
		{neg, 3, "-1210201000201111112010101002021110120220220201110022221220102111020200110201210"},
		{neg, 7, "-163650525202344321105135620260433440542641616"},
		{neg, 10, "-29625448039597583839432359987556932804"},
		{neg, 16, "-1649a75c212838e75e09a31f95885cc4"},
		{neg, 35, "-2ks3l0t61q3gbf5ash0bo31cy"},
		{neg, 36, "-1bi1yf4nhh2wf9vbph9bx9hac"},

		// Inner digit groups are zero padded:
		{ints("100000000000000000000"), 10, "100000000000000000000"},
		{ints("0x10000000000000000"), 2, "1" + strings.Repeat("0", 64)},
		{ints("170581728179578208256"), 36, "10000000000000"},

		// Out of range radixes fall back to 10:
		{neg, 1, "-29625448039597583839432359987556932804"},
		{neg, 37, "-29625448039597583839432359987556932804"},
		{neg, 0, "-29625448039597583839432359987556932804"},
	} {
		t.Run(fmt.Sprintf("%d/%d", idx, tc.radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Text(tc.radix))
			if tc.radix == 10 {
				tt.MustEqual(tc.out, tc.a.String())
			}
		})
	}
}

func TestFromString(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		out   string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"+0", 10, "0"},
		{"0000", 10, "0"},
		{"00012", 10, "12"},
		{"+12", 10, "12"},
		{"-12", 10, "-12"},
		{"-1649a75c212838e75e09a31f95885cc4", 16, "-29625448039597583839432359987556932804"},
		{"-1649A75C212838E75E09A31F95885CC4", 16, "-29625448039597583839432359987556932804"},
		{"zzzzzzyyyyyy", 36, "4738381338259423114"},
		{"ZZZZZZYYYYYY", 36, "4738381338259423114"},
		{"11111111", 2, "255"},
		{"1" + strings.Repeat("0", 64), 2, "18446744073709551616"},
		{"100000000000000000000", 10, "100000000000000000000"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%d", idx, tc.in, tc.radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromString(tc.in, tc.radix)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestFromStringErrors(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		msg   string
	}{
		{"", 10, "zero length"},
		{"-", 10, "zero length"},
		{"+", 10, "zero length"},
		{"1-2", 10, "illegal embedded sign character"},
		{"--1", 10, "illegal embedded sign character"},
		{"-+1", 10, "illegal embedded sign character"},
		{"+-1", 10, "illegal embedded sign character"},
		{"12+", 10, "illegal embedded sign character"},
		{"12a", 10, "illegal digit"},
		{"2", 2, "illegal digit"},
		{"1 2", 10, "illegal digit"},
		{"0x12", 16, "illegal digit"},
		{"1_000", 10, "illegal digit"},
		{"123456789012345678901234567890z", 10, "illegal digit"},
		{"1", 1, "radix 1 out of range"},
		{"1", 37, "radix 37 out of range"},
	} {
		t.Run(fmt.Sprintf("%d/%q/%d", idx, tc.in, tc.radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := FromString(tc.in, tc.radix)
			tt.MustAssert(errors.Is(err, ErrParse), err)
			tt.MustAssert(strings.Contains(err.Error(), tc.msg), err)
		})
	}
}

func TestMustFromStringPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		r := recover()
		err, ok := r.(error)
		tt.MustAssert(ok)
		tt.MustAssert(errors.Is(err, ErrParse))
	}()
	MustFromString("nope", 10)
}

func TestStringRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 1000; i++ {
		v := randInt(rng, 500)
		radix := MinRadix + rng.Intn(MaxRadix-MinRadix+1)

		t.Run(fmt.Sprintf("%d/%d", i, radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			s := v.Text(radix)
			tt.MustEqual(v.AsBigInt().Text(radix), s)

			back, err := FromString(s, radix)
			tt.MustOK(err)
			tt.MustAssert(back.Equal(v), "%s != %s", back, v)

			exp, _ := new(big.Int).SetString(s, radix)
			tt.MustEqual(exp.String(), back.String())
		})
	}
}
