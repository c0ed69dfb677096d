package bigint

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func TestFormat(t *testing.T) {
	neg := ints("-" + hexLiteral)

	for idx, tc := range []struct {
		format string
		a      Int
		out    string
	}{
		{"%d", i64(0), "0"},
		{"%d", neg, "-29625448039597583839432359987556932804"},
		{"%s", neg, "-29625448039597583839432359987556932804"},
		{"%v", neg, "-29625448039597583839432359987556932804"},
		{"%x", neg, "-1649a75c212838e75e09a31f95885cc4"},
		{"%X", neg, "-1649A75C212838E75E09A31F95885CC4"},
		{"%#x", i64(255), "0xff"},
		{"%o", i64(8), "10"},
		{"%O", i64(8), "0o10"},
		{"%b", i64(5), "101"},
		{"%+d", i64(5), "+5"},
		{"%6d", i64(-5), "    -5"},
		{"%-6d|", i64(5), "5     |"},
		{"%06d", i64(-5), "-00005"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.format, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.format, tc.a))
		})
	}
}

func TestTextMarshaling(t *testing.T) {
	tt := assert.WrapTB(t)
	v := ints("-" + hexLiteral)

	bts, err := v.MarshalText()
	tt.MustOK(err)
	tt.MustEqual("-29625448039597583839432359987556932804", string(bts))

	var back Int
	tt.MustOK(back.UnmarshalText(bts))
	tt.MustAssert(back.Equal(v))

	err = back.UnmarshalText([]byte("1x"))
	tt.MustAssert(errors.Is(err, ErrParse), err)
	tt.MustAssert(back.Equal(v), "failed unmarshal must not modify the target")
}

func TestJSONMarshaling(t *testing.T) {
	type wrapper struct {
		V Int `json:"v"`
	}

	for idx, tc := range []struct {
		in  string
		out string
	}{
		{`{"v":"123"}`, "123"},
		{`{"v":123}`, "123"},
		{`{"v":"-29625448039597583839432359987556932804"}`, "-29625448039597583839432359987556932804"},
		{`{"v":-29625448039597583839432359987556932804}`, "-29625448039597583839432359987556932804"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var w wrapper
			tt.MustOK(json.Unmarshal([]byte(tc.in), &w))
			tt.MustEqual(tc.out, w.V.String())

			bts, err := json.Marshal(w)
			tt.MustOK(err)
			tt.MustEqual(`{"v":"`+tc.out+`"}`, string(bts))
		})
	}

	for idx, in := range []string{`{"v":"12a"}`, `{"v":""}`, `{"v":1.5}`} {
		t.Run(fmt.Sprintf("invalid/%d/%s", idx, in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var w wrapper
			err := json.Unmarshal([]byte(in), &w)
			tt.MustAssert(errors.Is(err, ErrParse), err)
		})
	}
}
