package bitcodec

import (
	"fmt"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestPackUnpackUint(t *testing.T) {
	w := expect.WrapT(t)
	for i, tt := range []struct {
		v    uint64
		bits int
		bin  string
	}{
		{0, 4, "0000"},
		{1, 4, "0001"},
		{15, 4, "1111"},
		{5, 8, "00000101"},
		{274877906943, 38, strings.Repeat("1", 38)},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			got := PackUint(tt.v, tt.bits)
			w.ShouldBeEqual(got, tt.bin)
			w.ShouldBeEqual(UnpackUint(got), tt.v)
		})
	}
	w.ShouldBeEqual(UnpackUint(""), uint64(0))
}

func TestPackUnpackString(t *testing.T) {
	w := expect.WrapT(t)
	for i, tt := range []struct {
		s    string
		bits int
	}{
		{"", 35},
		{"A", 35},
		{"Hello!", 56},
		{"32a/b", 140},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.s), func(t *testing.T) {
			w := expect.WrapT(t)
			packed := PackString(tt.s, tt.bits)
			w.ShouldBeEqual(len(packed), tt.bits)
			w.ShouldBeEqual(UnpackString(packed), tt.s)
		})
	}
}

func TestHexBinRoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	for _, h := range []string{"00", "FF", "3074257BF7194E4000001A85", "deadbeef"} {
		bin, err := HexToBin(h)
		w.ShouldSucceed(err)
		back, err := BinToHex(bin)
		w.ShouldSucceed(err)
		w.ShouldBeEqual(back, upper(h))
	}

	_, err := HexToBin("ZZ")
	w.ShouldFail(err)

	_, err = BinToHex("101")
	w.ShouldFail(err)
}

func upper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func TestLPadRPad(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(LPad("1", 4, '0'), "0001")
	w.ShouldBeEqual(LPad("1234", 4, '0'), "1234")
	w.ShouldBeEqual(LPad("12345", 4, '0'), "12345")
	w.ShouldBeEqual(RPad("1", 4, '0'), "1000")
	w.ShouldBeEqual(RPad("1234", 2, '0'), "1234")
}

func TestEscapeUnescapeGS1(t *testing.T) {
	w := expect.WrapT(t)
	for i, tt := range []struct{ raw, escaped string }{
		{"", ""},
		{"32a/b", "32a%2Fb"},
		{`"&<>?%`, "%22%26%3C%3E%3F%25"},
		{"Hello!;1=1;'..*_*..%2F", "Hello!;1=1;'..*_*..%252F"},
		{"plain", "plain"},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(EscapeGS1(tt.raw), tt.escaped)
			w.ShouldBeEqual(UnescapeGS1(tt.escaped), tt.raw)
		})
	}
}

func TestIsPaddedNumeric(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeTrue(IsPaddedNumeric(""))
	w.ShouldBeTrue(IsPaddedNumeric("0"))
	w.ShouldBeTrue(IsPaddedNumeric("0614141"))
	w.ShouldBeTrue(!IsPaddedNumeric("A1"))
	w.ShouldBeTrue(!IsPaddedNumeric(" 0"))
}

func TestIsSerialChar(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeTrue(IsSerialChar(""))
	w.ShouldBeTrue(IsSerialChar("32a/b"))
	w.ShouldBeTrue(IsSerialChar("Hello!;1=1;'..*_*.."))
	w.ShouldBeTrue(!IsSerialChar("#"))
	w.ShouldBeTrue(!IsSerialChar("$"))
	w.ShouldBeTrue(!IsSerialChar("@"))
	w.ShouldBeTrue(!IsSerialChar(" "))
	w.ShouldBeTrue(!IsSerialChar("\x7f"))
}
