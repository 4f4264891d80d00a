package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestSGLN_TagURIToBinary(t *testing.T) {
	w := expect.WrapT(t)
	s, err := ParseSGLNTagURI("urn:epc:tag:sgln-195:3.0614141.12345.32a%2Fb")
	w.ShouldSucceed(err)
	hex, err := s.Binary()
	w.ShouldSucceed(err)
	w.ShouldBeEqual(hex, "3974257BF46072CD9615F8800000000000000000000000000")
	w.ShouldBeEqual(len(hex), sgln195Bits/4)
}

func TestSGLN_BinaryRoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	for i, tagURI := range []string{
		"urn:epc:tag:sgln-195:3.0614141.12345.32a%2Fb",
		"urn:epc:tag:sgln-96:1.0614141.12345.100",
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			orig, err := ParseSGLNTagURI(tagURI)
			w.ShouldSucceed(err)
			hex, err := orig.Binary()
			w.ShouldSucceed(err)

			decoded, err := ParseSGLNBinary(hex)
			w.ShouldSucceed(err)
			w.ShouldBeEqual(decoded.CompanyPrefix(), orig.CompanyPrefix())
			w.ShouldBeEqual(decoded.LocationReference(), orig.LocationReference())
			w.ShouldBeEqual(decoded.Extension(), orig.Extension())
			w.ShouldBeEqual(decoded.Scheme(), orig.Scheme())

			hex2, err := decoded.Binary()
			w.ShouldSucceed(err)
			w.ShouldBeEqual(hex2, hex)
		})
	}
}

func TestSGLN_96ExtensionBoundary(t *testing.T) {
	w := expect.WrapT(t)
	s, err := NewSGLN("0614141", "12345", "2199023255551")
	w.ShouldSucceed(err)
	_, err = s.Binary()
	w.ShouldSucceed(err)

	s, err = NewSGLN("0614141", "12345", "2199023255552")
	w.ShouldSucceed(err)
	_, binErr := s.Binary()
	w.ShouldBeEqual(StatusOf(binErr), StatusInvalidSerial)
}

func TestSGLN_195ExtensionTooLong(t *testing.T) {
	w := expect.WrapT(t)
	s, err := NewSGLN("0614141", "12345", "012345678901234567890") // 21 chars > 20 max
	w.ShouldSucceed(err)
	w.ShouldSucceed(s.SetScheme(SGLN195))
	_, binErr := s.Binary()
	w.ShouldBeEqual(StatusOf(binErr), StatusInvalidSerial)
}
