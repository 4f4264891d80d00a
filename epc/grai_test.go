package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestGRAI_TagURIToBinary(t *testing.T) {
	w := expect.WrapT(t)
	s, err := ParseGRAITagURI("urn:epc:tag:grai-96:3.0614141.12345.5678")
	w.ShouldSucceed(err)
	hex, err := s.Binary()
	w.ShouldSucceed(err)
	w.ShouldBeEqual(hex, "3374257BF40C0E400000162E")
	w.ShouldBeEqual(len(hex), grai96Bits/4)
}

func TestGRAI_BinaryRoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	for i, tagURI := range []string{
		"urn:epc:tag:grai-96:3.0614141.12345.5678",
		"urn:epc:tag:grai-170:1.0614141.12345.32a%2Fb",
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			orig, err := ParseGRAITagURI(tagURI)
			w.ShouldSucceed(err)
			hex, err := orig.Binary()
			w.ShouldSucceed(err)

			decoded, err := ParseGRAIBinary(hex)
			w.ShouldSucceed(err)
			w.ShouldBeEqual(decoded.CompanyPrefix(), orig.CompanyPrefix())
			w.ShouldBeEqual(decoded.AssetType(), orig.AssetType())
			w.ShouldBeEqual(decoded.Serial(), orig.Serial())
			w.ShouldBeEqual(decoded.Scheme(), orig.Scheme())

			hex2, err := decoded.Binary()
			w.ShouldSucceed(err)
			w.ShouldBeEqual(hex2, hex)
		})
	}
}

func TestGRAI_URIRoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	s, err := NewGRAI("0614141", "12345", "5678")
	w.ShouldSucceed(err)
	back, err := ParseGRAIURI(s.URI())
	w.ShouldSucceed(err)
	w.ShouldBeEqual(back.CompanyPrefix(), s.CompanyPrefix())
	w.ShouldBeEqual(back.AssetType(), s.AssetType())
	w.ShouldBeEqual(back.Serial(), s.Serial())
	w.ShouldBeEqual(back.Scheme(), GRAI96)
}

func TestGRAI_96SerialBoundary(t *testing.T) {
	w := expect.WrapT(t)
	s, err := NewGRAI("0614141", "12345", "274877906943")
	w.ShouldSucceed(err)
	_, err = s.Binary()
	w.ShouldSucceed(err)

	s, err = NewGRAI("0614141", "12345", "274877906944")
	w.ShouldSucceed(err)
	_, binErr := s.Binary()
	w.ShouldBeEqual(StatusOf(binErr), StatusInvalidSerial)
}

func TestGRAI_InvalidDigitSum(t *testing.T) {
	w := expect.WrapT(t)
	_, err := NewGRAI("0614141", "123456", "5678") // 7+6 != 12
	w.ShouldFail(err)
	w.ShouldBeEqual(StatusOf(err), StatusInvalidArgument)
}

func TestGRAI_WrongBinaryLength(t *testing.T) {
	w := expect.WrapT(t)
	_, err := ParseGRAIBinary("3374257BF40C0E400000")
	w.ShouldFail(err)
	w.ShouldBeEqual(StatusOf(err), StatusInvalidArgument)
}
