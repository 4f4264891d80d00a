package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestSGTIN_TagURIToBinary(t *testing.T) {
	type sgtinTest struct {
		name, tagURI, hex string
	}

	for i, tt := range []sgtinTest{
		{"96", "urn:epc:tag:sgtin-96:3.0614141.812345.6789",
			"3074257BF7194E4000001A85"},
		{"198", "urn:epc:tag:sgtin-198:3.0614141.712345.32a%2Fb",
			"3674257BF6B7A659B2C2BF100000000000000000000000000000"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			s, err := ParseSGTINTagURI(tt.tagURI)
			w.ShouldSucceed(err)
			hex, err := s.Binary()
			w.ShouldSucceed(err)
			w.ShouldBeEqual(hex, tt.hex)
		})
	}
}

func TestSGTIN_BinaryRoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	for i, tagURI := range []string{
		"urn:epc:tag:sgtin-96:3.0614141.812345.6789",
		"urn:epc:tag:sgtin-198:3.0614141.712345.32a%2Fb",
		"urn:epc:tag:sgtin-96:0.0000001.000000.0",
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			orig, err := ParseSGTINTagURI(tagURI)
			w.ShouldSucceed(err)
			hex, err := orig.Binary()
			w.ShouldSucceed(err)

			decoded, err := ParseSGTINBinary(hex)
			w.ShouldSucceed(err)
			w.ShouldBeEqual(decoded.CompanyPrefix(), orig.CompanyPrefix())
			w.ShouldBeEqual(decoded.ItemReferenceAndIndicator(), orig.ItemReferenceAndIndicator())
			w.ShouldBeEqual(decoded.Serial(), orig.Serial())
			w.ShouldBeEqual(decoded.FilterValue(), orig.FilterValue())
			w.ShouldBeEqual(decoded.Scheme(), orig.Scheme())

			hex2, err := decoded.Binary()
			w.ShouldSucceed(err)
			w.ShouldBeEqual(hex2, hex)
		})
	}
}

func TestSGTIN_URIRoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	s, err := NewSGTIN("0614141", "812345", "6789")
	w.ShouldSucceed(err)
	back, err := ParseSGTINURI(s.URI())
	w.ShouldSucceed(err)
	w.ShouldBeEqual(back.CompanyPrefix(), s.CompanyPrefix())
	w.ShouldBeEqual(back.ItemReferenceAndIndicator(), s.ItemReferenceAndIndicator())
	w.ShouldBeEqual(back.Serial(), s.Serial())
	w.ShouldBeEqual(back.FilterValue(), FilterValue(0))
	w.ShouldBeEqual(back.Scheme(), SGTIN96)
}

func TestSGTIN_96SerialBoundary(t *testing.T) {
	w := expect.WrapT(t)

	s, err := NewSGTIN("0614141", "712345", "274877906943")
	w.ShouldSucceed(err)
	_, err = s.Binary()
	w.ShouldSucceed(err)

	s, err = NewSGTIN("0614141", "712345", "274877906944")
	w.ShouldSucceed(err)
	_, binErr := s.Binary()
	w.As("274877906944 exceeds 2^38-1").ShouldFail(binErr)
	w.ShouldBeEqual(StatusOf(binErr), StatusInvalidSerial)
}

func TestSGTIN_InvalidCompanyPrefixLength(t *testing.T) {
	w := expect.WrapT(t)
	_, err := NewSGTIN("06141", "81234500", "1")
	w.ShouldFail(err)
	w.ShouldBeEqual(StatusOf(err), StatusInvalidArgument)
}

func TestSGTIN_WrongBinaryLength(t *testing.T) {
	w := expect.WrapT(t)
	_, err := ParseSGTINBinary("3074257BF7194E4000001A") // one byte short
	w.ShouldFail(err)
	w.ShouldBeEqual(StatusOf(err), StatusInvalidArgument)
}

func TestSGTIN_UnknownHeader(t *testing.T) {
	w := expect.WrapT(t)
	_, err := ParseSGTINBinary("E2801160600002054CC2096F")
	w.ShouldFail(err)
	w.ShouldBeEqual(StatusOf(err), StatusInvalidArgument)
}
