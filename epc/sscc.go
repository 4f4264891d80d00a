package epc

import (
	"regexp"
	"strconv"

	"github.com/gs1works/tagcode/bitcodec"
)

// SSCC has exactly one binary scheme, unlike every other family: there is
// no alphanumeric serial path and no SetScheme/Scheme method at all.
const (
	sscc96Header = "00110001"
	sscc96Bits   = 96

	ssccTotalDigits = 17
)

var (
	ssccPureURIRegexp = regexp.MustCompile(`^urn:epc:id:sscc:(\d+)\.(\d+)$`)
	ssccTagURIRegexp  = regexp.MustCompile(`^urn:epc:tag:sscc-96:(\d)\.(\d+)\.(\d+)$`)
)

// SSCC is the Serial Shipping Container Code identifier: a company prefix
// and a serial reference, both purely numeric.
type SSCC struct {
	filterCarrier
	companyPrefix string
	serialRef     string
}

// NewSSCC constructs an SSCC from its element-string fields. Both fields
// must be all-decimal and sum to 17 digits; companyPrefix's length must
// match one of the seven partition-table rows.
func NewSSCC(companyPrefix, serialRef string) (SSCC, error) {
	if err := requireDigits("company prefix", companyPrefix); err != nil {
		return SSCC{}, err
	}
	if err := requireDigits("serial reference", serialRef); err != nil {
		return SSCC{}, err
	}
	if err := requireLengthSum(ssccTotalDigits, companyPrefix, serialRef); err != nil {
		return SSCC{}, err
	}
	if _, ok := matchRowByPrefixLen(ssccPartitions, len(companyPrefix)); !ok {
		return SSCC{}, invalidArgument("company prefix %q has no matching partition row", companyPrefix)
	}
	return SSCC{companyPrefix: companyPrefix, serialRef: serialRef}, nil
}

// ParseSSCCURI parses a pure-identity URI (`urn:epc:id:sscc:...`). Filter
// is reset to its default, since the pure URI carries none.
func ParseSSCCURI(uri string) (SSCC, error) {
	m := ssccPureURIRegexp.FindStringSubmatch(uri)
	if m == nil {
		return SSCC{}, invalidArgument("%q is not a valid SSCC pure-identity URI", uri)
	}
	return NewSSCC(m[1], m[2])
}

// ParseSSCCTagURI parses a tag URI (`urn:epc:tag:sscc-96:...`). The serial
// reference is numeric, so unlike the other families there is no percent-
// decoding step for it.
func ParseSSCCTagURI(tagURI string) (SSCC, error) {
	m := ssccTagURIRegexp.FindStringSubmatch(tagURI)
	if m == nil {
		return SSCC{}, invalidArgument("%q is not a valid SSCC tag URI", tagURI)
	}
	s, err := NewSSCC(m[2], m[3])
	if err != nil {
		return SSCC{}, err
	}
	filter, err := parseFilterDigit(m[1])
	if err != nil {
		return SSCC{}, err
	}
	if err := s.SetFilterValue(filter); err != nil {
		return SSCC{}, err
	}
	return s, nil
}

// ParseSSCCBinary decodes the 96-bit hex binary representation.
func ParseSSCCBinary(hex string) (SSCC, error) {
	bin, err := decodeBits(hex)
	if err != nil {
		return SSCC{}, err
	}
	header, filter, partition, body, err := splitHeader(bin)
	if err != nil {
		return SSCC{}, err
	}
	if header != sscc96Header {
		return SSCC{}, unknownHeader(header)
	}
	if len(bin) != sscc96Bits {
		return SSCC{}, wrongLength(len(bin), sscc96Bits)
	}

	row := rowByPartition(ssccPartitions, partition)
	cpVal := bitcodec.UnpackUint(body[:row.companyPrefixBits])
	rest := body[row.companyPrefixBits:]
	serialRefVal := bitcodec.UnpackUint(rest[:row.secondaryBits])

	s := SSCC{
		companyPrefix: numericField(cpVal, row.companyPrefixDigits),
		serialRef:     numericField(serialRefVal, row.secondaryDigits),
	}
	if err := s.SetFilterValue(filter); err != nil {
		return SSCC{}, err
	}
	return s, nil
}

// URI renders the pure-identity URI form.
func (s SSCC) URI() string {
	return "urn:epc:id:sscc:" + s.companyPrefix + "." + s.serialRef
}

// TagURI renders the tag URI form, including filter.
func (s SSCC) TagURI() string {
	return "urn:epc:tag:sscc-96:" + strconv.FormatUint(uint64(s.filter), 10) + "." + s.companyPrefix + "." + s.serialRef
}

// Binary renders the 96-bit binary (hex) form.
func (s SSCC) Binary() (string, error) {
	row, ok := matchRowByPrefixLen(ssccPartitions, len(s.companyPrefix))
	if !ok {
		return "", invalidArgument("company prefix %q has no matching partition row", s.companyPrefix)
	}
	cp, err := parseUint64("company prefix", s.companyPrefix)
	if err != nil {
		return "", err
	}
	if !bitcodec.IsPaddedNumeric(s.serialRef) {
		return "", invalidSerial("serial reference %q must be numeric", s.serialRef)
	}
	serialRefVal, err := strconv.ParseUint(s.serialRef, 10, 64)
	if err != nil {
		return "", invalidSerial("serial reference %q out of range", s.serialRef)
	}
	tail := bitcodec.PackUint(serialRefVal, row.secondaryBits)
	return packEnvelope(sscc96Header, s.filter, row.partition, cp, row.companyPrefixBits, tail, sscc96Bits)
}

// CompanyPrefix returns the padded company-prefix digits.
func (s SSCC) CompanyPrefix() string { return s.companyPrefix }

// SerialReference returns the padded serial-reference digits.
func (s SSCC) SerialReference() string { return s.serialRef }
