package epc

import (
	"regexp"
	"strconv"

	"github.com/gs1works/tagcode/bitcodec"
)

// SGTIN total digit counts and bit widths, transcribed from the GS1 Tag
// Data Standard. The company-prefix/item-reference bit sum (44) and the
// numeric-serial bit width (38, giving a max value of 2^38-1) are constant
// across every partition row: only how those 44 bits split between the two
// fields varies.
const (
	sgtin96Header  = "00110000"
	sgtin96Bits    = 96
	sgtin198Header = "00110110"
	sgtin198Bits   = 208

	sgtinTotalDigits  = 13
	sgtin96SerialBits = 38
	// sgtin198SerialBits is 198 - 8 (header) - 3 (filter) - 3 (partition) - 44 (company prefix + item ref).
	sgtin198SerialBits  = 140
	sgtin198SerialChars = sgtin198SerialBits / 7

	// MaxSGTIN96Serial is the largest numeric serial a 38-bit field holds.
	MaxSGTIN96Serial = (1 << sgtin96SerialBits) - 1
)

var (
	sgtinPureURIRegexp = regexp.MustCompile(`^urn:epc:id:sgtin:(\d+)\.(\d+)\.(.+)$`)
	sgtinTagURIRegexp  = regexp.MustCompile(`^urn:epc:tag:sgtin-(96|198):(\d)\.(\d+)\.(\d+)\.(.+)$`)
)

// SGTIN is the Serialized Global Trade Item Number identifier: a company
// prefix, a combined indicator digit + item reference, and a serial that
// is numeric under the 96-bit scheme or alphanumeric under the 198-bit
// scheme.
type SGTIN struct {
	filterCarrier
	scheme        Scheme
	companyPrefix string
	itemRef       string
	serial        string
}

// NewSGTIN constructs an SGTIN from its element-string fields. companyPrefix
// and itemRef must be all-decimal and sum to 13 digits; companyPrefix's
// length must match one of the seven partition-table rows. serial must lie
// in the GS1 AI-21 alphabet — range/scheme-compatibility checks on serial
// are deferred to Binary(), per the open question on scheme mismatch.
func NewSGTIN(companyPrefix, itemRef, serial string) (SGTIN, error) {
	if err := requireDigits("company prefix", companyPrefix); err != nil {
		return SGTIN{}, err
	}
	if err := requireDigits("item reference", itemRef); err != nil {
		return SGTIN{}, err
	}
	if err := requireLengthSum(sgtinTotalDigits, companyPrefix, itemRef); err != nil {
		return SGTIN{}, err
	}
	if _, ok := matchRowByPrefixLen(sgtinPartitions, len(companyPrefix)); !ok {
		return SGTIN{}, invalidArgument("company prefix %q has no matching partition row", companyPrefix)
	}
	if err := requireSerialAlphabet("serial", serial); err != nil {
		return SGTIN{}, err
	}
	return SGTIN{companyPrefix: companyPrefix, itemRef: itemRef, serial: serial, scheme: SGTIN96}, nil
}

// ParseSGTINURI parses a pure-identity URI (`urn:epc:id:sgtin:...`). Filter
// and scheme are reset to their defaults, since the pure URI carries
// neither.
func ParseSGTINURI(uri string) (SGTIN, error) {
	m := sgtinPureURIRegexp.FindStringSubmatch(uri)
	if m == nil {
		return SGTIN{}, invalidArgument("%q is not a valid SGTIN pure-identity URI", uri)
	}
	return NewSGTIN(m[1], m[2], bitcodec.UnescapeGS1(m[3]))
}

// ParseSGTINTagURI parses a tag URI (`urn:epc:tag:sgtin-(96|198):...`),
// extracting and applying scheme and filter as well as the element fields.
func ParseSGTINTagURI(tagURI string) (SGTIN, error) {
	m := sgtinTagURIRegexp.FindStringSubmatch(tagURI)
	if m == nil {
		return SGTIN{}, invalidArgument("%q is not a valid SGTIN tag URI", tagURI)
	}
	s, err := NewSGTIN(m[3], m[4], bitcodec.UnescapeGS1(m[5]))
	if err != nil {
		return SGTIN{}, err
	}
	filter, err := parseFilterDigit(m[2])
	if err != nil {
		return SGTIN{}, err
	}
	if err := s.SetFilterValue(filter); err != nil {
		return SGTIN{}, err
	}
	scheme := SGTIN96
	if m[1] == "198" {
		scheme = SGTIN198
	}
	if err := s.SetScheme(scheme); err != nil {
		return SGTIN{}, err
	}
	return s, nil
}

// ParseSGTINBinary decodes a hex binary representation of either scheme.
func ParseSGTINBinary(hex string) (SGTIN, error) {
	bin, err := decodeBits(hex)
	if err != nil {
		return SGTIN{}, err
	}
	header, filter, partition, body, err := splitHeader(bin)
	if err != nil {
		return SGTIN{}, err
	}

	var scheme Scheme
	var total int
	switch header {
	case sgtin96Header:
		scheme, total = SGTIN96, sgtin96Bits
	case sgtin198Header:
		scheme, total = SGTIN198, sgtin198Bits
	default:
		return SGTIN{}, unknownHeader(header)
	}
	if len(bin) != total {
		return SGTIN{}, wrongLength(len(bin), total)
	}
	row := rowByPartition(sgtinPartitions, partition)

	cpVal := bitcodec.UnpackUint(body[:row.companyPrefixBits])
	rest := body[row.companyPrefixBits:]
	itemRefVal := bitcodec.UnpackUint(rest[:row.secondaryBits])
	tail := rest[row.secondaryBits:]

	var serial string
	switch scheme {
	case SGTIN96:
		serial = strconv.FormatUint(bitcodec.UnpackUint(tail[:sgtin96SerialBits]), 10)
	case SGTIN198:
		serial = bitcodec.UnpackString(tail[:sgtin198SerialBits])
	}

	s := SGTIN{
		scheme:        scheme,
		companyPrefix: numericField(cpVal, row.companyPrefixDigits),
		itemRef:       numericField(itemRefVal, row.secondaryDigits),
		serial:        serial,
	}
	if err := s.SetFilterValue(filter); err != nil {
		return SGTIN{}, err
	}
	return s, nil
}

// URI renders the pure-identity URI form.
func (s SGTIN) URI() string {
	return "urn:epc:id:sgtin:" + s.companyPrefix + "." + s.itemRef + "." + bitcodec.EscapeGS1(s.serial)
}

// TagURI renders the tag URI form, including scheme size and filter.
func (s SGTIN) TagURI() string {
	size := "96"
	if s.scheme == SGTIN198 {
		size = "198"
	}
	return "urn:epc:tag:sgtin-" + size + ":" + strconv.FormatUint(uint64(s.filter), 10) +
		"." + s.companyPrefix + "." + s.itemRef + "." + bitcodec.EscapeGS1(s.serial)
}

// Binary renders the binary (hex) form under the currently selected
// scheme, validating the serial's shape/range against that scheme.
func (s SGTIN) Binary() (string, error) {
	row, ok := matchRowByPrefixLen(sgtinPartitions, len(s.companyPrefix))
	if !ok {
		return "", invalidArgument("company prefix %q has no matching partition row", s.companyPrefix)
	}
	cp, err := parseUint64("company prefix", s.companyPrefix)
	if err != nil {
		return "", err
	}
	itemRefVal, err := parseUint64("item reference", s.itemRef)
	if err != nil {
		return "", err
	}

	switch s.scheme {
	case SGTIN96:
		if !bitcodec.IsPaddedNumeric(s.serial) {
			return "", invalidSerial("SGTIN-96 serial %q must be numeric", s.serial)
		}
		serialVal, err := strconv.ParseUint(s.serial, 10, 64)
		if err != nil || serialVal > MaxSGTIN96Serial {
			return "", invalidSerial("SGTIN-96 serial %q exceeds maximum %d", s.serial, uint64(MaxSGTIN96Serial))
		}
		tail := bitcodec.PackUint(itemRefVal, row.secondaryBits) + bitcodec.PackUint(serialVal, sgtin96SerialBits)
		return packEnvelope(sgtin96Header, s.filter, row.partition, cp, row.companyPrefixBits, tail, sgtin96Bits)
	case SGTIN198:
		if !bitcodec.IsSerialChar(s.serial) || len(s.serial) > sgtin198SerialChars {
			return "", invalidSerial("SGTIN-198 serial %q is not representable in %d characters", s.serial, sgtin198SerialChars)
		}
		tail := bitcodec.PackUint(itemRefVal, row.secondaryBits) + bitcodec.PackString(s.serial, sgtin198SerialBits)
		return packEnvelope(sgtin198Header, s.filter, row.partition, cp, row.companyPrefixBits, tail, sgtin198Bits)
	default:
		return "", invalidArgument("unknown SGTIN scheme %d", s.scheme)
	}
}

// CompanyPrefix returns the padded company-prefix digits.
func (s SGTIN) CompanyPrefix() string { return s.companyPrefix }

// ItemReferenceAndIndicator returns the combined indicator-digit + item
// reference field.
func (s SGTIN) ItemReferenceAndIndicator() string { return s.itemRef }

// Serial returns the serial field, unescaped.
func (s SGTIN) Serial() string { return s.serial }

// Scheme returns the currently selected scheme.
func (s SGTIN) Scheme() Scheme { return s.scheme }

// SetScheme selects SGTIN96 or SGTIN198. As with every family, content
// compatibility (e.g. a non-numeric serial under SGTIN96) is not checked
// here; it surfaces as InvalidSerial from Binary().
func (s *SGTIN) SetScheme(scheme Scheme) error {
	if scheme != SGTIN96 && scheme != SGTIN198 {
		return invalidArgument("invalid SGTIN scheme %d", scheme)
	}
	s.scheme = scheme
	return nil
}
