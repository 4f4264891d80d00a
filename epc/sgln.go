package epc

import (
	"regexp"
	"strconv"

	"github.com/gs1works/tagcode/bitcodec"
)

// The company-prefix/location-reference bit sum (41) is constant across
// every partition row, so the extension field's width is fixed per scheme
// regardless of which row a given identifier uses.
const (
	sgln96Header  = "00110010"
	sgln96Bits    = 96
	sgln195Header = "00111001"
	sgln195Bits   = 196

	sglnTotalDigits = 12
	// sgln96ExtensionBits is 96 - 8 - 3 - 3 - 41.
	sgln96ExtensionBits = 41
	// sgln195ExtensionBits is 195 - 8 - 3 - 3 - 41 (the scheme's 195-bit
	// payload, before the 1-bit pad to 196 is applied).
	sgln195ExtensionBits  = 140
	sgln195ExtensionChars = sgln195ExtensionBits / 7

	// MaxSGLN96Extension is the largest numeric extension a 41-bit field holds.
	MaxSGLN96Extension = (1 << sgln96ExtensionBits) - 1
)

var (
	sglnPureURIRegexp = regexp.MustCompile(`^urn:epc:id:sgln:(\d+)\.(\d+)\.(.+)$`)
	sglnTagURIRegexp  = regexp.MustCompile(`^urn:epc:tag:sgln-(96|195):(\d)\.(\d+)\.(\d+)\.(.+)$`)
)

// SGLN is the Global Location Number identifier: a company prefix, a
// location reference, and an extension that is numeric under the 96-bit
// scheme or alphanumeric under the 195-bit scheme.
type SGLN struct {
	filterCarrier
	scheme        Scheme
	companyPrefix string
	locationRef   string
	extension     string
}

// NewSGLN constructs an SGLN from its element-string fields. companyPrefix
// and locationRef must be all-decimal and sum to 12 digits; companyPrefix's
// length must match one of the seven partition-table rows.
func NewSGLN(companyPrefix, locationRef, extension string) (SGLN, error) {
	if err := requireDigits("company prefix", companyPrefix); err != nil {
		return SGLN{}, err
	}
	if err := requireDigits("location reference", locationRef); err != nil {
		return SGLN{}, err
	}
	if err := requireLengthSum(sglnTotalDigits, companyPrefix, locationRef); err != nil {
		return SGLN{}, err
	}
	if _, ok := matchRowByPrefixLen(sglnPartitions, len(companyPrefix)); !ok {
		return SGLN{}, invalidArgument("company prefix %q has no matching partition row", companyPrefix)
	}
	if err := requireSerialAlphabet("extension", extension); err != nil {
		return SGLN{}, err
	}
	return SGLN{companyPrefix: companyPrefix, locationRef: locationRef, extension: extension, scheme: SGLN96}, nil
}

// ParseSGLNURI parses a pure-identity URI (`urn:epc:id:sgln:...`). Filter
// and scheme are reset to their defaults.
func ParseSGLNURI(uri string) (SGLN, error) {
	m := sglnPureURIRegexp.FindStringSubmatch(uri)
	if m == nil {
		return SGLN{}, invalidArgument("%q is not a valid SGLN pure-identity URI", uri)
	}
	return NewSGLN(m[1], m[2], bitcodec.UnescapeGS1(m[3]))
}

// ParseSGLNTagURI parses a tag URI (`urn:epc:tag:sgln-(96|195):...`).
func ParseSGLNTagURI(tagURI string) (SGLN, error) {
	m := sglnTagURIRegexp.FindStringSubmatch(tagURI)
	if m == nil {
		return SGLN{}, invalidArgument("%q is not a valid SGLN tag URI", tagURI)
	}
	s, err := NewSGLN(m[3], m[4], bitcodec.UnescapeGS1(m[5]))
	if err != nil {
		return SGLN{}, err
	}
	filter, err := parseFilterDigit(m[2])
	if err != nil {
		return SGLN{}, err
	}
	if err := s.SetFilterValue(filter); err != nil {
		return SGLN{}, err
	}
	scheme := SGLN96
	if m[1] == "195" {
		scheme = SGLN195
	}
	if err := s.SetScheme(scheme); err != nil {
		return SGLN{}, err
	}
	return s, nil
}

// ParseSGLNBinary decodes a hex binary representation of either scheme.
func ParseSGLNBinary(hex string) (SGLN, error) {
	bin, err := decodeBits(hex)
	if err != nil {
		return SGLN{}, err
	}
	header, filter, partition, body, err := splitHeader(bin)
	if err != nil {
		return SGLN{}, err
	}

	var scheme Scheme
	var total int
	switch header {
	case sgln96Header:
		scheme, total = SGLN96, sgln96Bits
	case sgln195Header:
		scheme, total = SGLN195, sgln195Bits
	default:
		return SGLN{}, unknownHeader(header)
	}
	if len(bin) != total {
		return SGLN{}, wrongLength(len(bin), total)
	}
	row := rowByPartition(sglnPartitions, partition)

	cpVal := bitcodec.UnpackUint(body[:row.companyPrefixBits])
	rest := body[row.companyPrefixBits:]
	locRefVal := bitcodec.UnpackUint(rest[:row.secondaryBits])
	tail := rest[row.secondaryBits:]

	var extension string
	switch scheme {
	case SGLN96:
		extension = strconv.FormatUint(bitcodec.UnpackUint(tail[:sgln96ExtensionBits]), 10)
	case SGLN195:
		extension = bitcodec.UnpackString(tail[:sgln195ExtensionBits])
	}

	s := SGLN{
		scheme:        scheme,
		companyPrefix: numericField(cpVal, row.companyPrefixDigits),
		locationRef:   numericField(locRefVal, row.secondaryDigits),
		extension:     extension,
	}
	if err := s.SetFilterValue(filter); err != nil {
		return SGLN{}, err
	}
	return s, nil
}

// URI renders the pure-identity URI form.
func (s SGLN) URI() string {
	return "urn:epc:id:sgln:" + s.companyPrefix + "." + s.locationRef + "." + bitcodec.EscapeGS1(s.extension)
}

// TagURI renders the tag URI form, including scheme size and filter.
func (s SGLN) TagURI() string {
	size := "96"
	if s.scheme == SGLN195 {
		size = "195"
	}
	return "urn:epc:tag:sgln-" + size + ":" + strconv.FormatUint(uint64(s.filter), 10) +
		"." + s.companyPrefix + "." + s.locationRef + "." + bitcodec.EscapeGS1(s.extension)
}

// Binary renders the binary (hex) form under the currently selected scheme.
func (s SGLN) Binary() (string, error) {
	row, ok := matchRowByPrefixLen(sglnPartitions, len(s.companyPrefix))
	if !ok {
		return "", invalidArgument("company prefix %q has no matching partition row", s.companyPrefix)
	}
	cp, err := parseUint64("company prefix", s.companyPrefix)
	if err != nil {
		return "", err
	}
	locRefVal, err := parseUint64("location reference", s.locationRef)
	if err != nil {
		return "", err
	}

	switch s.scheme {
	case SGLN96:
		if !bitcodec.IsPaddedNumeric(s.extension) {
			return "", invalidSerial("SGLN-96 extension %q must be numeric", s.extension)
		}
		extVal, err := strconv.ParseUint(s.extension, 10, 64)
		if err != nil || extVal > MaxSGLN96Extension {
			return "", invalidSerial("SGLN-96 extension %q exceeds maximum %d", s.extension, uint64(MaxSGLN96Extension))
		}
		tail := bitcodec.PackUint(locRefVal, row.secondaryBits) + bitcodec.PackUint(extVal, sgln96ExtensionBits)
		return packEnvelope(sgln96Header, s.filter, row.partition, cp, row.companyPrefixBits, tail, sgln96Bits)
	case SGLN195:
		if !bitcodec.IsSerialChar(s.extension) || len(s.extension) > sgln195ExtensionChars {
			return "", invalidSerial("SGLN-195 extension %q is not representable in %d characters", s.extension, sgln195ExtensionChars)
		}
		tail := bitcodec.PackUint(locRefVal, row.secondaryBits) + bitcodec.PackString(s.extension, sgln195ExtensionBits)
		return packEnvelope(sgln195Header, s.filter, row.partition, cp, row.companyPrefixBits, tail, sgln195Bits)
	default:
		return "", invalidArgument("unknown SGLN scheme %d", s.scheme)
	}
}

// CompanyPrefix returns the padded company-prefix digits.
func (s SGLN) CompanyPrefix() string { return s.companyPrefix }

// LocationReference returns the padded location-reference digits.
func (s SGLN) LocationReference() string { return s.locationRef }

// Extension returns the extension field, unescaped.
func (s SGLN) Extension() string { return s.extension }

// Scheme returns the currently selected scheme.
func (s SGLN) Scheme() Scheme { return s.scheme }

// SetScheme selects SGLN96 or SGLN195. Content compatibility (e.g. a
// non-numeric extension under SGLN96) is not checked here; it surfaces as
// InvalidSerial from Binary().
func (s *SGLN) SetScheme(scheme Scheme) error {
	if scheme != SGLN96 && scheme != SGLN195 {
		return invalidArgument("invalid SGLN scheme %d", scheme)
	}
	s.scheme = scheme
	return nil
}
