package epc

import (
	"regexp"
	"strconv"

	"github.com/gs1works/tagcode/bitcodec"
)

// The company-prefix/asset-type bit sum (44) is constant across every
// partition row, same as SGTIN's company-prefix/item-reference sum.
const (
	grai96Header  = "00110011"
	grai96Bits    = 96
	grai170Header = "00110111"
	grai170Bits   = 172

	graiTotalDigits  = 12
	grai96SerialBits = 38
	// grai170SerialBits is 170 - 8 - 3 - 3 - 44.
	grai170SerialBits  = 112
	grai170SerialChars = grai170SerialBits / 7

	// MaxGRAI96Serial is the largest numeric serial a 38-bit field holds.
	MaxGRAI96Serial = (1 << grai96SerialBits) - 1
)

var (
	graiPureURIRegexp = regexp.MustCompile(`^urn:epc:id:grai:(\d+)\.(\d+)\.(.+)$`)
	graiTagURIRegexp  = regexp.MustCompile(`^urn:epc:tag:grai-(96|170):(\d)\.(\d+)\.(\d+)\.(.+)$`)
)

// GRAI is the Global Returnable Asset Identifier: a company prefix, an
// asset type, and a serial that is numeric under the 96-bit scheme or
// alphanumeric under the 170-bit scheme.
type GRAI struct {
	filterCarrier
	scheme        Scheme
	companyPrefix string
	assetType     string
	serial        string
}

// NewGRAI constructs a GRAI from its element-string fields. companyPrefix
// and assetType must be all-decimal and sum to 12 digits; companyPrefix's
// length must match one of the seven partition-table rows.
func NewGRAI(companyPrefix, assetType, serial string) (GRAI, error) {
	if err := requireDigits("company prefix", companyPrefix); err != nil {
		return GRAI{}, err
	}
	if err := requireDigits("asset type", assetType); err != nil {
		return GRAI{}, err
	}
	if err := requireLengthSum(graiTotalDigits, companyPrefix, assetType); err != nil {
		return GRAI{}, err
	}
	if _, ok := matchRowByPrefixLen(graiPartitions, len(companyPrefix)); !ok {
		return GRAI{}, invalidArgument("company prefix %q has no matching partition row", companyPrefix)
	}
	if err := requireSerialAlphabet("serial", serial); err != nil {
		return GRAI{}, err
	}
	return GRAI{companyPrefix: companyPrefix, assetType: assetType, serial: serial, scheme: GRAI96}, nil
}

// ParseGRAIURI parses a pure-identity URI (`urn:epc:id:grai:...`). Filter
// and scheme are reset to their defaults.
func ParseGRAIURI(uri string) (GRAI, error) {
	m := graiPureURIRegexp.FindStringSubmatch(uri)
	if m == nil {
		return GRAI{}, invalidArgument("%q is not a valid GRAI pure-identity URI", uri)
	}
	return NewGRAI(m[1], m[2], bitcodec.UnescapeGS1(m[3]))
}

// ParseGRAITagURI parses a tag URI (`urn:epc:tag:grai-(96|170):...`).
func ParseGRAITagURI(tagURI string) (GRAI, error) {
	m := graiTagURIRegexp.FindStringSubmatch(tagURI)
	if m == nil {
		return GRAI{}, invalidArgument("%q is not a valid GRAI tag URI", tagURI)
	}
	g, err := NewGRAI(m[3], m[4], bitcodec.UnescapeGS1(m[5]))
	if err != nil {
		return GRAI{}, err
	}
	filter, err := parseFilterDigit(m[2])
	if err != nil {
		return GRAI{}, err
	}
	if err := g.SetFilterValue(filter); err != nil {
		return GRAI{}, err
	}
	scheme := GRAI96
	if m[1] == "170" {
		scheme = GRAI170
	}
	if err := g.SetScheme(scheme); err != nil {
		return GRAI{}, err
	}
	return g, nil
}

// ParseGRAIBinary decodes a hex binary representation of either scheme.
func ParseGRAIBinary(hex string) (GRAI, error) {
	bin, err := decodeBits(hex)
	if err != nil {
		return GRAI{}, err
	}
	header, filter, partition, body, err := splitHeader(bin)
	if err != nil {
		return GRAI{}, err
	}

	var scheme Scheme
	var total int
	switch header {
	case grai96Header:
		scheme, total = GRAI96, grai96Bits
	case grai170Header:
		scheme, total = GRAI170, grai170Bits
	default:
		return GRAI{}, unknownHeader(header)
	}
	if len(bin) != total {
		return GRAI{}, wrongLength(len(bin), total)
	}
	row := rowByPartition(graiPartitions, partition)

	cpVal := bitcodec.UnpackUint(body[:row.companyPrefixBits])
	rest := body[row.companyPrefixBits:]
	assetTypeVal := bitcodec.UnpackUint(rest[:row.secondaryBits])
	tail := rest[row.secondaryBits:]

	var serial string
	switch scheme {
	case GRAI96:
		serial = strconv.FormatUint(bitcodec.UnpackUint(tail[:grai96SerialBits]), 10)
	case GRAI170:
		serial = bitcodec.UnpackString(tail[:grai170SerialBits])
	}

	g := GRAI{
		scheme:        scheme,
		companyPrefix: numericField(cpVal, row.companyPrefixDigits),
		assetType:     numericField(assetTypeVal, row.secondaryDigits),
		serial:        serial,
	}
	if err := g.SetFilterValue(filter); err != nil {
		return GRAI{}, err
	}
	return g, nil
}

// URI renders the pure-identity URI form.
func (g GRAI) URI() string {
	return "urn:epc:id:grai:" + g.companyPrefix + "." + g.assetType + "." + bitcodec.EscapeGS1(g.serial)
}

// TagURI renders the tag URI form, including scheme size and filter.
func (g GRAI) TagURI() string {
	size := "96"
	if g.scheme == GRAI170 {
		size = "170"
	}
	return "urn:epc:tag:grai-" + size + ":" + strconv.FormatUint(uint64(g.filter), 10) +
		"." + g.companyPrefix + "." + g.assetType + "." + bitcodec.EscapeGS1(g.serial)
}

// Binary renders the binary (hex) form under the currently selected scheme.
func (g GRAI) Binary() (string, error) {
	row, ok := matchRowByPrefixLen(graiPartitions, len(g.companyPrefix))
	if !ok {
		return "", invalidArgument("company prefix %q has no matching partition row", g.companyPrefix)
	}
	cp, err := parseUint64("company prefix", g.companyPrefix)
	if err != nil {
		return "", err
	}
	assetTypeVal, err := parseUint64("asset type", g.assetType)
	if err != nil {
		return "", err
	}

	switch g.scheme {
	case GRAI96:
		if !bitcodec.IsPaddedNumeric(g.serial) {
			return "", invalidSerial("GRAI-96 serial %q must be numeric", g.serial)
		}
		serialVal, err := strconv.ParseUint(g.serial, 10, 64)
		if err != nil || serialVal > MaxGRAI96Serial {
			return "", invalidSerial("GRAI-96 serial %q exceeds maximum %d", g.serial, uint64(MaxGRAI96Serial))
		}
		tail := bitcodec.PackUint(assetTypeVal, row.secondaryBits) + bitcodec.PackUint(serialVal, grai96SerialBits)
		return packEnvelope(grai96Header, g.filter, row.partition, cp, row.companyPrefixBits, tail, grai96Bits)
	case GRAI170:
		if !bitcodec.IsSerialChar(g.serial) || len(g.serial) > grai170SerialChars {
			return "", invalidSerial("GRAI-170 serial %q is not representable in %d characters", g.serial, grai170SerialChars)
		}
		tail := bitcodec.PackUint(assetTypeVal, row.secondaryBits) + bitcodec.PackString(g.serial, grai170SerialBits)
		return packEnvelope(grai170Header, g.filter, row.partition, cp, row.companyPrefixBits, tail, grai170Bits)
	default:
		return "", invalidArgument("unknown GRAI scheme %d", g.scheme)
	}
}

// CompanyPrefix returns the padded company-prefix digits.
func (g GRAI) CompanyPrefix() string { return g.companyPrefix }

// AssetType returns the padded asset-type digits.
func (g GRAI) AssetType() string { return g.assetType }

// Serial returns the serial field, unescaped.
func (g GRAI) Serial() string { return g.serial }

// Scheme returns the currently selected scheme.
func (g GRAI) Scheme() Scheme { return g.scheme }

// SetScheme selects GRAI96 or GRAI170. Content compatibility (e.g. a
// non-numeric serial under GRAI96) is not checked here; it surfaces as
// InvalidSerial from Binary().
func (g *GRAI) SetScheme(scheme Scheme) error {
	if scheme != GRAI96 && scheme != GRAI170 {
		return invalidArgument("invalid GRAI scheme %d", scheme)
	}
	g.scheme = scheme
	return nil
}
