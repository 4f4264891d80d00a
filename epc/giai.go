package epc

import (
	"regexp"

	"github.com/gs1works/tagcode/bitcodec"
)

// GIAI, unlike the other four families, has no digit-counted secondary
// field: the asset reference is always a serial-alphabet field, and its
// GIAI-96 and GIAI-202 partition tables are independent (not a shared
// table keyed by scheme) — see DESIGN.md, which also explains why the
// "digits" column carried in the partition tables is descriptive only and
// not used to size the packed asset-reference field: the actual maximum
// character count per partition row is floor(secondaryBits/7).
const (
	giai96Header  = "00110100"
	giai96Bits    = 96
	giai202Header = "00111000"
	giai202Bits   = 208
)

var (
	giaiPureURIRegexp = regexp.MustCompile(`^urn:epc:id:giai:(\d+)\.(.+)$`)
	giaiTagURIRegexp  = regexp.MustCompile(`^urn:epc:tag:giai-(96|202):(\d)\.(\d+)\.(.+)$`)
)

// GIAI is the Global Individual Asset Identifier: a company prefix and an
// asset reference drawn from the serial alphabet.
type GIAI struct {
	filterCarrier
	scheme        Scheme
	companyPrefix string
	assetRef      string
}

// giaiPartitionTable returns the partition table for the given scheme.
func giaiPartitionTable(scheme Scheme) []partitionRow {
	if scheme == GIAI202 {
		return giai202Partitions
	}
	return giai96Partitions
}

// NewGIAI constructs a GIAI from its element-string fields. companyPrefix
// must be all-decimal with a length matching one of the seven partition-
// table rows; assetRef must lie in the GS1 AI-21 alphabet. The scheme
// defaults to GIAI96; since both GIAI96 and GIAI202 partition tables cover
// the same company-prefix digit range (6..12), validating against either
// at construction time is equivalent.
func NewGIAI(companyPrefix, assetRef string) (GIAI, error) {
	if err := requireDigits("company prefix", companyPrefix); err != nil {
		return GIAI{}, err
	}
	if _, ok := matchRowByPrefixLen(giai96Partitions, len(companyPrefix)); !ok {
		return GIAI{}, invalidArgument("company prefix %q has no matching partition row", companyPrefix)
	}
	if err := requireSerialAlphabet("asset reference", assetRef); err != nil {
		return GIAI{}, err
	}
	return GIAI{companyPrefix: companyPrefix, assetRef: assetRef, scheme: GIAI96}, nil
}

// ParseGIAIURI parses a pure-identity URI (`urn:epc:id:giai:...`). Filter
// and scheme are reset to their defaults.
func ParseGIAIURI(uri string) (GIAI, error) {
	m := giaiPureURIRegexp.FindStringSubmatch(uri)
	if m == nil {
		return GIAI{}, invalidArgument("%q is not a valid GIAI pure-identity URI", uri)
	}
	return NewGIAI(m[1], bitcodec.UnescapeGS1(m[2]))
}

// ParseGIAITagURI parses a tag URI (`urn:epc:tag:giai-(96|202):...`).
func ParseGIAITagURI(tagURI string) (GIAI, error) {
	m := giaiTagURIRegexp.FindStringSubmatch(tagURI)
	if m == nil {
		return GIAI{}, invalidArgument("%q is not a valid GIAI tag URI", tagURI)
	}
	g, err := NewGIAI(m[3], bitcodec.UnescapeGS1(m[4]))
	if err != nil {
		return GIAI{}, err
	}
	filter, err := parseFilterDigit(m[2])
	if err != nil {
		return GIAI{}, err
	}
	if err := g.SetFilterValue(filter); err != nil {
		return GIAI{}, err
	}
	scheme := GIAI96
	if m[1] == "202" {
		scheme = GIAI202
	}
	if err := g.SetScheme(scheme); err != nil {
		return GIAI{}, err
	}
	return g, nil
}

// ParseGIAIBinary decodes a hex binary representation of either scheme.
func ParseGIAIBinary(hex string) (GIAI, error) {
	bin, err := decodeBits(hex)
	if err != nil {
		return GIAI{}, err
	}
	header, filter, partition, body, err := splitHeader(bin)
	if err != nil {
		return GIAI{}, err
	}

	var scheme Scheme
	var total int
	switch header {
	case giai96Header:
		scheme, total = GIAI96, giai96Bits
	case giai202Header:
		scheme, total = GIAI202, giai202Bits
	default:
		return GIAI{}, unknownHeader(header)
	}
	if len(bin) != total {
		return GIAI{}, wrongLength(len(bin), total)
	}
	row := rowByPartition(giaiPartitionTable(scheme), partition)

	cpVal := bitcodec.UnpackUint(body[:row.companyPrefixBits])
	tail := body[row.companyPrefixBits:]
	assetRef := bitcodec.UnpackString(tail[:row.secondaryBits])

	g := GIAI{
		scheme:        scheme,
		companyPrefix: numericField(cpVal, row.companyPrefixDigits),
		assetRef:      assetRef,
	}
	if err := g.SetFilterValue(filter); err != nil {
		return GIAI{}, err
	}
	return g, nil
}

// URI renders the pure-identity URI form.
func (g GIAI) URI() string {
	return "urn:epc:id:giai:" + g.companyPrefix + "." + bitcodec.EscapeGS1(g.assetRef)
}

// TagURI renders the tag URI form, including scheme size and filter.
func (g GIAI) TagURI() string {
	size := "96"
	if g.scheme == GIAI202 {
		size = "202"
	}
	return "urn:epc:tag:giai-" + size + ":" + numericField(uint64(g.filter), 1) +
		"." + g.companyPrefix + "." + bitcodec.EscapeGS1(g.assetRef)
}

// Binary renders the binary (hex) form under the currently selected
// scheme, validating that the asset reference fits in that scheme's
// partition-row width for this company prefix.
func (g GIAI) Binary() (string, error) {
	table := giaiPartitionTable(g.scheme)
	row, ok := matchRowByPrefixLen(table, len(g.companyPrefix))
	if !ok {
		return "", invalidArgument("company prefix %q has no matching partition row", g.companyPrefix)
	}
	cp, err := parseUint64("company prefix", g.companyPrefix)
	if err != nil {
		return "", err
	}

	maxChars := row.secondaryBits / 7
	if !bitcodec.IsSerialChar(g.assetRef) || len(g.assetRef) > maxChars {
		return "", invalidSerial("asset reference %q is not representable in %d characters", g.assetRef, maxChars)
	}
	tail := bitcodec.PackString(g.assetRef, row.secondaryBits)

	var header string
	var total int
	switch g.scheme {
	case GIAI96:
		header, total = giai96Header, giai96Bits
	case GIAI202:
		header, total = giai202Header, giai202Bits
	default:
		return "", invalidArgument("unknown GIAI scheme %d", g.scheme)
	}
	return packEnvelope(header, g.filter, row.partition, cp, row.companyPrefixBits, tail, total)
}

// CompanyPrefix returns the padded company-prefix digits.
func (g GIAI) CompanyPrefix() string { return g.companyPrefix }

// AssetReference returns the asset-reference field, unescaped.
func (g GIAI) AssetReference() string { return g.assetRef }

// Scheme returns the currently selected scheme.
func (g GIAI) Scheme() Scheme { return g.scheme }

// SetScheme selects GIAI96 or GIAI202. Content compatibility (e.g. an
// asset reference too long for the selected scheme's partition row) is not
// checked here; it surfaces as InvalidSerial from Binary().
func (g *GIAI) SetScheme(scheme Scheme) error {
	if scheme != GIAI96 && scheme != GIAI202 {
		return invalidArgument("invalid GIAI scheme %d", scheme)
	}
	g.scheme = scheme
	return nil
}
