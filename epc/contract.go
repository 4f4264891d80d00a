package epc

import (
	"strconv"

	"github.com/gs1works/tagcode/bitcodec"
)

// Identifier is the shared capability every family exposes: render as
// pure-identity URI, tag URI, or binary (hex). It lets a caller that only
// needs to emit a representation treat any of the five families
// uniformly, without a virtual-dispatch class hierarchy behind it — just a
// closed set of five structs that happen to satisfy the same interface.
type Identifier interface {
	URI() string
	TagURI() string
	Binary() (string, error)
}

// Scheme selects between a family's two binary encodings (e.g. SGTIN96 vs
// SGTIN198). SSCC has only one member and so exposes no setter for it.
type Scheme int

const (
	SGTIN96 Scheme = iota
	SGTIN198
)

const (
	SSCC96 Scheme = iota
)

const (
	SGLN96 Scheme = iota
	SGLN195
)

const (
	GRAI96 Scheme = iota
	GRAI170
)

const (
	GIAI96 Scheme = iota
	GIAI202
)

// packEnvelope assembles the common header+filter+partition+companyPrefix
// prefix shared by every family's binary encoding, appends tail (the
// family-specific remainder already rendered as a bit string), zero-pads
// on the right out to totalBits, and renders the result as uppercase hex.
func packEnvelope(header string, filter FilterValue, partition int, companyPrefix uint64, cpBits int, tail string, totalBits int) (string, error) {
	bits := header +
		bitcodec.PackUint(uint64(filter), FilterValueBits) +
		bitcodec.PackUint(uint64(partition), PartitionBits) +
		bitcodec.PackUint(companyPrefix, cpBits) +
		tail
	if len(bits) > totalBits {
		return "", invalidSerial("encoded length %d exceeds scheme total %d bits", len(bits), totalBits)
	}
	bits = bitcodec.RPad(bits, totalBits, '0')
	hex, err := bitcodec.BinToHex(bits)
	if err != nil {
		return "", wrapInvalidArgument(err, "rendering binary output")
	}
	return hex, nil
}

// decodeBits converts hex to its binary-string expansion.
func decodeBits(hex string) (string, error) {
	bin, err := bitcodec.HexToBin(hex)
	if err != nil {
		return "", wrapInvalidArgument(err, "decoding binary input")
	}
	return bin, nil
}

// splitHeader splits a decoded bit string into its 8-bit header, 3-bit
// filter, 3-bit partition, and remaining body (company prefix onward). It
// does not validate the total length: the header alone determines which
// scheme (and therefore which total bit length) applies, so each family's
// ParseXBinary checks length only after dispatching on header.
func splitHeader(bin string) (header string, filter FilterValue, partition int, body string, err error) {
	if len(bin) < 8+FilterValueBits+PartitionBits {
		err = invalidArgument("binary input too short")
		return
	}
	header = bin[:8]
	filter = FilterValue(bitcodec.UnpackUint(bin[8 : 8+FilterValueBits]))
	partition = int(bitcodec.UnpackUint(bin[8+FilterValueBits : 8+FilterValueBits+PartitionBits]))
	body = bin[8+FilterValueBits+PartitionBits:]
	return
}

func wrongLength(got, want int) error {
	return invalidArgument("binary length %d does not match expected %d bits for this scheme", got, want)
}

// numericField renders v as exactly digits decimal characters, left-padded
// with '0'. It's the inverse of parsing a padded-numeric element-string
// field into an integer for bit packing.
func numericField(v uint64, digits int) string {
	return bitcodec.LPad(strconv.FormatUint(v, 10), digits, '0')
}

// parseUint64 parses a padded-numeric field into a uint64, reporting
// InvalidArgument (not InvalidSerial) on a non-digit or empty string. Each
// family's Binary() calls it on fields that construction already required
// to be all digits, so a failure here is structural, not a scheme-fit one.
func parseUint64(name, s string) (uint64, error) {
	if s == "" || !bitcodec.IsPaddedNumeric(s) {
		return 0, invalidArgument("%s %q is not all decimal digits", name, s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, wrapInvalidArgument(err, "%s %q out of range", name, s)
	}
	return v, nil
}

// requireDigits validates that field consists only of decimal digits.
func requireDigits(name, field string) error {
	if !bitcodec.IsPaddedNumeric(field) {
		return invalidArgument("%s %q must be all decimal digits", name, field)
	}
	return nil
}

// requireSerialAlphabet validates that field consists only of characters
// in the GS1 AI-21 serial alphabet.
func requireSerialAlphabet(name, field string) error {
	if !bitcodec.IsSerialChar(field) {
		return invalidArgument("%s %q contains a character outside the serial alphabet", name, field)
	}
	return nil
}

// requireLengthSum enforces the per-family invariant that two
// padded-numeric fields' lengths sum to total.
func requireLengthSum(total int, a, b string) error {
	if len(a)+len(b) != total {
		return invalidArgument("field lengths %d+%d must sum to %d", len(a), len(b), total)
	}
	return nil
}

func unknownHeader(header string) error {
	return invalidArgument("unrecognized binary header %s", header)
}

func badFilterDigit(s string) error {
	return invalidArgument("filter value %q is not a single decimal digit", s)
}

// parseFilterDigit parses a single-character decimal filter field from a
// tag URI, as required by the tag-URI grammar's `(\d)` capture.
func parseFilterDigit(s string) (FilterValue, error) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, badFilterDigit(s)
	}
	return FilterValue(s[0] - '0'), nil
}
