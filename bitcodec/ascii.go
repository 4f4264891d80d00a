package bitcodec

import "strings"

// gs1Escaper and gs1Unescaper implement the closed, ordered URI
// percent-encoding of the seven characters that can't appear raw in an EPC
// URI. strings.Replacer performs a single, non-overlapping left-to-right
// pass over the input, so there's no risk of re-escaping a literal '%' that
// was just produced by escaping another character, or of unescaping "%25"
// into '%' before the other three-character sequences have had a chance to
// match.
var (
	gs1Escaper = strings.NewReplacer(
		`%`, "%25",
		`"`, "%22",
		`&`, "%26",
		`/`, "%2F",
		`<`, "%3C",
		`>`, "%3E",
		`?`, "%3F",
	)

	gs1Unescaper = strings.NewReplacer(
		"%22", `"`,
		"%26", `&`,
		"%2F", `/`,
		"%3C", `<`,
		"%3E", `>`,
		"%3F", `?`,
		"%25", `%`,
	)

	// serialCharSet holds the GS1 Application Identifier 21 alphabet used by
	// EPC serial-like fields: 0x21-0x22, 0x25-0x3F, 0x41-0x5A, 0x5F, 0x61-0x7A.
	// Note '#' (0x23) is part of the published AI-21 table but is excluded
	// here to match observed encoder/decoder behavior; see DESIGN.md.
	serialCharSet = [128]bool{
		'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
		'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
		':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
		'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true, '8': true, '9': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true, 'I': true,
		'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
		'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true, 'i': true,
		'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
		's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
	}
)

// EscapeGS1 replaces the seven reserved characters with their URI percent
// escapes, leaving every other byte (including the rest of the serial
// alphabet) untouched.
func EscapeGS1(s string) string {
	return gs1Escaper.Replace(s)
}

// UnescapeGS1 is the inverse of EscapeGS1. Unknown "%XX" sequences are left
// unchanged, matching the pure-identity URI's percent-decoding contract.
func UnescapeGS1(s string) string {
	return gs1Unescaper.Replace(s)
}

// IsPaddedNumeric reports whether s consists entirely of decimal digits.
// An empty string is vacuously true; non-emptiness is enforced elsewhere by
// the digit-count invariants and the URI regexes.
func IsPaddedNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsSerialChar reports whether s consists entirely of characters in the GS1
// AI-21 serial alphabet.
func IsSerialChar(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || !serialCharSet[c] {
			return false
		}
	}
	return true
}
