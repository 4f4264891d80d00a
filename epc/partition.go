package epc

// partitionRow is one row of a family's partition table: it binds a
// partition index to the bit/digit split between the company prefix and
// the adjacent family-specific secondary field (item reference, serial
// reference, location reference, asset type, or asset reference).
type partitionRow struct {
	partition           int
	companyPrefixBits   int
	companyPrefixDigits int
	secondaryBits       int
	secondaryDigits     int
}

// rowByPrefixLen returns the row whose companyPrefixDigits matches digits,
// falling back to row 0 if no row matches. No family calls it: each
// family's constructor and Binary() use matchRowByPrefixLen instead.
func rowByPrefixLen(table []partitionRow, digits int) partitionRow {
	for _, r := range table {
		if r.companyPrefixDigits == digits {
			return r
		}
	}
	return table[0]
}

// matchRowByPrefixLen is the strict counterpart used at construction time
// and again when encoding in Binary(): a company prefix's digit count must
// match one of the seven rows exactly, with no silent fallback, since this
// is a constructor-time invariant rather than a best-effort decode.
func matchRowByPrefixLen(table []partitionRow, digits int) (partitionRow, bool) {
	for _, r := range table {
		if r.companyPrefixDigits == digits {
			return r, true
		}
	}
	return partitionRow{}, false
}

// rowByPartition returns the row whose partition index matches p, falling
// back to row 0 if no row matches. Used when decoding binary, where the
// partition index itself is read directly off the wire.
func rowByPartition(table []partitionRow, p int) partitionRow {
	for _, r := range table {
		if r.partition == p {
			return r
		}
	}
	return table[0]
}

// sgtinPartitions, sscc..., etc. are the seven-row static partition tables
// for each family/scheme, transcribed verbatim from the GS1 Tag Data
// Standard partition tables. GIAI-96 and GIAI-202 are independent tables,
// not a shared one keyed by scheme: see DESIGN.md for why.
var sgtinPartitions = []partitionRow{
	{0, 40, 12, 4, 1},
	{1, 37, 11, 7, 2},
	{2, 34, 10, 10, 3},
	{3, 30, 9, 14, 4},
	{4, 27, 8, 17, 5},
	{5, 24, 7, 20, 6},
	{6, 20, 6, 24, 7},
}

var ssccPartitions = []partitionRow{
	{0, 40, 12, 18, 5},
	{1, 37, 11, 21, 6},
	{2, 34, 10, 24, 7},
	{3, 30, 9, 28, 8},
	{4, 27, 8, 31, 9},
	{5, 24, 7, 34, 10},
	{6, 20, 6, 38, 11},
}

var sglnPartitions = []partitionRow{
	{0, 40, 12, 1, 0},
	{1, 37, 11, 4, 1},
	{2, 34, 10, 7, 2},
	{3, 30, 9, 11, 3},
	{4, 27, 8, 14, 4},
	{5, 24, 7, 17, 5},
	{6, 20, 6, 21, 6},
}

var graiPartitions = []partitionRow{
	{0, 40, 12, 4, 0},
	{1, 37, 11, 7, 1},
	{2, 34, 10, 10, 2},
	{3, 30, 9, 14, 3},
	{4, 27, 8, 17, 4},
	{5, 24, 7, 20, 5},
	{6, 20, 6, 24, 6},
}

var giai96Partitions = []partitionRow{
	{0, 40, 12, 42, 13},
	{1, 37, 11, 45, 14},
	{2, 34, 10, 48, 15},
	{3, 30, 9, 52, 16},
	{4, 27, 8, 55, 17},
	{5, 24, 7, 58, 18},
	{6, 20, 6, 62, 19},
}

var giai202Partitions = []partitionRow{
	{0, 40, 12, 148, 18},
	{1, 37, 11, 151, 19},
	{2, 34, 10, 154, 20},
	{3, 30, 9, 158, 21},
	{4, 27, 8, 161, 22},
	{5, 24, 7, 164, 23},
	{6, 20, 6, 168, 24},
}
