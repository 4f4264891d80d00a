package epc

// FilterValueBits is the bit width of the filter field in every family's
// binary encoding.
const FilterValueBits = 3

// PartitionBits is the bit width of the partition field in every family's
// binary encoding.
const PartitionBits = 3

// MaxFilterValue is the largest value a FilterValue (or raw filter field)
// may hold: 2^FilterValueBits - 1.
const MaxFilterValue = 7

// FilterValue is the GS1 Tag Data Standard filter value: a 3-bit field
// describing the logical class of the tagged object. Its meaning is the
// same across every identifier family, unlike the element-string fields,
// so it lives here rather than being duplicated per family.
type FilterValue uint

const (
	FilterOther     FilterValue = 0
	FilterPOS       FilterValue = 1
	FilterFullCase  FilterValue = 2
	filterReserved1 FilterValue = 3
	FilterInnerPack FilterValue = 4
	filterReserved2 FilterValue = 5
	FilterUnitLoad  FilterValue = 6
	FilterUnitPack  FilterValue = 7
)

// IsValid reports whether f is in the representable range [0,7]. It does
// not distinguish the two reserved values, which are representable even
// though the Tag Data Standard hasn't assigned them a meaning.
func (f FilterValue) IsValid() bool {
	return f <= MaxFilterValue
}

func (f FilterValue) String() string {
	switch f {
	case FilterOther:
		return "Other"
	case FilterPOS:
		return "POS Item"
	case FilterFullCase:
		return "Full Case"
	case FilterInnerPack:
		return "Inner Pack"
	case FilterUnitLoad:
		return "Unit Load"
	case FilterUnitPack:
		return "Unit Pack"
	case filterReserved1, filterReserved2:
		return "Reserved"
	default:
		return "Invalid"
	}
}

// filterCarrier is embedded by every identifier family to provide the
// shared filter-value storage and accessors required by the common
// identifier contract.
type filterCarrier struct {
	filter FilterValue
}

// FilterValue returns the carrier's current filter value.
func (f filterCarrier) FilterValue() FilterValue {
	return f.filter
}

// SetFilterValue sets the carrier's filter value, rejecting anything
// outside [0,7].
func (f *filterCarrier) SetFilterValue(v FilterValue) error {
	if !v.IsValid() {
		return invalidArgument("filter value %d exceeds maximum %d", v, MaxFilterValue)
	}
	f.filter = v
	return nil
}
