package ast

import "github.com/ParapluOU/whale-schema/location"

// DuplicityKind enumerates how many times an element may occur within its
// enclosing block. The absence of any modifier token means DuplicitySingle.
type DuplicityKind uint8

const (
	// DuplicitySingle means exactly one occurrence (no modifier written).
	DuplicitySingle DuplicityKind = iota
	// DuplicityOptional is the `?` modifier: zero or one occurrence.
	DuplicityOptional
	// DuplicityAny is the `*` modifier: zero or more occurrences.
	DuplicityAny
	// DuplicityMin1 is the `+` modifier: one or more occurrences.
	DuplicityMin1
	// DuplicityRange is the `[lo..hi]` modifier with explicit bounds.
	DuplicityRange
)

// String returns the kind's name.
func (k DuplicityKind) String() string {
	switch k {
	case DuplicitySingle:
		return "single"
	case DuplicityOptional:
		return "optional"
	case DuplicityAny:
		return "any"
	case DuplicityMin1:
		return "min1"
	case DuplicityRange:
		return "range"
	default:
		return "unknown"
	}
}

// Duplicity captures an element's occurrence modifier. RangeHi of -1 means
// an open-ended upper bound (`[3..]`).
type Duplicity struct {
	Kind    DuplicityKind
	RangeLo int
	RangeHi int
	Span    location.Span
}

// IsUnbounded reports whether the range has no upper bound.
func (d Duplicity) IsUnbounded() bool {
	return d.Kind == DuplicityRange && d.RangeHi < 0
}
