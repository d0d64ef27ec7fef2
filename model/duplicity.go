package model

import "github.com/ParapluOU/whale-schema/ast"

// DuplicityKind enumerates how many times an element may occur, mirroring
// original_source/format/src/model/duplicity.rs's `Duplicity` enum.
type DuplicityKind uint8

const (
	// DuplicitySingle constrains occurrence to exactly [1,1]; it is the
	// zero value, matching the absence of any modifier token in source.
	DuplicitySingle DuplicityKind = iota
	// DuplicityOptional constrains occurrence to [0,1].
	DuplicityOptional
	// DuplicityAny constrains occurrence to [0,∞).
	DuplicityAny
	// DuplicityMin1 constrains occurrence to [1,∞).
	DuplicityMin1
	// DuplicityCustom constrains occurrence to an explicit [Lo,Hi] range.
	DuplicityCustom
)

// Duplicity is the compiled occurrence constraint for an element.
type Duplicity struct {
	Kind DuplicityKind
	// Lo and Hi are only meaningful when Kind == DuplicityCustom. Hi of -1
	// means unbounded (`[3..]`).
	Lo, Hi int
}

// DuplicityFromAST converts a parsed occurrence modifier into its compiled
// form, per original_source/format/src/model/duplicity.rs's
// `From<&ast::ModDuplicity>`.
func DuplicityFromAST(d ast.Duplicity) Duplicity {
	switch d.Kind {
	case ast.DuplicityOptional:
		return Duplicity{Kind: DuplicityOptional}
	case ast.DuplicityAny:
		return Duplicity{Kind: DuplicityAny}
	case ast.DuplicityMin1:
		return Duplicity{Kind: DuplicityMin1}
	case ast.DuplicityRange:
		return Duplicity{Kind: DuplicityCustom, Lo: d.RangeLo, Hi: d.RangeHi}
	default:
		return Duplicity{Kind: DuplicitySingle}
	}
}

// MinOccurs returns the XSD-facing minOccurs value.
func (d Duplicity) MinOccurs() int {
	switch d.Kind {
	case DuplicityOptional, DuplicityAny:
		return 0
	case DuplicityCustom:
		return d.Lo
	default:
		return 1
	}
}

// MaxOccurs returns the XSD-facing maxOccurs value and whether it is
// bounded. An unbounded result should be rendered as `unbounded` in XSD.
func (d Duplicity) MaxOccurs() (value int, bounded bool) {
	switch d.Kind {
	case DuplicityOptional, DuplicitySingle:
		return 1, true
	case DuplicityAny, DuplicityMin1:
		return 0, false
	case DuplicityCustom:
		if d.Hi < 0 {
			return 0, false
		}
		return d.Hi, true
	default:
		return 1, true
	}
}

func (h *hasher) WriteDuplicity(d Duplicity) *hasher {
	h.WriteUint64(uint64(d.Kind))
	h.WriteUint64(uint64(d.Lo))
	h.WriteUint64(uint64(d.Hi))
	return h
}
