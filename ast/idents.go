package ast

import "github.com/ParapluOU/whale-schema/location"

// IdentKind distinguishes which namespace an Ident was parsed from. WHAS
// uses capitalization to separate the three identifier namespaces: type
// names start uppercase, element and attribute names start lowercase, and
// the parser records which production matched so later compiler stages
// don't need to re-inspect the text.
type IdentKind uint8

const (
	// IdentElement is a lowercase identifier naming an element.
	IdentElement IdentKind = iota
	// IdentAttr is a lowercase identifier naming an attribute (appears
	// without its leading '@' sigil here; the sigil is grammar, not name).
	IdentAttr
	// IdentTypeName is an uppercase identifier naming a type.
	IdentTypeName
)

// String returns the kind's name.
func (k IdentKind) String() string {
	switch k {
	case IdentElement:
		return "element"
	case IdentAttr:
		return "attr"
	case IdentTypeName:
		return "type"
	default:
		return "unknown"
	}
}

// Ident is a single identifier token tagged with the namespace it was
// parsed in.
type Ident struct {
	Kind IdentKind
	Name string
	Span location.Span
}
