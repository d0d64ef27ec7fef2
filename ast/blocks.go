package ast

import "github.com/ParapluOU/whale-schema/location"

// Occurrence selects the XSD content-model group kind a Block compiles to:
// xs:sequence (ordered, all required unless individually modified),
// xs:choice (exactly one alternative), or xs:all (each member at most once,
// any order).
type Occurrence uint8

const (
	OccurrenceSequence Occurrence = iota
	OccurrenceChoice
	OccurrenceAll
)

// String returns the occurrence's name.
func (o Occurrence) String() string {
	switch o {
	case OccurrenceSequence:
		return "sequence"
	case OccurrenceChoice:
		return "choice"
	case OccurrenceAll:
		return "all"
	default:
		return "unknown"
	}
}

// BlockMods captures the modifier tokens that may prefix or suffix a block:
// `abstract` marks the enclosing type as not directly instantiable, `mixed`
// allows interleaved character data alongside child elements, and the
// occurrence keyword selects sequence/choice/all grouping semantics.
type BlockMods struct {
	Abstract   bool
	Mixed      bool
	Occurrence Occurrence
}

// BlockItemKind discriminates the alternatives a BlockItem may hold.
type BlockItemKind uint8

const (
	BlockItemElement BlockItemKind = iota
	BlockItemSplatBlock
	BlockItemSplatType
	BlockItemSplatGenericVar // unimplemented: generic block parameters
	BlockItemComment
)

// BlockItem is one entry inside a Block's body: a child element
// declaration, a splat that inlines another block's or type's content
// model, or a standalone comment kept for round-trip fidelity.
//
// SplatGenericVar records a `...T` splat of a generic type parameter; WHAS
// generics are unimplemented, so the compiler reports
// diag.E_UNIMPLEMENTED_FEATURE wherever this variant appears rather than
// having the parser refuse it outright.
type BlockItem struct {
	Kind BlockItemKind

	Element     *ElementDecl // BlockItemElement
	SplatTarget string       // BlockItemSplatBlock / BlockItemSplatType / BlockItemSplatGenericVar: referenced name
	Comment     *Comment     // BlockItemComment

	Span location.Span
}

// Block is the `{ ... }` content model attached to an element or a block
// type definition.
type Block struct {
	Mods  BlockMods
	Items []*BlockItem
	Span  location.Span
}
