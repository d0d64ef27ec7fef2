package ast

import "github.com/ParapluOU/whale-schema/location"

// ElementDecl is a single element declaration, whether it appears as a
// top-level named element, inline inside another element's Block, or as the
// element form of a type definition's body.
//
// Content is mutually exclusive: exactly one of Typing (a simple-content
// element, `name: Str`) or Block (a complex-content element,
// `name { ... }`) is set. An element with neither set has empty content.
type ElementDecl struct {
	Name          string
	NameSpan      location.Span
	Attributes    []*AttributeDecl
	Duplicity     Duplicity
	Typing        *Typing
	Block         *Block
	Documentation string
	Span          location.Span
}

// IsComplex reports whether the element carries a content-model Block
// rather than a simple Typing.
func (e *ElementDecl) IsComplex() bool {
	return e != nil && e.Block != nil
}
