package ast

import "github.com/ParapluOU/whale-schema/location"

// AttributeDecl is a single `@name[?][: <typing>]` attribute declaration,
// either written directly inside a Block or as a member of a named
// Attributes group referenced via splat.
//
// Optional carries the attribute's own `?` suffix. Attributes have no
// duplicity modifiers beyond optional/required; XML attributes cannot
// repeat.
//
// Typing is nil when the attribute omits its typing clause entirely, which
// means the default string type (XSD xs:string, unrestricted).
type AttributeDecl struct {
	Name          string
	NameSpan      location.Span
	Optional      bool
	Typing        *Typing
	Documentation string
	Span          location.Span
}

// AttrGroupDecl is a named, reusable set of attribute declarations that can
// be pulled into a Block via a splat reference (`...@GroupName`).
type AttrGroupDecl struct {
	Name          string
	NameSpan      location.Span
	Attributes    []*AttributeDecl
	Documentation string
	Span          location.Span
}
