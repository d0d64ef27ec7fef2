package ast

import "github.com/ParapluOU/whale-schema/location"

// Inheritance is the `< Base` clause on a block type definition. WHAS only
// allows a type to inherit from another block type; inheriting from a
// simple (inline) type is a compile-time error (diag.E_INHERITS_FROM_SIMPLE),
// not a parse-time one, so the ast layer keeps whatever name was written.
type Inheritance struct {
	Base *TypeNameRef
	Span location.Span
}

// TypeDecl is a top-level `Name[(vars)][< Base]: <typing>` (inline) or
// `Name[(vars)][< Base]: [modifiers]{ <items> }` (block) type definition.
//
// Inline and Block are mutually exclusive; exactly one is set depending on
// which form the parser matched. Inheritance is only ever set on a Block
// definition.
//
// Vars holds the declaration-site generic parameter list `(vars)` when
// present. WHAS generics are unimplemented; a non-empty Vars exists only so
// the compiler can report diag.E_UNIMPLEMENTED_FEATURE at the declaration
// rather than the parser refusing the syntax outright.
type TypeDecl struct {
	Name string
	// Attributes is the list of `@name[?][: typing]` declarations written
	// immediately before the type name. Only ever populated on a Block
	// definition; an inline definition has no attributes to attach them to.
	Attributes    []*AttributeDecl
	NameSpan      location.Span
	Vars          []*TypeVarRef
	Inline        *Typing
	Inheritance   *Inheritance
	Block         *Block
	Documentation string
	Span          location.Span
}

// IsBlock reports whether this is a block-form type definition.
func (d *TypeDecl) IsBlock() bool {
	return d != nil && d.Block != nil
}

// SimpleTypeName returns the aliased type name for an inline definition
// that is itself a direct reference to another named type (`A := B`), or
// "" if the definition is not a simple alias. Used by the compiler to walk
// alias chains without re-parsing the Typing.
func (d *TypeDecl) SimpleTypeName() string {
	if d == nil || d.Inline == nil || d.Inline.Compound == nil {
		return ""
	}
	item := d.Inline.Compound.First()
	if item == nil || item.TypeName == nil {
		return ""
	}
	return item.TypeName.Name
}
