package ast

import "github.com/ParapluOU/whale-schema/location"

// TypeNameRef names a type, either a built-in primitive (Str, Int, Bool,
// ...) or a user-defined type declared elsewhere in the file or an import.
// Which one it is cannot be decided until name binding; the ast layer only
// records the text and an optional generic-argument list.
//
// WHAS generics are not implemented. GenericArgs is populated when the
// parser encounters `Name(Arg, ...)` instantiation syntax purely so the
// compiler can report diag.E_UNIMPLEMENTED_FEATURE at the reference site;
// no generic substitution ever happens. This is a distinct, parenthesized
// syntax from the angle-bracket facet list that may also follow a type
// name (`Str<minLength: 1>`); the two never collide in valid source.
type TypeNameRef struct {
	Name        string
	GenericArgs []*TypeNameRef
	Facets      *FacetsDecl // nil if no inline facet list follows the name
	Span        location.Span
}

// IsGeneric reports whether this reference carries generic arguments.
func (t *TypeNameRef) IsGeneric() bool {
	return t != nil && len(t.GenericArgs) > 0
}

// UnionMember is one alternative of a UnionDecl.
type UnionMember struct {
	TypeName *TypeNameRef  // set for a named-type alternative
	Regex    *RegexLiteral // set for a `/pattern/` alternative
	String   *StringLiteral
	Number   *NumberLiteral
	Span     location.Span
}

// UnionDecl is an ordered `A | B | C` alternation. Member order is kept
// because it determines XSD union member-type emission order.
type UnionDecl struct {
	Members []*UnionMember
	Span    location.Span
}

// TypingItem is a single non-union typing atom: a type-name reference, a
// regex literal, or a literal value. Facet-compound typings
// (`Str, /pattern/` style multi-item lists) are a declared non-goal; the
// parser still collects every item it sees into SimpleCompound.Items so the
// compiler can reject anything beyond the first with
// diag.E_UNIMPLEMENTED_FEATURE rather than failing at parse time.
type TypingItem struct {
	TypeName *TypeNameRef
	Regex    *RegexLiteral
	String   *StringLiteral
	Number   *NumberLiteral
	Span     location.Span
}

// SimpleCompound holds one or more TypingItem entries in source order.
type SimpleCompound struct {
	Items []*TypingItem
	Span  location.Span
}

// IsCompound reports whether more than one item was parsed; a true result
// marks a construct outside WHAS's supported scope.
func (c *SimpleCompound) IsCompound() bool {
	return c != nil && len(c.Items) > 1
}

// First returns the single typing item, which is always present when the
// compound is well-formed.
func (c *SimpleCompound) First() *TypingItem {
	if c == nil || len(c.Items) == 0 {
		return nil
	}
	return c.Items[0]
}

// Typing is the right-hand side of a `: <typing>` clause, used both by
// element declarations and by inline type definitions. Exactly one field is
// set; which one is determined by what the parser matched.
type Typing struct {
	Union    *UnionDecl
	Compound *SimpleCompound
	Var      *TypeVarRef // set only when an unimplemented type-variable reference was parsed
	Span     location.Span
}

// Kind reports which alternative is populated, mirroring the grammar's
// Typing enum (Union | Typename | Regex | Var) with Typename/Regex folded
// into Compound since both parse through the same single-item path.
func (t *Typing) Kind() string {
	switch {
	case t == nil:
		return ""
	case t.Union != nil:
		return "union"
	case t.Var != nil:
		return "var"
	default:
		return "simple"
	}
}
