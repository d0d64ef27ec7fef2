package ast

import "github.com/ParapluOU/whale-schema/location"

// RegexLiteral is a `/pattern/` token with delimiters stripped. The pattern
// text is kept verbatim; it is not compiled until facet lowering in
// [github.com/ParapluOU/whale-schema/compile].
type RegexLiteral struct {
	Pattern string
	Span    location.Span
}

// StringLiteral is a quoted string token with delimiters stripped and escape
// sequences already resolved by the lexer.
type StringLiteral struct {
	Value string
	Span  location.Span
}

// NumberLiteral is a numeric token kept as its original source text rather
// than a parsed float64, so that decimal precision used in facet bounds
// (e.g. minInclusive="3.140") survives unchanged into XSD export.
type NumberLiteral struct {
	Text string
	Span location.Span
}

// TypeVarRef marks the appearance of a generic type-variable reference
// (e.g. `T` inside `TypeDef<T>`). WHAS generics are not implemented; the
// parser records the reference so the compiler can report
// diag.E_UNIMPLEMENTED_FEATURE at the point of use instead of failing
// earlier as a bare syntax error.
type TypeVarRef struct {
	Name string
	Span location.Span
}
