package ast

import "github.com/ParapluOU/whale-schema/location"

// FacetValueKind distinguishes the three literal forms a named facet's
// value may take.
type FacetValueKind uint8

const (
	FacetValueString FacetValueKind = iota
	FacetValueNumber
	FacetValueRegex
)

// FacetValue is the right-hand side of a named facet (`pattern: /foo/`,
// `minLength: 3`). Numbers are kept as raw source text, never parsed to
// float64, so exact decimal representation survives into XSD facet
// attributes unchanged.
type FacetValue struct {
	Kind   FacetValueKind
	String *StringLiteral
	Number *NumberLiteral
	Regex  *RegexLiteral
	Span   location.Span
}

// FacetItem is one entry of a facet list: either shorthand range syntax
// (`5..20`, `..10`, `3..`) or a named facet (`minLength: 3`).
//
// Shorthand is kept as the raw matched text in ShorthandText; range parsing
// (splitting on "..", defaulting an absent bound) happens during facet
// lowering in compile, not here, since the meaning of a shorthand range
// depends on the type it restricts (string length vs numeric bounds vs
// occurrence count).
type FacetItem struct {
	ShorthandText string // non-empty for shorthand form, "" for named form
	Name          string // non-empty for named form
	NameSpan      location.Span
	Value         *FacetValue // set for named form
	Span          location.Span
}

// IsShorthand reports whether this item used the bare-range syntax rather
// than `name: value`.
func (f *FacetItem) IsShorthand() bool {
	return f != nil && f.ShorthandText != ""
}

// FacetsDecl is the angle-bracketed `<...>` restriction list that may follow
// a type name, e.g. `String<minLength: 1, maxLength: 80>`.
type FacetsDecl struct {
	Items []*FacetItem
	Span  location.Span
}
