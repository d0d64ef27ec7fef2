package ast

import "github.com/ParapluOU/whale-schema/location"

// Namespace is the optional `namespace "uri"` declaration at the top of a
// source file. The compiler and exporters do not read it: the XSD
// targetNamespace attribute is set only through xsd.WithTargetNamespace.
type Namespace struct {
	URI  string
	Span location.Span
}

// Model is the root of a parsed WHAS source file: one file, one Model.
// Imports, type definitions, attribute groups, and top-level elements are
// kept in the order they were declared, since that order determines
// default compile-time name resolution precedence when names collide
// across files pulled in without an explicit selector.
type Model struct {
	Source        location.SourceID
	Documentation string
	Namespace     *Namespace
	Imports       []*ImportDecl
	Types         []*TypeDecl
	AttrGroups    []*AttrGroupDecl
	Elements      []*ElementDecl
	Span          location.Span
}

// TypeByName returns the first top-level type definition with the given
// name, or nil if none is declared in this file. Cross-file resolution
// (imports) is the loader/compiler's responsibility, not this lookup.
func (m *Model) TypeByName(name string) *TypeDecl {
	if m == nil {
		return nil
	}
	for _, t := range m.Types {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// ElementByName returns the first top-level element declaration with the
// given name, or nil if none is declared in this file.
func (m *Model) ElementByName(name string) *ElementDecl {
	if m == nil {
		return nil
	}
	for _, e := range m.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// AttrGroupByName returns the first named attribute group with the given
// name, or nil if none is declared in this file.
func (m *Model) AttrGroupByName(name string) *AttrGroupDecl {
	if m == nil {
		return nil
	}
	for _, g := range m.AttrGroups {
		if g.Name == name {
			return g
		}
	}
	return nil
}
