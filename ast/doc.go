// Package ast defines the syntax tree produced by parsing a WHAS source
// file. It carries only what the grammar produced; semantic resolution
// (name binding, inheritance validation, facet lowering) happens in
// [github.com/ParapluOU/whale-schema/compile].
//
// Every node that can appear directly in diagnostics carries a
// [location.Span]. Declarations that may be preceded by doc comments in
// source (`// line`, fenced markdown blocks, `/* wild */`) carry a
// Documentation field holding the concatenated comment text; nodes that
// the grammar never documents (facet values, union members) do not.
package ast
