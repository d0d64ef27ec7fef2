// Package lex tokenizes WHAS source text.
//
// The grammar is hand-rolled rather than generated: the original
// implementation generates its tokenizer from a pest grammar, and the
// teacher's YAMMM tokenizer is ANTLR-generated, but neither toolchain
// produces Go. This package instead follows the teacher's downstream
// contract (token kinds covering the same lexical surface, positions
// reported via [location.Span], errors reported via [diag.Issue] rather
// than panics) while scanning by hand.
//
// Tokens carry enough information for [github.com/ParapluOU/whale-schema/internal/parse]
// to build an [github.com/ParapluOU/whale-schema/ast.Model] without re-scanning
// raw text: string and number literals are pre-validated, comment
// delimiters are stripped, and identifier tokens are pre-classified by
// case (see the surface grammar's `#name`/`@name`/`TypeName` distinction).
package lex
