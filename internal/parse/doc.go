// Package parse implements a hand-written recursive-descent parser that
// turns an [github.com/ParapluOU/whale-schema/internal/lex] token stream
// into an [github.com/ParapluOU/whale-schema/ast.Model].
//
// As with internal/lex, this is a deliberate departure from both halves of
// the prior art: the original implementation generates its parser from a
// pest grammar, and the teacher generates its parser from ANTLR. Neither
// toolchain runs under Go, so the recursive-descent structure here follows
// the teacher's non-generated parts instead — a span-tracking cursor over
// the token stream, diagnostics collected through [diag.Collector] rather
// than returned as Go errors, and error recovery that skips to a
// resynchronization point (the next `#`, `@`, or top-level identifier)
// instead of aborting the whole file on the first mistake.
package parse
