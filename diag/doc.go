// Package diag is the shared diagnostic vocabulary for the whas pipeline.
//
// internal/lex, internal/parse, internal/loader, and compile each collect
// their own issues independently (a lexer error doesn't stop the parser
// from reporting what it can, and a load error in one imported file
// doesn't stop the others from being read) and hand back a Result that
// cmd/whas merges before deciding whether compilation succeeded.
//
// # Why err and Result are both returned
//
// Every stage-level entry point — lex.New(...).Tokenize, parse.Parse,
// loader.Manager.Load, compile.Compile — returns a Result alongside its
// product; loader.Manager.Load additionally returns a Go error (the other
// three have nothing outside the document that can fail, so for them only
// the Result cases below apply):
//
//   - err != nil: something outside the .whas document itself went wrong
//     (a file couldn't be read, a context was cancelled).
//   - err == nil, !result.OK(): the document was read fine but contains a
//     problem — an unknown type name, a duplicate element, a syntax error.
//   - err == nil, result.OK(): success. OK() can still be true with
//     warnings, info, or hints attached; only Fatal and Error severities
//     make OK() false.
//
// cmd/whas treats the two identically at the top: either one aborts the
// run, but only a non-OK Result gets rendered as a compiler message via
// Renderer.FormatIssue — a bare err is a bug report, not a diagnostic.
//
// # Building an Issue
//
// NewIssue is the only constructor; it panics on an invalid severity, a
// zero Code, or an empty message, so a malformed Issue can't reach a
// Collector. WithSpan attaches where in the source the problem is;
// WithRelated attaches a second location (location.MsgPreviousDefinition,
// used by compile's duplicate-name checks, is the one message constant
// this module actually emits):
//
//	diag.NewIssue(diag.Error, diag.E_DUPLICATE_TYPE_NAME, `type "Foo" already defined`).
//	    WithSpan(span).
//	    WithRelated(location.RelatedInfo{Span: firstSpan, Message: location.MsgPreviousDefinition}).
//	    Build()
//
// Code values are a closed set (see code.go) so callers can switch on them
// reliably — compile/compile_test.go's tests assert on Result.String()
// containing a specific code rather than matching message text, which is
// free to change.
//
// # Collector
//
// Collector accumulates Issues during a single pass and exposes O(1)
// severity queries (OK, HasErrors, HasFatal) without re-scanning on every
// call. internal/loader.Manager and compile.compiler each own one
// Collector per run; cmd/whas merges a load Collector's Result and a
// compile Collector's Result together with diag.NewCollectorUnlimited so
// a single failure report can span both stages. NewCollector(limit) bounds
// how many issues are kept: issues past the limit are dropped and only
// counted (LimitReached, DroppedCount), and no issue is added in their
// place; NewCollectorUnlimited keeps every issue.
//
// # Rendering
//
// Renderer turns a Result (or a single Issue) into human-readable text via
// FormatResult/FormatIssue, or into the stable JSON wire shape via
// FormatResultJSON/FormatIssueJSON. cmd/whas only ever needs FormatIssue,
// on the first Error-or-worse issue in a failed Result.
package diag
