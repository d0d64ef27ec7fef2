// Package trace is the nil-safe slog wrapper compile.Compile and both
// exporters use to emit developer-facing operation logs, as distinct from
// the user-facing diag.Result every one of them also returns.
//
// A *slog.Logger reaches this package only through an explicit option
// (compile.WithLogger, xsd.WithLogger, fonto.WithLogger) — never a
// package-level global — and every call here is nil-safe, so a caller
// that never passes a logger pays only a nil check, not a disabled-level
// branch through slog itself.
//
// # Why this exists alongside diag
//
// diag.Result carries problems with the .whas document being compiled —
// an undefined type name, a duplicate element — things the person who
// wrote the schema needs to see. trace logs carry problems with, or
// insight into, the compiler's own run: how many models it merged, how
// many types and elements it resolved, how long an export took. Nothing
// here is meant to reach the end user of cmd/whas; it exists for whoever
// is debugging the compiler itself.
//
// # Op: measuring one call end to end
//
// Begin/Op.End bracket a single compiler or exporter entry point with
// automatic duration measurement:
//
//	op := trace.Begin(ctx, cfg.logger, "whas.compile.run", slog.Int("models", len(models)))
//	defer func() { op.End(resultErr) }()
//
// Begin returns nil whenever logging is disabled (nil logger, or level
// above Debug); every Op method tolerates a nil receiver, so call sites
// never need a parallel "is tracing on" branch. End logs "op",
// "elapsed_ms", "duration", and "error" (if non-nil), plus whatever extra
// attributes the call site passes — compile.Compile's compileAllTypeDefinitions
// and compileAllElements phases each open their own Op this way, nested
// inside the top-level whas.compile.run span.
//
// # Operation names in this codebase
//
// Names follow whas.<package>.<phase>. The ones this module actually
// emits today: whas.compile.run, whas.compile.types, whas.compile.elements,
// whas.export.xsd, whas.export.fonto. They are logging output, not part of
// this module's API — nothing should match on them.
//
// # Plain logging
//
// Debug/Info/Warn/Error take pre-built slog.Attr values for the common
// case; DebugLazy/InfoLazy/WarnLazy/ErrorLazy instead take a
// func() []slog.Attr, for attributes expensive enough to build that doing
// so should be skipped entirely when the level is disabled.
package trace
