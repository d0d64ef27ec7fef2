// Package source stores the raw bytes of every loaded .whas file and
// answers the byte-offset <-> line/column questions diag and the
// exporters need when they render a location.Span as human-readable text.
//
// It is deliberately separate from diag: diag knows how to format an
// excerpt once it has the bytes and a Position, but has no opinion on
// where those bytes come from. source.Registry is the one piece that
// does — populated by internal/loader.Manager as each file is read, and
// handed to diag.NewRenderer via WithSourceProvider so error output can
// show the offending line, not just its line number.
//
// # What gets precomputed on Register
//
//   - Line-start byte offsets, so PositionAt can binary-search the line
//     containing a byte offset in O(log n) instead of scanning from the
//     start of the file.
//   - Rune-start byte offsets, so the same lookup can report a column
//     counted in runes — matching internal/lex's own []rune-backed
//     scanning — rather than in bytes, which would misreport column
//     numbers for any .whas source containing non-ASCII text.
//
// Newlines are recognized as \r\n, bare \n, or bare \r, each counting as
// one line break; columns are 1-based and count from line start.
//
// # Concurrency
//
// Registry is built once per internal/loader.Manager run (Register is
// called as each file streams in, serialized by an RWMutex) and then read
// many times as diag renders issues; Clear resets it for reuse across
// independent Manager runs in the same process, such as between test
// cases.
//
// # Identity
//
// Sources are keyed by location.SourceID. Registering the same SourceID
// twice with identical content is a no-op (the common case: a file
// imported from two different documents); registering it with different
// content returns a *KeyCollisionError, which would indicate a SourceID
// collision bug elsewhere rather than a legitimate reload.
//
// # Interfaces satisfied
//
//   - location.PositionRegistry, via PositionAt
//   - location.RuneOffsetConverter, via RuneToByteOffset
//   - diag.SourceProvider, via Content
//   - diag.LineIndexProvider, via LineStartByte
//
// # Usage
//
//	reg := source.NewRegistry()
//	sourceID := location.MustSourceIDFromPath("root.whas")
//	if err := reg.Register(sourceID, content); err != nil {
//	    // a genuine SourceID collision, not a re-import of the same file
//	}
//
//	renderer := diag.NewRenderer(diag.WithSourceProvider(reg), diag.WithExcerpts(true))
//	fmt.Println(renderer.FormatResult(result))
package source
