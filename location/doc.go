// Package location identifies where in a .whas file something lives.
//
// Every other package in this module — the lexer, the parser, the
// compiler, and both exporters — passes locations around as values from
// this package rather than raw file paths or byte offsets, so a
// diagnostic raised deep inside compile.Compile can still point back at
// the exact line and column of the source text that caused it.
//
// # CanonicalPath and SourceID
//
// A .whas file's identity on disk is a CanonicalPath: absolute, cleaned of
// "." and "..", NFC-normalized, forward-slash-separated regardless of
// platform, and symlink-resolved where possible. internal/loader.Manager
// constructs one for the entry file and for every file reached through an
// import chain, so two different relative import paths that land on the
// same file resolve to one CanonicalPath and are loaded only once.
//
// SourceID wraps either a CanonicalPath (a real file, via SourceIDFromPath
// / SourceIDFromAbsolutePath) or a synthetic string (used by
// Manager.LoadString and by this module's own tests, via NewSourceID —
// e.g. "test://compile/doc0.whas"). SourceID is comparable and is the map
// key internal/loader.Manager uses to memoize loaded units and detect
// import cycles.
//
// # Position and Span
//
// Position is a 1-based line, a 1-based column counted in runes (not
// bytes, since .whas string literals may contain non-ASCII text), and a
// 0-based byte offset. Span is the half-open range [Start, End) the lexer
// attaches to every token and the parser threads onto every ast node, so
// compile.Compile's diagnostics and both exporters can report exactly
// where a declaration came from.
//
// # RelatedInfo
//
// RelatedInfo attaches a second location to a diag.Issue. The compiler's
// errorfRelated uses it to point at a type, attribute-group, or element's
// first declaration when reporting E_DUPLICATE_TYPE_NAME or
// E_DUPLICATE_ELEMENT at its second one.
//
// # PositionRegistry
//
// PositionRegistry converts a byte offset back to a Position without this
// package depending on whatever holds the source bytes. internal/source
// is the only implementation, populated by internal/loader.Manager as it
// reads each file.
//
// # Dependencies
//
// location imports only the standard library and
// golang.org/x/text/unicode/norm (for NFC path normalization). Nothing in
// this module imports a package that location itself depends on, which is
// what lets every other package — diag included — import location
// without risking a cycle.
package location
