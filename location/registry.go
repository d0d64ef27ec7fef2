package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between the exporters (export/xsd,
// export/fonto) and whatever holds the actual source bytes. The lexer and
// parser record spans as byte offsets; PositionRegistry turns those back
// into line/column Positions at the point a diagnostic is rendered, without
// diag or location needing to depend on internal/source directly.
//
// The sole production implementation is internal/source.Registry, populated
// by internal/loader.Manager as it reads each .whas file. Defining the
// interface here, rather than in internal/source, keeps it usable by a mock
// in tests that have no real source content to register.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion, for a
// caller that only has a rune index (a character count into the source,
// as internal/lex's own []rune-backed Lexer tracks internally) and needs
// the byte offset location.Position expects.
//
// The sole implementation is internal/source.Registry.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
