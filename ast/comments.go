package ast

import "github.com/ParapluOU/whale-schema/location"

// CommentKind distinguishes the three comment syntaxes WHAS source accepts.
type CommentKind uint8

const (
	// CommentLine is a `// text` line comment.
	CommentLine CommentKind = iota
	// CommentMarkdown is a fenced ` ```md ... ``` ` doc-comment block.
	CommentMarkdown
	// CommentWild is a `/* text */` block comment.
	CommentWild
)

// String returns the kind's name.
func (k CommentKind) String() string {
	switch k {
	case CommentLine:
		return "line"
	case CommentMarkdown:
		return "markdown"
	case CommentWild:
		return "wild"
	default:
		return "unknown"
	}
}

// Comment is a single comment token, with delimiters already stripped.
// Consecutive Comment nodes preceding a declaration are joined (separated by
// newlines) into that declaration's Documentation field by the parser; a
// Comment appearing on its own line with no following declaration is kept as
// a standalone node in its enclosing Block or Model.
type Comment struct {
	Kind CommentKind
	Text string
	Span location.Span
}
