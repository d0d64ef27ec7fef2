package parse

import (
	"strconv"

	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
)

// parseDuplicity consumes an optional element occurrence modifier
// (`?`, `*`, `+`, or `[lo..hi]`). Returns DuplicitySingle with a zero span
// when no modifier token is present, matching the grammar's "absence means
// exactly one" rule. A `?` directly followed by `{` is not consumed: it is
// the block's choice modifier (`#name ?{ ... }`).
func (p *parser) parseDuplicity() ast.Duplicity {
	switch {
	case p.at(lex.Question) && p.peekAt(1).Kind != lex.LBrace:
		tok := p.advance()
		return ast.Duplicity{Kind: ast.DuplicityOptional, Span: tok.Span}
	case p.at(lex.Star):
		tok := p.advance()
		return ast.Duplicity{Kind: ast.DuplicityAny, Span: tok.Span}
	case p.at(lex.Plus):
		tok := p.advance()
		return ast.Duplicity{Kind: ast.DuplicityMin1, Span: tok.Span}
	case p.at(lex.LBracket):
		return p.parseDuplicityRange()
	default:
		return ast.Duplicity{Kind: ast.DuplicitySingle}
	}
}

func (p *parser) parseDuplicityRange() ast.Duplicity {
	start := p.advance().Span // '['
	lo := 0
	if p.at(lex.Number) {
		lo = p.parseUint()
	}
	p.expect(lex.DotDot, "'..' in duplicity range")
	hi := -1
	if p.at(lex.Number) {
		hi = p.parseUint()
	}
	end, _ := p.expect(lex.RBracket, "']' closing duplicity range")
	span := start
	if end.Span.IsZero() {
		span = start
	} else {
		span.End = end.Span.End
	}
	return ast.Duplicity{Kind: ast.DuplicityRange, RangeLo: lo, RangeHi: hi, Span: span}
}

func (p *parser) parseUint() int {
	tok := p.advance()
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n < 0 {
		p.errorf(diag.E_SYNTAX, "expected non-negative integer, found "+tok.Text)
		return 0
	}
	return n
}
