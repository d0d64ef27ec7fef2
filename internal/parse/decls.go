package parse

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
	"github.com/ParapluOU/whale-schema/location"
)

// startsBlock reports whether the current token can begin a Block, whether
// directly (`{`) or via one of its prefix modifiers (`abstract`, the mixed
// marker, `?`, `!`).
func (p *parser) startsBlock() bool {
	return p.at(lex.LBrace) || p.at(lex.KeywordAbstract) || p.at(lex.Question) || p.at(lex.Bang) || p.atMixedMarker()
}

// parseAttributesPrefix consumes zero or more `@name[?][: typing]`
// declarations written immediately before a type or element name. Attributes
// precede the declaration they belong to rather than living inside its
// block body.
func (p *parser) parseAttributesPrefix() []*ast.AttributeDecl {
	var attrs []*ast.AttributeDecl
	for p.at(lex.At) {
		attrs = append(attrs, p.parseAttributeDecl(""))
	}
	return attrs
}

// parseAttributeDecl parses a single `@name[?][: <typing>]` declaration.
func (p *parser) parseAttributeDecl(doc string) *ast.AttributeDecl {
	start := p.cur().Span
	p.advance() // '@'
	nameTok, ok := p.expect(lex.IdentLower, "attribute name")
	if !ok {
		return &ast.AttributeDecl{Span: start}
	}
	decl := &ast.AttributeDecl{
		Name:          nameTok.Text,
		NameSpan:      nameTok.Span,
		Documentation: doc,
	}
	if p.at(lex.Question) {
		p.advance()
		decl.Optional = true
	}
	if p.at(lex.Colon) {
		p.advance()
		decl.Typing = p.parseTyping()
	}
	decl.Span = start
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		decl.Span = merged
	}
	return decl
}

// parseTypeDecl parses a top-level type definition:
//
//	Name[(vars)][< Base]: <typing>                    (inline)
//	Name[(vars)][< Base]: [modifiers]{ <items> }      (block)
//
// attrs carries any `@name` declarations written immediately before the
// type name; they are only meaningful when the definition turns out to be
// block-form (an inline definition has nothing to attach them to).
func (p *parser) parseTypeDecl(doc string, attrs []*ast.AttributeDecl) *ast.TypeDecl {
	start := p.cur().Span
	if len(attrs) > 0 {
		start = attrs[0].Span
	}

	nameTok, ok := p.expect(lex.IdentUpper, "type name")
	if !ok {
		return nil
	}
	decl := &ast.TypeDecl{
		Name:          nameTok.Text,
		NameSpan:      nameTok.Span,
		Documentation: doc,
	}

	if p.at(lex.LParen) {
		p.advance()
		for !p.at(lex.RParen) && !p.atEOF() {
			varTok, ok := p.expect(lex.IdentLower, "generic parameter name")
			if !ok {
				break
			}
			decl.Vars = append(decl.Vars, &ast.TypeVarRef{Name: varTok.Text, Span: varTok.Span})
			if p.at(lex.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lex.RParen, "')' closing generic parameter list")
	}

	if p.at(lex.Less) {
		lessStart := p.advance().Span // '<'
		base := p.parseTypeNameRef()
		span := lessStart
		if merged, ok := location.MergeSafe(lessStart, p.lastConsumedSpan()); ok {
			span = merged
		}
		decl.Inheritance = &ast.Inheritance{Base: base, Span: span}
	}

	if _, ok := p.expect(lex.Colon, "':' before type definition body"); !ok {
		decl.Span = p.closingSpan(start)
		return decl
	}

	if p.startsBlock() {
		decl.Block = p.parseBlock()
		decl.Attributes = attrs
	} else {
		decl.Inline = p.parseTyping()
		if len(attrs) > 0 {
			p.errorf(diag.E_SYNTAX, "inline type definitions cannot declare attributes")
		}
	}

	decl.Span = p.closingSpan(start)
	return decl
}

// parseElementDecl parses a single element declaration:
//
//	#name[modifier]: <typing>
//	#name[modifier] <block>
//
// Including the sugar form where an inline anonymous block follows the
// colon directly (`#name*: { ... }`), which is structurally identical to
// the bare block form. attrs carries any `@name` declarations written
// immediately before the `#` sigil.
func (p *parser) parseElementDecl(doc string, attrs []*ast.AttributeDecl) *ast.ElementDecl {
	start := p.cur().Span
	if len(attrs) > 0 {
		start = attrs[0].Span
	}
	p.advance() // '#'

	nameTok, ok := p.expect(lex.IdentLower, "element name")
	if !ok {
		return nil
	}

	decl := &ast.ElementDecl{
		Name:          nameTok.Text,
		NameSpan:      nameTok.Span,
		Attributes:    attrs,
		Documentation: doc,
	}
	decl.Duplicity = p.parseDuplicity()

	switch {
	case p.at(lex.Colon):
		p.advance()
		if p.startsBlock() {
			decl.Block = p.parseBlock()
		} else {
			decl.Typing = p.parseTyping()
		}
	case p.startsBlock():
		decl.Block = p.parseBlock()
	}

	decl.Span = p.closingSpan(start)
	return decl
}

// closingSpan merges start with the most recently consumed token's span,
// falling back to start alone when nothing could be merged.
func (p *parser) closingSpan(start location.Span) location.Span {
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		return merged
	}
	return start
}
