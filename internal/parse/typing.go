package parse

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
	"github.com/ParapluOU/whale-schema/location"
)

// parseTyping parses the right-hand side of a `:` clause:
//
//	Str                              (single type reference)
//	Str + /pattern/ + "literal"      (compound, '+' separated — unimplemented beyond one item)
//	Str | Int | /pattern/            (union, '|' separated)
//	lowercaseVar                     (generic type-variable reference — unimplemented)
func (p *parser) parseTyping() *ast.Typing {
	start := p.cur().Span

	if p.at(lex.IdentLower) {
		tok := p.advance()
		return &ast.Typing{Var: &ast.TypeVarRef{Name: tok.Text, Span: tok.Span}, Span: tok.Span}
	}

	first := p.parseTypingAtom()
	if first == nil {
		return &ast.Typing{Span: start}
	}

	if p.at(lex.Pipe) {
		return p.parseUnionTyping(start, first)
	}

	items := []*ast.TypingItem{first}
	for p.at(lex.Plus) {
		p.advance()
		if item := p.parseTypingAtom(); item != nil {
			items = append(items, item)
		}
	}

	span := start
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		span = merged
	}
	return &ast.Typing{Compound: &ast.SimpleCompound{Items: items, Span: span}, Span: span}
}

func (p *parser) parseUnionTyping(start location.Span, first *ast.TypingItem) *ast.Typing {
	members := []*ast.UnionMember{typingItemToUnionMember(first)}
	for p.at(lex.Pipe) {
		p.advance()
		if item := p.parseTypingAtom(); item != nil {
			members = append(members, typingItemToUnionMember(item))
		}
	}
	span := start
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		span = merged
	}
	return &ast.Typing{Union: &ast.UnionDecl{Members: members, Span: span}, Span: span}
}

func typingItemToUnionMember(item *ast.TypingItem) *ast.UnionMember {
	return &ast.UnionMember{
		TypeName: item.TypeName,
		Regex:    item.Regex,
		String:   item.String,
		Number:   item.Number,
		Span:     item.Span,
	}
}

// parseTypingAtom parses a single non-union, non-compound typing element:
// a type-name reference (with optional generic args and/or facets), a
// regex literal, a string literal, or a number literal.
func (p *parser) parseTypingAtom() *ast.TypingItem {
	switch {
	case p.at(lex.IdentUpper):
		ref := p.parseTypeNameRef()
		return &ast.TypingItem{TypeName: ref, Span: ref.Span}
	case p.at(lex.Regex):
		tok := p.advance()
		return &ast.TypingItem{Regex: &ast.RegexLiteral{Pattern: tok.Text, Span: tok.Span}, Span: tok.Span}
	case p.at(lex.String):
		tok := p.advance()
		return &ast.TypingItem{String: &ast.StringLiteral{Value: tok.Text, Span: tok.Span}, Span: tok.Span}
	case p.at(lex.Number):
		tok := p.advance()
		return &ast.TypingItem{Number: &ast.NumberLiteral{Text: tok.Text, Span: tok.Span}, Span: tok.Span}
	default:
		p.errorf(diag.E_SYNTAX, "expected a type name, regex, string, or number")
		return nil
	}
}

// parseTypeNameRef parses `Name`, `Name(Arg, ...)` (generic instantiation,
// unimplemented), and `Name<facet: value, ...>` (inline facet list). Both
// suffixes may follow the bare name; generic args, if present, always come
// first.
func (p *parser) parseTypeNameRef() *ast.TypeNameRef {
	nameTok, _ := p.expect(lex.IdentUpper, "type name")
	ref := &ast.TypeNameRef{Name: nameTok.Text, Span: nameTok.Span}

	if p.at(lex.LParen) {
		p.advance()
		for !p.at(lex.RParen) && !p.atEOF() {
			ref.GenericArgs = append(ref.GenericArgs, p.parseTypeNameRef())
			if p.at(lex.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lex.RParen, "')' closing generic argument list")
	}

	if p.at(lex.Less) {
		ref.Facets = p.parseFacets()
	}

	if merged, ok := location.MergeSafe(ref.Span, p.lastConsumedSpan()); ok {
		ref.Span = merged
	}
	return ref
}

// parseFacets parses an angle-bracket facet list: `<5..20>`,
// `<minLength: 3>`, `<pattern: /.../ , minLength: 3>`.
func (p *parser) parseFacets() *ast.FacetsDecl {
	start := p.advance().Span // '<'
	decl := &ast.FacetsDecl{Span: start}

	for !p.at(lex.Greater) && !p.atEOF() {
		item := p.parseFacetItem()
		if item == nil {
			break
		}
		decl.Items = append(decl.Items, item)
		if p.at(lex.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lex.Greater, "'>' closing facet list")

	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		decl.Span = merged
	}
	return decl
}

// parseFacetItem parses one facet entry: shorthand range syntax
// (`5..20`, `..10`, `5..`) or a named facet (`minLength: 3`).
func (p *parser) parseFacetItem() *ast.FacetItem {
	start := p.cur().Span

	// Shorthand always begins with a number or '..'; named facets begin
	// with a lowercase identifier followed by ':'.
	if p.at(lex.Number) || p.at(lex.DotDot) {
		return p.parseFacetShorthand(start)
	}

	if p.at(lex.IdentLower) {
		nameTok := p.advance()
		if _, ok := p.expect(lex.Colon, "':' after facet name"); !ok {
			return nil
		}
		val := p.parseFacetValue()
		span := start
		if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
			span = merged
		}
		return &ast.FacetItem{Name: nameTok.Text, NameSpan: nameTok.Span, Value: val, Span: span}
	}

	p.errorf(diag.E_SYNTAX, "expected a facet range or named facet")
	return nil
}

// parseFacetShorthand consumes the raw shorthand text verbatim; splitting
// it into bounds happens during facet lowering in compile, where the
// meaning of an absent bound depends on the restricted type.
func (p *parser) parseFacetShorthand(start location.Span) *ast.FacetItem {
	var text string
	if p.at(lex.Number) {
		text += p.advance().Text
	}
	if p.at(lex.DotDot) {
		p.advance()
		text += ".."
	}
	if p.at(lex.Number) {
		text += p.advance().Text
	}
	span := start
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		span = merged
	}
	return &ast.FacetItem{ShorthandText: text, Span: span}
}

func (p *parser) parseFacetValue() *ast.FacetValue {
	start := p.cur().Span
	switch {
	case p.at(lex.Regex):
		tok := p.advance()
		return &ast.FacetValue{Kind: ast.FacetValueRegex, Regex: &ast.RegexLiteral{Pattern: tok.Text, Span: tok.Span}, Span: tok.Span}
	case p.at(lex.String):
		tok := p.advance()
		return &ast.FacetValue{Kind: ast.FacetValueString, String: &ast.StringLiteral{Value: tok.Text, Span: tok.Span}, Span: tok.Span}
	case p.at(lex.Number):
		tok := p.advance()
		return &ast.FacetValue{Kind: ast.FacetValueNumber, Number: &ast.NumberLiteral{Text: tok.Text, Span: tok.Span}, Span: tok.Span}
	default:
		p.errorf(diag.E_SYNTAX, "expected a facet value")
		return &ast.FacetValue{Span: start}
	}
}
