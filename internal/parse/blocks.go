package parse

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
	"github.com/ParapluOU/whale-schema/location"
)

// mixedMarker is the bare lowercase identifier used as the block `mixed`
// modifier, written immediately before or after the block's braces
// (`x{ ... }` or `{ ... }x`). It is lexed as an ordinary IdentLower token
// since it is not a reserved word anywhere else in the grammar.
const mixedMarker = "x"

func (p *parser) atMixedMarker() bool {
	return p.at(lex.IdentLower) && p.cur().Text == mixedMarker
}

// parseBlock parses `[mods]{ items }[mods]`, used both by element
// declarations (`#name { ... }`) and by block-form type definitions
// (`Name: [mods]{ ... }`).
func (p *parser) parseBlock() *ast.Block {
	start := p.cur().Span
	mods := p.parseBlockModsPrefix()

	if _, ok := p.expect(lex.LBrace, "'{' opening block"); !ok {
		return &ast.Block{Mods: mods, Span: start}
	}

	var items []*ast.BlockItem
	for !p.at(lex.RBrace) && !p.atEOF() {
		if item := p.parseBlockItem(); item != nil {
			items = append(items, item)
		}
		if p.at(lex.Comma) {
			p.advance()
		}
	}
	p.expect(lex.RBrace, "'}' closing block")

	if p.atMixedMarker() {
		p.advance()
		mods.Mixed = true
	}

	span := start
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		span = merged
	}
	return &ast.Block{Mods: mods, Items: items, Span: span}
}

// parseBlockModsPrefix consumes the modifiers that precede the opening
// brace: `abstract`, then an optional mixed-content marker, then an
// optional occurrence marker (`?` choice / `!` all).
func (p *parser) parseBlockModsPrefix() ast.BlockMods {
	var mods ast.BlockMods
	if p.at(lex.KeywordAbstract) {
		p.advance()
		mods.Abstract = true
	}
	if p.atMixedMarker() {
		p.advance()
		mods.Mixed = true
	}
	switch {
	case p.at(lex.Question):
		p.advance()
		mods.Occurrence = ast.OccurrenceChoice
	case p.at(lex.Bang):
		p.advance()
		mods.Occurrence = ast.OccurrenceAll
	default:
		mods.Occurrence = ast.OccurrenceSequence
	}
	return mods
}

// parseBlockItem parses one entry of a block body: a nested element, a
// splat (`...Type`, `...@AttrGroup`), or a standalone comment.
func (p *parser) parseBlockItem() *ast.BlockItem {
	doc, _ := p.collectComments()
	if p.at(lex.RBrace) || p.atEOF() {
		if doc != "" {
			return &ast.BlockItem{Kind: ast.BlockItemComment, Comment: &ast.Comment{Text: doc}}
		}
		return nil
	}

	start := p.cur().Span
	var attrs []*ast.AttributeDecl
	if p.at(lex.At) {
		attrs = p.parseAttributesPrefix()
		start = attrs[0].Span
	}

	switch {
	case p.at(lex.Hash):
		elem := p.parseElementDecl(doc, attrs)
		if elem == nil {
			return nil
		}
		return &ast.BlockItem{Kind: ast.BlockItemElement, Element: elem, Span: elem.Span}

	case p.at(lex.Ellipsis):
		p.advance()
		return p.parseSplat(start)

	default:
		p.errorf(diag.E_SYNTAX, "expected an element declaration or splat inside block")
		p.advance()
		return nil
	}
}

func (p *parser) parseSplat(start location.Span) *ast.BlockItem {
	switch {
	case p.at(lex.At):
		p.advance()
		name, ok := p.expect(lex.IdentUpper, "splatted attribute group name")
		if !ok {
			return nil
		}
		span := spanOrStart(start, name.Span)
		return &ast.BlockItem{Kind: ast.BlockItemSplatBlock, SplatTarget: name.Text, Span: span}
	case p.at(lex.IdentUpper):
		name := p.advance()
		span := spanOrStart(start, name.Span)
		return &ast.BlockItem{Kind: ast.BlockItemSplatType, SplatTarget: name.Text, Span: span}
	case p.at(lex.IdentLower):
		name := p.advance()
		span := spanOrStart(start, name.Span)
		return &ast.BlockItem{Kind: ast.BlockItemSplatGenericVar, SplatTarget: name.Text, Span: span}
	default:
		p.errorf(diag.E_SYNTAX, "expected a type or attribute group name after '...'")
		return nil
	}
}

func spanOrStart(start, end location.Span) location.Span {
	if merged, ok := location.MergeSafe(start, end); ok {
		return merged
	}
	return start
}
