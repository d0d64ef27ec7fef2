package parse

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
	"github.com/ParapluOU/whale-schema/location"
)

// parseImport handles all four import forms:
//
//	import "./path.whas"
//	import "./path.whas" { A, B }
//	import * from "./path.whas"
//	import { A } from "./path.whas"
func (p *parser) parseImport() *ast.ImportDecl {
	start := p.cur().Span
	p.advance() // 'import'

	decl := &ast.ImportDecl{}

	switch {
	case p.at(lex.Star):
		p.advance()
		decl.Wildcard = true
		if _, ok := p.expect(lex.KeywordFrom, "'from'"); !ok {
			return nil
		}
		path, ok := p.parseImportPath()
		if !ok {
			return nil
		}
		decl.Path, decl.PathSpan = path.Text, path.Span

	case p.at(lex.LBrace):
		sel := p.parseImportSelector()
		decl.Selector = sel
		if _, ok := p.expect(lex.KeywordFrom, "'from'"); !ok {
			return nil
		}
		path, ok := p.parseImportPath()
		if !ok {
			return nil
		}
		decl.Path, decl.PathSpan = path.Text, path.Span

	case p.at(lex.String):
		path, ok := p.parseImportPath()
		if !ok {
			return nil
		}
		decl.Path, decl.PathSpan = path.Text, path.Span
		if p.at(lex.LBrace) {
			decl.Selector = p.parseImportSelector()
		}

	default:
		p.errorf(diag.E_SYNTAX, "expected import path, '*', or selector list")
		return nil
	}

	end := p.lastConsumedSpan()
	decl.Span = start
	if merged, ok := location.MergeSafe(start, end); ok {
		decl.Span = merged
	}
	return decl
}

func (p *parser) parseImportPath() (lex.Token, bool) {
	return p.expect(lex.String, "import path string")
}

func (p *parser) parseImportSelector() *ast.ImportSelector {
	start := p.cur().Span
	p.advance() // '{'
	sel := &ast.ImportSelector{Span: start}
	for !p.at(lex.RBrace) && !p.atEOF() {
		name, ok := p.expect(lex.IdentUpper, "imported type name")
		if !ok {
			break
		}
		sel.Names = append(sel.Names, name.Text)
		if p.at(lex.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lex.RBrace, "'}' closing selector list")
	if merged, ok := location.MergeSafe(start, p.lastConsumedSpan()); ok {
		sel.Span = merged
	}
	return sel
}

// lastConsumedSpan returns the span of the most recently consumed token,
// used to close out a Span covering a just-parsed multi-token construct.
func (p *parser) lastConsumedSpan() location.Span {
	if p.pos == 0 {
		return location.Span{}
	}
	return p.toks[p.pos-1].Span
}
