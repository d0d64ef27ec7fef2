package parse

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
	"github.com/ParapluOU/whale-schema/location"
)

// parser walks a flat token stream and builds an ast.Model. It never
// panics on malformed input; syntax errors are reported through the
// collector and parsing resynchronizes at the next top-level declaration
// so a single mistake doesn't suppress diagnostics for the rest of the file.
type parser struct {
	source    location.SourceID
	toks      []lex.Token
	pos       int
	collector *diag.Collector
}

// Parse tokenizes is not performed here; callers run internal/lex first and
// pass the resulting token stream. Parse returns the parsed Model (always
// non-nil, even on error — partially built) alongside the diagnostic
// result. Callers must check result.OK() before trusting the Model for
// compilation.
func Parse(source location.SourceID, tokens []lex.Token) (*ast.Model, diag.Result) {
	p := &parser{
		source:    source,
		toks:      tokens,
		collector: diag.NewCollectorUnlimited(),
	}
	return p.parseModel(), p.collector.Result()
}

func (p *parser) parseModel() *ast.Model {
	model := &ast.Model{Source: p.source}

	// Leading comments document the model when a namespace line or the end
	// of the file follows them; otherwise they document the first declaration.
	leadDoc, _ := p.collectComments()
	if p.at(lex.KeywordNamespace) || p.atEOF() {
		model.Documentation = leadDoc
		leadDoc = ""
	}

	if p.at(lex.KeywordNamespace) {
		model.Namespace = p.parseNamespace()
	}

	for !p.atEOF() {
		doc, declSpan := p.collectComments()
		if leadDoc != "" {
			doc, leadDoc = leadDoc, ""
		}
		if p.atEOF() {
			break
		}

		var attrs []*ast.AttributeDecl
		if p.at(lex.At) {
			attrs = p.parseAttributesPrefix()
		}

		switch {
		case p.at(lex.KeywordImport):
			if imp := p.parseImport(); imp != nil {
				model.Imports = append(model.Imports, imp)
			}
		case p.at(lex.IdentUpper):
			if t := p.parseTypeDecl(doc, attrs); t != nil {
				model.Types = append(model.Types, t)
			}
		case p.at(lex.Hash):
			if e := p.parseElementDecl(doc, attrs); e != nil {
				model.Elements = append(model.Elements, e)
			}
		default:
			_ = declSpan
			p.errorf(diag.E_SYNTAX, "expected import, type definition, or element declaration")
			p.resyncTopLevel()
		}
	}

	if first := p.firstSpan(); !first.IsZero() {
		model.Span = first
		if last := p.lastSpan(); !last.IsZero() {
			if merged, ok := location.MergeSafe(first, last); ok {
				model.Span = merged
			}
		}
	}
	return model
}

func (p *parser) parseNamespace() *ast.Namespace {
	start := p.cur().Span
	p.advance() // 'namespace'
	tok, ok := p.expect(lex.String, "namespace URI string")
	if !ok {
		return &ast.Namespace{Span: start}
	}
	span := start
	if merged, ok := location.MergeSafe(start, tok.Span); ok {
		span = merged
	}
	return &ast.Namespace{URI: tok.Text, Span: span}
}

// --- cursor helpers ---

func (p *parser) cur() lex.Token {
	if p.pos >= len(p.toks) {
		return lex.Token{Kind: lex.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) lex.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.toks) {
		return lex.Token{Kind: lex.EOF}
	}
	return p.toks[i]
}

func (p *parser) at(k lex.Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) atEOF() bool {
	return p.at(lex.EOF)
}

func (p *parser) advance() lex.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(k lex.Kind, what string) (lex.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorf(diag.E_SYNTAX, "expected "+what+", found "+p.cur().Kind.String())
	return lex.Token{}, false
}

// collectComments consumes every consecutive comment token at the current
// position and joins their text with newlines. Returns the joined text
// ("" if none were present) and the span of the first comment consumed.
func (p *parser) collectComments() (string, location.Span) {
	var texts []string
	var first location.Span
	for p.at(lex.CommentLine) || p.at(lex.CommentWild) || p.at(lex.CommentMarkdown) {
		tok := p.advance()
		if first.IsZero() {
			first = tok.Span
		}
		texts = append(texts, tok.Text)
	}
	return joinLines(texts), first
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

// resyncTopLevel advances until the next token that can plausibly start a
// top-level declaration (or EOF), so one malformed declaration doesn't
// suppress diagnostics for the rest of the file.
func (p *parser) resyncTopLevel() {
	for !p.atEOF() {
		if p.at(lex.Hash) || p.at(lex.IdentUpper) || p.at(lex.KeywordImport) {
			return
		}
		p.advance()
	}
}

func (p *parser) errorf(code diag.Code, message string) {
	p.collector.Collect(diag.NewIssue(diag.Error, code, message).WithSpan(p.cur().Span).Build())
}

func (p *parser) firstSpan() location.Span {
	for _, t := range p.toks {
		if t.Kind != lex.EOF {
			return t.Span
		}
	}
	return location.Span{}
}

func (p *parser) lastSpan() location.Span {
	for i := len(p.toks) - 1; i >= 0; i-- {
		if p.toks[i].Kind != lex.EOF {
			return p.toks[i].Span
		}
	}
	return location.Span{}
}
