package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/textlit"
	"github.com/ParapluOU/whale-schema/location"
)

// Lexer scans WHAS source text into a Token stream. A Lexer is single-use:
// construct one with New, call Tokenize once, discard it.
type Lexer struct {
	source location.SourceID
	src    []rune
	pos    int // index into src
	line   int
	col    int

	collector *diag.Collector
}

// New creates a Lexer over text attributed to source.
func New(source location.SourceID, text string) *Lexer {
	return &Lexer{
		source:    source,
		src:       []rune(text),
		line:      1,
		col:       1,
		collector: diag.NewCollectorUnlimited(),
	}
}

// Tokenize scans the full input and returns every token (including a
// trailing EOF token) plus any lexical diagnostics collected along the way.
// Scanning does not stop at the first error: the lexer resynchronizes by
// skipping the offending rune and continues, so a single malformed source
// file can still report every lexical problem it contains in one pass.
func (l *Lexer) Tokenize() ([]Token, diag.Result) {
	var tokens []Token
	for {
		tok, ok := l.next()
		if ok {
			tokens = append(tokens, tok)
		}
		if ok && tok.Kind == EOF {
			break
		}
	}
	return tokens, l.collector.Result()
}

func (l *Lexer) next() (Token, bool) {
	l.skipInsignificantWhitespace()
	if l.atEnd() {
		return Token{Kind: EOF, Span: l.point()}, true
	}

	start := l.position()
	r := l.peek()

	switch {
	case r == '/' && l.peekAt(1) == '/':
		return l.scanLineComment(start)
	case r == '/' && l.peekAt(1) == '*':
		return l.scanWildComment(start)
	case r == '/':
		return l.scanRegex(start)
	case r == '"' || r == '\'':
		return l.scanString(start, r)
	case r == '`':
		return l.scanMarkdownComment(start)
	case unicode.IsDigit(r):
		return l.scanNumber(start)
	case r == '_' || unicode.IsUpper(r):
		return l.scanIdent(start, IdentUpper)
	case unicode.IsLower(r):
		return l.scanIdent(start, IdentLower)
	default:
		return l.scanPunct(start)
	}
}

func (l *Lexer) scanPunct(start location.Position) (Token, bool) {
	r := l.advance()
	switch r {
	case '#':
		return l.tok(Hash, "#", start), true
	case '@':
		return l.tok(At, "@", start), true
	case ':':
		return l.tok(Colon, ":", start), true
	case '?':
		return l.tok(Question, "?", start), true
	case '*':
		return l.tok(Star, "*", start), true
	case '+':
		return l.tok(Plus, "+", start), true
	case '!':
		return l.tok(Bang, "!", start), true
	case '|':
		return l.tok(Pipe, "|", start), true
	case ',':
		return l.tok(Comma, ",", start), true
	case '{':
		return l.tok(LBrace, "{", start), true
	case '}':
		return l.tok(RBrace, "}", start), true
	case '(':
		return l.tok(LParen, "(", start), true
	case ')':
		return l.tok(RParen, ")", start), true
	case '[':
		return l.tok(LBracket, "[", start), true
	case ']':
		return l.tok(RBracket, "]", start), true
	case '<':
		return l.tok(Less, "<", start), true
	case '>':
		return l.tok(Greater, ">", start), true
	case '.':
		if l.peek() == '.' && l.peekAt(1) == '.' {
			l.advance()
			l.advance()
			return l.tok(Ellipsis, "...", start), true
		}
		if l.peek() == '.' {
			l.advance()
			return l.tok(DotDot, "..", start), true
		}
		l.report(diag.E_SYNTAX, start, "unexpected '.'")
		return Token{}, false
	default:
		l.report(diag.E_SYNTAX, start, "unexpected character "+strconvQuoteRune(r))
		return Token{}, false
	}
}

func (l *Lexer) scanIdent(start location.Position, kind Kind) (Token, bool) {
	var sb strings.Builder
	for !l.atEnd() && isIdentRune(l.peek()) {
		sb.WriteRune(l.advance())
	}
	text := sb.String()
	if text == "" {
		l.report(diag.E_INVALID_NAME, start, "empty identifier")
		return Token{}, false
	}
	if kind == IdentLower {
		if kw, ok := keywords[text]; ok {
			return l.tok(kw, text, start), true
		}
	}
	return l.tok(kind, text, start), true
}

func isIdentRune(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *Lexer) scanNumber(start location.Position) (Token, bool) {
	var sb strings.Builder
	for !l.atEnd() && (unicode.IsDigit(l.peek()) || l.peek() == '.') {
		// Don't consume a ".." range separator as part of the number.
		if l.peek() == '.' && l.peekAt(1) == '.' {
			break
		}
		sb.WriteRune(l.advance())
	}
	return l.tok(Number, sb.String(), start), true
}

func (l *Lexer) scanString(start location.Position, quote rune) (Token, bool) {
	var raw strings.Builder
	raw.WriteRune(l.advance()) // opening quote
	for {
		if l.atEnd() {
			l.report(diag.E_UNTERMINATED_LITERAL, start, "unterminated string literal")
			return Token{}, false
		}
		r := l.advance()
		raw.WriteRune(r)
		if r == '\\' && !l.atEnd() {
			raw.WriteRune(l.advance())
			continue
		}
		if r == quote {
			break
		}
	}
	text, err := textlit.ConvertString(raw.String())
	if err != nil {
		l.report(diag.E_INVALID_ESCAPE, start, err.Error())
		return Token{}, false
	}
	return l.tok(String, text, start), true
}

func (l *Lexer) scanRegex(start location.Position) (Token, bool) {
	l.advance() // opening '/'
	var sb strings.Builder
	for {
		if l.atEnd() {
			l.report(diag.E_UNTERMINATED_LITERAL, start, "unterminated regex literal")
			return Token{}, false
		}
		r := l.advance()
		if r == '\\' && !l.atEnd() {
			sb.WriteRune(r)
			sb.WriteRune(l.advance())
			continue
		}
		if r == '/' {
			break
		}
		sb.WriteRune(r)
	}
	return l.tok(Regex, sb.String(), start), true
}

// scanMarkdownComment scans a fenced ```...``` doc-comment block. The
// backtick is not ordinary punctuation anywhere else in the grammar, so a
// leading backtick unambiguously starts this token.
func (l *Lexer) scanMarkdownComment(start location.Position) (Token, bool) {
	for range 3 {
		if l.atEnd() || l.peek() != '`' {
			l.report(diag.E_SYNTAX, start, "expected opening ``` for markdown comment")
			return Token{}, false
		}
		l.advance()
	}
	var sb strings.Builder
	for {
		if l.atEnd() {
			l.report(diag.E_UNTERMINATED_LITERAL, start, "unterminated markdown comment")
			return Token{}, false
		}
		if l.peek() == '`' && l.peekAt(1) == '`' && l.peekAt(2) == '`' {
			l.advance()
			l.advance()
			l.advance()
			break
		}
		sb.WriteRune(l.advance())
	}
	return l.tok(CommentMarkdown, strings.TrimSpace(sb.String()), start), true
}

// skipInsignificantWhitespace advances past spaces, tabs, newlines, and
// carriage returns. Comments are never skipped here: they carry doc-comment
// meaning (see ast.Comment), so they are surfaced as CommentLine/CommentWild/
// CommentMarkdown tokens by next() and it is the parser's job to decide
// which ones become a declaration's Documentation.
func (l *Lexer) skipInsignificantWhitespace() {
	for !l.atEnd() {
		r := l.peek()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			l.advance()
			continue
		}
		return
	}
}

// scanLineComment scans a `// text` comment up to (not including) the
// newline, with the leading "//" stripped.
func (l *Lexer) scanLineComment(start location.Position) (Token, bool) {
	l.advance()
	l.advance()
	var sb strings.Builder
	for !l.atEnd() && l.peek() != '\n' {
		sb.WriteRune(l.advance())
	}
	return l.tok(CommentLine, strings.TrimSpace(sb.String()), start), true
}

// scanWildComment scans a `/* text */` comment with delimiters stripped.
func (l *Lexer) scanWildComment(start location.Position) (Token, bool) {
	l.advance()
	l.advance()
	var sb strings.Builder
	for {
		if l.atEnd() {
			l.report(diag.E_UNTERMINATED_LITERAL, start, "unterminated block comment")
			return Token{}, false
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		sb.WriteRune(l.advance())
	}
	return l.tok(CommentWild, strings.TrimSpace(sb.String()), start), true
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) position() location.Position {
	return location.Position{Line: l.line, Column: l.col, Byte: l.byteOffset()}
}

func (l *Lexer) byteOffset() int {
	return len(string(l.src[:l.pos]))
}

func (l *Lexer) point() location.Span {
	p := l.position()
	return location.Span{Source: l.source, Start: p, End: p}
}

func (l *Lexer) tok(kind Kind, text string, start location.Position) Token {
	end := l.position()
	return Token{
		Kind: kind,
		Text: text,
		Span: location.Span{Source: l.source, Start: start, End: end},
	}
}

func (l *Lexer) report(code diag.Code, at location.Position, message string) {
	span := location.Span{Source: l.source, Start: at, End: at}
	l.collector.Collect(diag.NewIssue(diag.Error, code, message).WithSpan(span).Build())
	// No rune is skipped here: every scan that reports has already consumed
	// the offending rune (or reached the end), so next() still makes progress.
}

func strconvQuoteRune(r rune) string {
	if r == utf8.RuneError {
		return "invalid UTF-8"
	}
	return "'" + string(r) + "'"
}
