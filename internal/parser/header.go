package parser

import (
	"strings"

	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/source"
	"modmap/internal/token"
)

// parseHeaderDecl recognizes:
//
//	[private] [textual] header "path" [attr-block]
//
// The umbrella qualifier arrives through parseMember, which needed to
// disambiguate it from an umbrella-directory statement first.
func (p *Parser) parseHeaderDecl() (ast.Decl, bool) {
	start := p.lx.Peek().Span

	private := false
	if p.at(token.KwPrivate) {
		p.advance()
		private = true
	}

	textual, umbrella := false, false
	switch p.lx.Peek().Kind {
	case token.KwTextual:
		p.advance()
		textual = true
	case token.KwUmbrella:
		p.advance()
		umbrella = true
	}

	return p.parseHeaderAfterQualifiers(start, private, textual, umbrella)
}

// parseHeaderAfterQualifiers expects the 'header' keyword and quoted path.
// Path is the unescaped literal content, untouched otherwise: no
// normalization, no filesystem resolution.
func (p *Parser) parseHeaderAfterQualifiers(start source.Span, private, textual, umbrella bool) (ast.Decl, bool) {
	if _, ok := p.expect(token.KwHeader, diag.SynExpectHeader, "expected 'header'"); !ok {
		return nil, false
	}
	pathTok, ok := p.expect(token.StringLit, diag.SynExpectStringLit, "expected header path")
	if !ok {
		return nil, false
	}

	// optional attribute block, e.g. { size 1234 mtime 5678 }
	if p.at(token.LBrace) {
		if !p.consumeBalancedBraces() {
			return nil, false
		}
	}

	return &ast.Header{
		Path:     unescapeString(pathTok.Text),
		Private:  private,
		Textual:  textual,
		Umbrella: umbrella,
		Loc:      start.Cover(p.lastSpan),
	}, true
}

// consumeBalancedBraces eats a '{ ... }' group, balancing nested braces.
func (p *Parser) consumeBalancedBraces() bool {
	p.advance() // '{'
	depth := 1
	for depth > 0 {
		switch p.lx.Peek().Kind {
		case token.EOF:
			p.err(diag.SynUnbalancedBlock, "missing closing '}'")
			return false
		case token.Invalid:
			return false
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
		p.advance()
	}
	return true
}

// unescapeString strips the surrounding quotes and resolves backslash
// escapes. The lexer guarantees a well-formed literal: opening and
// closing quotes present, no trailing lone backslash.
func unescapeString(text string) string {
	body := text[1 : len(text)-1]
	// fast path: nothing to unescape
	if strings.IndexByte(body, '\\') < 0 {
		return body
	}
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		out = append(out, body[i])
	}
	return string(out)
}
