package parser

import (
	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/token"
)

// parseOpaqueRest consumes the remainder of a keyword-led statement the
// grammar recognizes but does not model (export, export_as, requires,
// use, config_macros, conflict, ...). Tokens are eaten until something
// that can begin the next member — or the enclosing '}' — appears at
// bracket depth zero; '{'/'[' groups opened inside the statement are
// balanced first. This keeps well-formed-but-unmodeled constructs from
// corrupting sibling parsing.
func (p *Parser) parseOpaqueRest(kw token.Token) (ast.Decl, bool) {
	depth := 0
	for {
		next := p.lx.Peek()
		switch next.Kind {
		case token.EOF:
			if depth > 0 {
				p.err(diag.SynUnbalancedBlock, "missing closing delimiter in '"+kw.Text+"' statement")
				return nil, false
			}
			return p.finishOpaque(kw), true

		case token.Invalid:
			return nil, false

		case token.LBrace, token.LBracket:
			depth++
			p.advance()

		case token.RBracket:
			if depth > 0 {
				depth--
			}
			p.advance()

		case token.RBrace:
			if depth == 0 {
				// closes the enclosing module body
				return p.finishOpaque(kw), true
			}
			depth--
			p.advance()

		default:
			if depth == 0 && startsMember(next.Kind) {
				return p.finishOpaque(kw), true
			}
			p.advance()
		}
	}
}

// finishOpaque builds the opaque declaration from the keyword token
// through the last consumed token.
func (p *Parser) finishOpaque(kw token.Token) *ast.Opaque {
	loc := kw.Span.Cover(p.lastSpan)
	return &ast.Opaque{
		Keyword: kw.Text,
		Text:    string(p.file.Content[loc.Start:loc.End]),
		Loc:     loc,
	}
}

// startsMember reports whether kind can begin a module member statement.
func startsMember(kind token.Kind) bool {
	switch kind {
	case token.KwModule, token.KwExplicit, token.KwFramework, token.KwExtern,
		token.KwPrivate, token.KwTextual, token.KwUmbrella, token.KwHeader,
		token.KwExclude, token.KwExport, token.KwExportAs, token.KwRequires,
		token.KwLink, token.KwUse, token.KwConfigMacros, token.KwConflict:
		return true
	default:
		return false
	}
}
