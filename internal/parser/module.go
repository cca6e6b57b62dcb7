package parser

import (
	"strings"

	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/source"
	"modmap/internal/token"
)

// parseModuleDecl recognizes the forms:
//
//	[explicit] [framework] module module-id [attrs] [ '{' members '}' ]
//	extern module module-id "path"
//
// A missing block is a forward declaration with no members.
func (p *Parser) parseModuleDecl(depth int) (*ast.Module, bool) {
	if depth >= p.opts.MaxDepth {
		p.err(diag.SynNestingTooDeep, "module nesting exceeds the limit")
		return nil, false
	}

	start := p.lx.Peek().Span

	if p.at(token.KwExtern) {
		return p.parseExternModule(start)
	}

	mod := &ast.Module{}
	if p.at(token.KwExplicit) {
		p.advance()
		mod.IsExplicit = true
	}
	if p.at(token.KwFramework) {
		p.advance()
		mod.IsFramework = true
	}
	if _, ok := p.expect(token.KwModule, diag.SynUnexpectedToken, "expected 'module'"); !ok {
		return nil, false
	}

	name, ok := p.parseModuleName()
	if !ok {
		return nil, false
	}
	mod.Name = name

	if !p.parseAttributes(mod) {
		return nil, false
	}

	if p.at(token.LBrace) {
		p.advance()
		mod.HasBody = true
		mod.Members = []ast.Decl{}
		for !p.at(token.RBrace) {
			if p.at(token.EOF) {
				p.err(diag.SynUnbalancedBlock, "missing closing '}' in module "+quote(mod.Name))
				return nil, false
			}
			member, ok := p.parseMember(depth + 1)
			if !ok {
				return nil, false
			}
			mod.Members = append(mod.Members, member)
		}
		p.advance() // '}'
	}

	mod.Loc = start.Cover(p.lastSpan)
	return mod, true
}

// parseExternModule: 'extern' 'module' module-id string-literal.
// The definition lives in the referenced file; no members here.
func (p *Parser) parseExternModule(start source.Span) (*ast.Module, bool) {
	p.advance() // 'extern'
	if _, ok := p.expect(token.KwModule, diag.SynUnexpectedToken, "expected 'module' after 'extern'"); !ok {
		return nil, false
	}
	name, ok := p.parseModuleName()
	if !ok {
		return nil, false
	}
	pathTok, ok := p.expect(token.StringLit, diag.SynExpectStringLit, "expected file path after extern module name")
	if !ok {
		return nil, false
	}
	return &ast.Module{
		Name:       name,
		IsExtern:   true,
		ExternPath: unescapeString(pathTok.Text),
		Loc:        start.Cover(p.lastSpan),
	}, true
}

// parseModuleName composes a dotted module id. Segments are identifiers,
// contextual keywords used as plain names, or '*' wildcards.
func (p *Parser) parseModuleName() (string, bool) {
	var sb strings.Builder

	seg, ok := p.parseNameSegment()
	if !ok {
		return "", false
	}
	sb.WriteString(seg)

	for p.at(token.Dot) {
		p.advance()
		seg, ok := p.parseNameSegment()
		if !ok {
			return "", false
		}
		sb.WriteByte('.')
		sb.WriteString(seg)
	}
	return sb.String(), true
}

func (p *Parser) parseNameSegment() (string, bool) {
	tok := p.lx.Peek()
	if tok.IsNameLike() || tok.Kind == token.Star {
		p.advance()
		return tok.Text, true
	}
	if tok.Kind != token.Invalid {
		p.report(diag.SynExpectModuleName, p.diagnosticSpan(),
			"expected module name, got "+describe(tok))
	} else {
		p.failed = true
	}
	return "", false
}

// parseAttributes consumes zero or more '[' attr ']' groups after a
// module id. '[system]' sets IsSystem; other attributes (extern_c,
// no_undeclared_includes, ...) are consumed without being modeled.
func (p *Parser) parseAttributes(mod *ast.Module) bool {
	for p.at(token.LBracket) {
		p.advance()
		attr := p.lx.Peek()
		if !attr.IsNameLike() {
			p.err(diag.SynUnexpectedToken, "expected attribute name, got "+describe(attr))
			return false
		}
		p.advance()
		if attr.Text == "system" {
			mod.IsSystem = true
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' after attribute"); !ok {
			return false
		}
	}
	return true
}

// parseMember dispatches on the first token of a member statement.
// Keyword recognition is purely positional: the first token decides the
// production, and keyword-shaped identifiers elsewhere stay plain names.
func (p *Parser) parseMember(depth int) (ast.Decl, bool) {
	switch p.lx.Peek().Kind {
	case token.KwModule, token.KwExplicit, token.KwFramework, token.KwExtern:
		return p.parseModuleDecl(depth)

	case token.KwPrivate, token.KwTextual, token.KwHeader:
		return p.parseHeaderDecl()

	case token.KwUmbrella:
		// 'umbrella header "X"' is a header; 'umbrella "Dir"' is an
		// umbrella-directory statement we keep opaque.
		kw := p.advance()
		switch p.lx.Peek().Kind {
		case token.KwHeader:
			return p.parseHeaderAfterQualifiers(kw.Span, false, false, true)
		case token.StringLit:
			p.advance()
			return p.finishOpaque(kw), true
		default:
			p.err(diag.SynUnexpectedToken,
				"expected 'header' or directory string after 'umbrella', got "+describe(p.lx.Peek()))
			return nil, false
		}

	case token.KwExclude:
		// 'exclude header "X"': recognized so the header never lands in
		// the tree as a Header, only as an opaque statement.
		kw := p.advance()
		if p.at(token.KwHeader) {
			p.advance()
			if _, ok := p.expect(token.StringLit, diag.SynExpectStringLit, "expected header path after 'exclude header'"); !ok {
				return nil, false
			}
			return p.finishOpaque(kw), true
		}
		return p.parseOpaqueRest(kw)

	case token.KwLink:
		// 'link ["framework"] "name"': consumed eagerly because the
		// optional framework keyword would otherwise look like the start
		// of a sibling module declaration.
		kw := p.advance()
		if p.at(token.KwFramework) {
			p.advance()
		}
		if _, ok := p.expect(token.StringLit, diag.SynExpectStringLit, "expected library name after 'link'"); !ok {
			return nil, false
		}
		return p.finishOpaque(kw), true

	case token.KwExport, token.KwExportAs, token.KwRequires, token.KwUse,
		token.KwConfigMacros, token.KwConflict:
		kw := p.advance()
		return p.parseOpaqueRest(kw)

	case token.Invalid:
		return nil, false

	case token.EOF:
		p.err(diag.SynUnbalancedBlock, "missing closing '}'")
		return nil, false

	default:
		p.err(diag.SynUnexpectedToken,
			"expected module member declaration, got "+describe(p.lx.Peek()))
		return nil, false
	}
}
