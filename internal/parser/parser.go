// Package parser turns a token stream into a module-map declaration tree.
// It is a recursive-descent parser with one token of lookahead. The first
// structural or lexical error aborts the parse: the Result then carries a
// nil declaration slice, never a partially built tree.
package parser

import (
	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/lexer"
	"modmap/internal/source"
	"modmap/internal/token"
)

// DefaultMaxDepth bounds module nesting so pathological input degrades
// into a structured error instead of exhausting the stack.
const DefaultMaxDepth = 4096

// Options configures a single parse.
type Options struct {
	Reporter diag.Reporter
	MaxDepth int // 0 means DefaultMaxDepth
}

// Result of parsing one file.
type Result struct {
	Decls []ast.Decl // nil when the parse failed
	Bag   *diag.Bag  // set when Reporter is a *diag.BagReporter
}

// Parser holds the state for one file. It is single-use: each ParseFile
// call builds a fresh one, so parses never share state.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
	failed   bool
}

// ParseFile is the entry point for one file. It requires a lexer already
// created over file.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) Result {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Parser{
		lx:       lx,
		file:     file,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	decls, ok := p.parseTopLevel()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	// a lexical error reported behind the parser's back (e.g. an
	// unterminated trailing comment) still voids the tree
	if !ok || (bag != nil && bag.HasErrors()) {
		return Result{Decls: nil, Bag: bag}
	}
	return Result{Decls: decls, Bag: bag}
}

// parseTopLevel: a module map is a sequence of module declarations.
// An empty file parses to an empty sequence.
func (p *Parser) parseTopLevel() ([]ast.Decl, bool) {
	decls := []ast.Decl{}
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwModule, token.KwExplicit, token.KwFramework, token.KwExtern:
			mod, ok := p.parseModuleDecl(0)
			if !ok {
				return nil, false
			}
			decls = append(decls, mod)
		case token.RBrace:
			p.err(diag.SynUnbalancedBlock, "unmatched '}'")
			return nil, false
		case token.Invalid:
			// the lexer already reported; stop here
			return nil, false
		default:
			p.err(diag.SynUnexpectedToken,
				"expected 'module' declaration, got "+describe(p.lx.Peek()))
			return nil, false
		}
	}
	return decls, true
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next token and tracks lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan picks the best span for an error at the current position.
// At EOF (or on a zero-length Invalid token) it points just past the last
// consumed token instead of at offset zero.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports and fails. An Invalid
// token fails silently: the lexer already reported it.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if p.at(token.Invalid) {
		p.failed = true
		return token.Token{Kind: token.Invalid, Span: p.diagnosticSpan()}, false
	}
	p.report(code, p.diagnosticSpan(), msg+", got "+describe(p.lx.Peek()))
	return token.Token{Kind: token.Invalid, Span: p.diagnosticSpan()}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.failed {
		return
	}
	p.failed = true
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// describe renders a token for error messages.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.StringLit:
		return "string literal " + tok.Text
	case token.Invalid:
		if tok.Text == "" {
			return "invalid input"
		}
		return "invalid token " + quote(tok.Text)
	default:
		return quote(tok.Text)
	}
}

func quote(s string) string {
	return "'" + s + "'"
}
