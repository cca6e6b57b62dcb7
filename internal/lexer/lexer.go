// Package lexer converts module-map text into a stream of typed tokens.
// It is a pure function of its input: no I/O, no hidden state. Whitespace
// and comments are skipped; lexical errors are reported through the
// Reporter and surface as Invalid tokens.
package lexer

import (
	"modmap/internal/diag"
	"modmap/internal/source"
	"modmap/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentContinue(ch):
		return lx.scanIdentOrKeyword()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// scanPunct scans the single-character punctuation tokens. Anything else
// is an unknown character: reported, consumed, and returned as Invalid.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	var kind token.Kind
	switch b {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '.':
		kind = token.Dot
	case '*':
		kind = token.Star
	case ',':
		kind = token.Comma
	case '!':
		kind = token.Bang
	default:
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+quoteByte(b))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
