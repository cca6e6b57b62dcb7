package lexer

import (
	"modmap/internal/token"
)

// scanIdentOrKeyword scans a maximal run of [A-Za-z0-9_] and classifies
// it through token.LookupKeyword. module-map identifiers are ASCII, and
// digit-led runs (header attribute values like sizes) lex as identifiers
// too; Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return "'" + string(b) + "'"
	}
	const hex = "0123456789abcdef"
	return `'\x` + string(hex[b>>4]) + string(hex[b&0xF]) + `'`
}
