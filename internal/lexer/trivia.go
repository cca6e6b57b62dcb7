package lexer

import (
	"modmap/internal/diag"
)

// skipTrivia consumes whitespace and comments before the next token.
//   - spaces, tabs, newlines, carriage returns
//   - // ... to end of line
//   - /* ... */ (C-style, no nesting); unterminated -> report, stop at EOF
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '/' {
			if lx.skipComment() {
				continue
			}
		}

		break
	}
}

// skipComment consumes a // or /* */ comment. Returns false if the '/'
// begins no comment; the cursor is then left untouched.
func (lx *Lexer) skipComment() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}

	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true

	case '*':
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			lx.cursor.Bump()
		}
		// ran off the end without seeing */
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		return true

	default:
		// a lone '/' starts no module-map token; let scanPunct report it
		lx.cursor.Reset(start)
		return false
	}
}
