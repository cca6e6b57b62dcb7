package lexer

import (
	"modmap/internal/diag"
	"modmap/internal/source"
)

// Options configures a Lexer. Reporter may be nil; errors are then
// dropped, but lexing still continues so the parser can stop on the
// Invalid token itself.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
