package token

import (
	"modmap/internal/source"
)

// Token represents a single module-map token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a module-map keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwModule && t.Kind <= KwConflict
}

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsNameLike reports whether the token can serve as a name segment.
// Keywords are contextual, so any keyword doubles as a name.
func (t Token) IsNameLike() bool {
	return t.Kind == Ident || t.IsKeyword()
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LBracket, RBracket, Dot, Star, Comma, Bang:
		return true
	default:
		return false
	}
}
