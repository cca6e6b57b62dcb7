package diag

import (
	"fmt"

	"modmap/internal/source"
)

// Error is the structured failure a parse hands back to its caller.
// It carries the stable code, the resolved position, and the message of
// the first error-severity diagnostic. Callers render it however they
// like; the parser never touches the host process.
type Error struct {
	Code    Code
	Path    string
	Pos     source.LineCol
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s [%s]", e.Path, e.Pos.Line, e.Pos.Col, e.Message, e.Code.ID())
	}
	return fmt.Sprintf("%d:%d: %s [%s]", e.Pos.Line, e.Pos.Col, e.Message, e.Code.ID())
}

// IsLexical reports whether the failure originated in the lexer.
func (e *Error) IsLexical() bool {
	return e.Code >= 1000 && e.Code < 2000
}

// ErrorFromBag converts the first error in the bag into an *Error,
// resolving the span against the file set. Returns nil when the bag
// holds no errors.
func ErrorFromBag(bag *Bag, fs *source.FileSet) *Error {
	d, ok := bag.FirstError()
	if !ok {
		return nil
	}
	start, _ := fs.Resolve(d.Primary)
	return &Error{
		Code:    d.Code,
		Path:    fs.Get(d.Primary.File).Path,
		Pos:     start,
		Message: d.Message,
	}
}
