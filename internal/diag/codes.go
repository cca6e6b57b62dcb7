package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for one diagnostic condition.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified conditions.
	UnknownCode Code = 0

	// Lexical errors.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntax errors.
	SynUnexpectedToken  Code = 2001
	SynUnbalancedBlock  Code = 2002
	SynExpectModuleName Code = 2003
	SynExpectStringLit  Code = 2004
	SynNestingTooDeep   Code = 2005
	SynExpectHeader     Code = 2006

	// Driver / orchestration errors.
	DrvNoModule        Code = 4001
	DrvMultipleModules Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown condition",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	SynUnexpectedToken:          "unexpected token",
	SynUnbalancedBlock:          "unbalanced braces",
	SynExpectModuleName:         "module name expected",
	SynExpectStringLit:          "string literal expected",
	SynNestingTooDeep:           "module nesting too deep",
	SynExpectHeader:             "header declaration expected",
	DrvNoModule:                 "no module declaration found",
	DrvMultipleModules:          "multiple top-level module declarations",
}

// ID returns the printable identifier, e.g. "LEX1002" or "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DRV%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
