package token

// Kind represents the category of a module-map token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// StringLit represents a double-quoted string literal token.
	StringLit

	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwExplicit represents the 'explicit' keyword.
	KwExplicit // explicit
	// KwFramework represents the 'framework' keyword.
	KwFramework // framework
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwTextual represents the 'textual' keyword.
	KwTextual // textual
	// KwUmbrella represents the 'umbrella' keyword.
	KwUmbrella // umbrella
	// KwHeader represents the 'header' keyword.
	KwHeader // header
	// KwExclude represents the 'exclude' keyword.
	KwExclude // exclude
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExportAs represents the 'export_as' keyword.
	KwExportAs // export_as
	// KwRequires represents the 'requires' keyword.
	KwRequires // requires
	// KwLink represents the 'link' keyword.
	KwLink // link
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwConfigMacros represents the 'config_macros' keyword.
	KwConfigMacros // config_macros
	// KwConflict represents the 'conflict' keyword.
	KwConflict // conflict

	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
	// LBracket represents the '[' token.
	LBracket // [
	// RBracket represents the ']' token.
	RBracket // ]
	// Dot represents the '.' token.
	Dot // .
	// Star represents the '*' token.
	Star // *
	// Comma represents the ',' token.
	Comma // ,
	// Bang represents the '!' token.
	Bang // !
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	StringLit:      "StringLit",
	KwModule:       "KwModule",
	KwExplicit:     "KwExplicit",
	KwFramework:    "KwFramework",
	KwExtern:       "KwExtern",
	KwPrivate:      "KwPrivate",
	KwTextual:      "KwTextual",
	KwUmbrella:     "KwUmbrella",
	KwHeader:       "KwHeader",
	KwExclude:      "KwExclude",
	KwExport:       "KwExport",
	KwExportAs:     "KwExportAs",
	KwRequires:     "KwRequires",
	KwLink:         "KwLink",
	KwUse:          "KwUse",
	KwConfigMacros: "KwConfigMacros",
	KwConflict:     "KwConflict",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	LBracket:       "LBracket",
	RBracket:       "RBracket",
	Dot:            "Dot",
	Star:           "Star",
	Comma:          "Comma",
	Bang:           "Bang",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
