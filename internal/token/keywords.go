package token

var keywords = map[string]Kind{
	"module":        KwModule,
	"explicit":      KwExplicit,
	"framework":     KwFramework,
	"extern":        KwExtern,
	"private":       KwPrivate,
	"textual":       KwTextual,
	"umbrella":      KwUmbrella,
	"header":        KwHeader,
	"exclude":       KwExclude,
	"export":        KwExport,
	"export_as":     KwExportAs,
	"requires":      KwRequires,
	"link":          KwLink,
	"use":           KwUse,
	"config_macros": KwConfigMacros,
	"conflict":      KwConflict,
}

// LookupKeyword returns the keyword kind for ident, if any.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
