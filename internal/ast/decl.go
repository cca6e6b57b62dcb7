package ast

import (
	"modmap/internal/source"
)

// DeclKind discriminates the declaration variants.
type DeclKind uint8

const (
	// DeclModule is a module definition or forward/extern reference.
	DeclModule DeclKind = iota
	// DeclHeader is a header declaration inside a module body.
	DeclHeader
	// DeclOpaque is a recognized but unmodeled member statement.
	DeclOpaque
)

func (k DeclKind) String() string {
	switch k {
	case DeclModule:
		return "module"
	case DeclHeader:
		return "header"
	case DeclOpaque:
		return "opaque"
	}
	return "decl(?)"
}

// Decl is one declaration in a module map. Each value is owned exactly
// once: by the top-level result slice or by its parent module's Members.
type Decl interface {
	Kind() DeclKind
	Span() source.Span
}

// Module is a module declaration. A nil Members with HasBody false is a
// forward declaration; IsExtern marks an `extern module` reference whose
// definition lives in ExternPath.
type Module struct {
	Name        string // dotted, e.g. "Foo.Bar"; "*" for wildcard segments
	IsExplicit  bool
	IsFramework bool
	IsSystem    bool // from the [system] attribute
	IsExtern    bool
	ExternPath  string // set only when IsExtern
	HasBody     bool
	Members     []Decl // source order
	Loc         source.Span
}

func (*Module) Kind() DeclKind      { return DeclModule }
func (m *Module) Span() source.Span { return m.Loc }

// Header is a single header declaration. Path is the unescaped literal
// content exactly as written; resolving it against a directory is the
// caller's concern.
type Header struct {
	Path     string
	Private  bool
	Textual  bool
	Umbrella bool
	Loc      source.Span
}

func (*Header) Kind() DeclKind      { return DeclHeader }
func (h *Header) Span() source.Span { return h.Loc }

// Opaque is a member statement the grammar recognizes but does not model
// (requires, link, export, export_as, exclude, use, config_macros,
// conflict, umbrella directories). Keeping it as a declaration preserves
// sibling order and keeps unknown-but-well-formed constructs from
// breaking a parse.
type Opaque struct {
	Keyword string // leading keyword as written
	Text    string // raw source slice of the whole statement
	Loc     source.Span
}

func (*Opaque) Kind() DeclKind      { return DeclOpaque }
func (o *Opaque) Span() source.Span { return o.Loc }

// Walk visits d and every declaration below it in source order.
// The visitor returns false to prune the subtree.
func Walk(d Decl, visit func(Decl) bool) {
	if d == nil || !visit(d) {
		return
	}
	if m, ok := d.(*Module); ok {
		for _, child := range m.Members {
			Walk(child, visit)
		}
	}
}

// Count returns the total number of declarations in the trees rooted at
// decls, including the roots themselves.
func Count(decls []Decl) int {
	n := 0
	for _, d := range decls {
		Walk(d, func(Decl) bool {
			n++
			return true
		})
	}
	return n
}
