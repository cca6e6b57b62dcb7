package driver

import (
	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/source"
)

// PublicHeaders collects the header paths a consumer of the module may
// import: every header declaration that is neither private nor textual,
// in source order, descending into submodules. Excluded headers never
// reach the tree, so they cannot appear here.
func PublicHeaders(m *ast.Module) []string {
	var paths []string
	ast.Walk(m, func(d ast.Decl) bool {
		if h, ok := d.(*ast.Header); ok && !h.Private && !h.Textual {
			paths = append(paths, h.Path)
		}
		return true
	})
	return paths
}

// SoleModule returns the single top-level module declaration of a parsed
// file. Zero or more than one top-level module reports a driver
// diagnostic into the bag and returns false.
func SoleModule(decls []ast.Decl, fs *source.FileSet, bag *diag.Bag) (*ast.Module, bool) {
	var found *ast.Module
	for _, d := range decls {
		m, ok := d.(*ast.Module)
		if !ok {
			continue
		}
		if found != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.DrvMultipleModules,
				Message:  "file declares more than one top-level module",
				Primary:  m.Loc,
				Notes: []diag.Note{
					{Span: found.Loc, Msg: "first module declared here"},
				},
			})
			return nil, false
		}
		found = m
	}
	if found == nil {
		var span source.Span
		if len(decls) > 0 {
			span = decls[0].Span()
		}
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.DrvNoModule,
			Message:  "file declares no top-level module",
			Primary:  span,
		})
		return nil, false
	}
	return found, true
}
