package driver

import (
	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/lexer"
	"modmap/internal/parser"
	"modmap/internal/source"
)

// ParseResult carries the declaration tree of one file. Decls is nil
// when the parse failed; the bag then holds the failure and Err is its
// structured form.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Decls   []ast.Decl
	Bag     *diag.Bag
	Err     *diag.Error
}

// Parse loads path and parses it. An I/O failure is returned as a plain
// error; a lex or parse failure comes back inside the result.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics), nil
}

// ParseText is Parse over an in-memory buffer, named for diagnostics.
func ParseText(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	result := parser.ParseFile(file, lx, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Decls:   result.Decls,
		Bag:     bag,
		Err:     diag.ErrorFromBag(bag, fs),
	}
}
